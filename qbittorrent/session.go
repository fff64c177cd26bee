package qbittorrent

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// loginOKBody is the exact success marker returned by auth/login. The server
// answers HTTP 200 even for bad credentials, so the body is authoritative.
const loginOKBody = "Ok."

// session owns the credentials and the authenticated transport handle. The
// handle is an *http.Client with a per-login cookie jar (qBittorrent issues a
// SID cookie); every authentication installs a fresh jar, a rejected session
// is replaced and never reused.
//
// The dispatcher only ever asks for the current handle or for a refresh; raw
// credentials never leave this type.
type session struct {
	loginURL  string
	base      *http.Client
	userAgent string
	logger    zerolog.Logger

	mu       sync.Mutex
	username string
	password string
	current  *http.Client
}

func newSession(apiBase string, username, password string, base *http.Client, userAgent string, logger zerolog.Logger) *session {
	return &session{
		loginURL:  apiBase + "auth/login",
		base:      base,
		userAgent: userAgent,
		logger:    logger,
		username:  username,
		password:  password,
	}
}

// Authenticate logs in with the stored credentials and installs a fresh
// session handle. Concurrent calls serialize on the mutex; a duplicate
// re-login triggered by racing requests is wasted work, not a hazard, since
// each one installs a fresh valid handle.
func (s *session) Authenticate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticateLocked(ctx)
}

func (s *session) authenticateLocked(ctx context.Context) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	candidate := &http.Client{
		Transport: s.base.Transport,
		Timeout:   s.base.Timeout,
		Jar:       jar,
	}

	form := url.Values{}
	form.Set("username", s.username)
	form.Set("password", s.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := candidate.Do(req)
	if err != nil {
		s.current = nil
		return &RequestError{Endpoint: "auth/login", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.current = nil
		return &RequestError{Endpoint: "auth/login", Err: err}
	}

	if string(body) != loginOKBody {
		s.current = nil
		s.logger.Debug().Str("username", s.username).Msg("login rejected by qBittorrent")
		return ErrInvalidCredentials
	}

	s.current = candidate
	s.logger.Debug().Str("username", s.username).Msg("authenticated with qBittorrent")
	return nil
}

// UpdateCredentials replaces both fields atomically and re-authenticates.
// Changing username and password one at a time would log in with a mixed
// pair and report a false ErrInvalidCredentials; this combined setter avoids
// that.
func (s *session) UpdateCredentials(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.username = username
	s.password = password
	return s.authenticateLocked(ctx)
}

// Current returns the active session handle.
func (s *session) Current() (*http.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}
	return s.current, nil
}

// Username returns the username currently used for logins.
func (s *session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}
