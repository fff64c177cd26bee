package qbittorrent

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const defaultMaxAttemptsOn403 = 3

// Client talks to the qBittorrent Web API (api/v2).
//
// Construction performs the initial login; afterwards every call reuses the
// session cookie and transparently re-authenticates when the server reports
// the session as expired (HTTP 403).
type Client struct {
	apiBase     string
	session     *session
	base        *http.Client
	maxAttempts int
	userAgent   string
	logger      zerolog.Logger
}

// NewClient creates a qBittorrent client and logs in with the supplied
// credentials. url is the WebUI root, e.g. "http://localhost:8080".
func NewClient(ctx context.Context, url, username, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if url == "" {
		return nil, &ValidationError{Field: "url", Reason: "must not be empty"}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !strings.HasSuffix(url, "/") {
		url += "/"
	}

	transport := o.transport
	if transport == nil {
		dialer := &net.Dialer{Timeout: o.dialTimeout}
		transport = &http.Transport{
			DialContext: dialer.DialContext,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: o.skipTLSVerify,
			},
		}
	}

	base := &http.Client{
		Transport: transport,
		Timeout:   o.timeout,
	}

	apiBase := url + "api/v2/"

	c := &Client{
		apiBase:     apiBase,
		session:     newSession(apiBase, username, password, base, o.userAgent, logger),
		base:        base,
		maxAttempts: o.maxAttempts,
		userAgent:   o.userAgent,
		logger:      logger,
	}

	if err := c.session.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to qBittorrent: %w", err)
	}

	return c, nil
}

// Login re-authenticates with the stored credentials, replacing the current
// session. Rarely needed directly since expired sessions are renewed
// automatically.
func (c *Client) Login(ctx context.Context) error {
	return c.session.Authenticate(ctx)
}

// Logout invalidates the current session on the server side.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.get(ctx, "auth/logout", nil)
	return err
}

// UpdateCredentials replaces username and password together and logs in
// again. Use this instead of two separate updates when both change, so the
// intermediate mixed pair is never sent to the server.
func (c *Client) UpdateCredentials(ctx context.Context, username, password string) error {
	return c.session.UpdateCredentials(ctx, username, password)
}

// uploadFile is one file part of a multipart request.
type uploadFile struct {
	field string
	name  string
	data  []byte
}

// requestContext describes one logical API call; the body builder is invoked
// once per attempt so a retried POST re-sends the original payload unchanged.
type requestContext struct {
	endpoint string
	method   string
	query    url.Values
	makeBody func() (io.Reader, string, error)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.do(ctx, requestContext{
		endpoint: endpoint,
		method:   http.MethodGet,
		query:    params,
	})
}

func (c *Client) post(ctx context.Context, endpoint string, data url.Values) (*Response, error) {
	return c.do(ctx, requestContext{
		endpoint: endpoint,
		method:   http.MethodPost,
		makeBody: func() (io.Reader, string, error) {
			return strings.NewReader(data.Encode()), "application/x-www-form-urlencoded", nil
		},
	})
}

// postRaw sends a POST with a verbatim form-encoded body. Used by
// app/setPreferences, whose "json=" field must not be URL-value encoded
// twice.
func (c *Client) postRaw(ctx context.Context, endpoint, body string) (*Response, error) {
	return c.do(ctx, requestContext{
		endpoint: endpoint,
		method:   http.MethodPost,
		makeBody: func() (io.Reader, string, error) {
			return strings.NewReader(body), "application/x-www-form-urlencoded", nil
		},
	})
}

func (c *Client) postMultipart(ctx context.Context, endpoint string, fields map[string]string, files []uploadFile) (*Response, error) {
	return c.do(ctx, requestContext{
		endpoint: endpoint,
		method:   http.MethodPost,
		makeBody: func() (io.Reader, string, error) {
			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			for key, value := range fields {
				if err := w.WriteField(key, value); err != nil {
					return nil, "", err
				}
			}
			for _, f := range files {
				part, err := w.CreateFormFile(f.field, f.name)
				if err != nil {
					return nil, "", err
				}
				if _, err := part.Write(f.data); err != nil {
					return nil, "", err
				}
			}
			if err := w.Close(); err != nil {
				return nil, "", err
			}
			return &buf, w.FormDataContentType(), nil
		},
	})
}

// do executes one logical call with transparent re-authentication. The
// server invalidates sessions unilaterally (timeout, restart), so a 403 here
// means "session expired", not a permission problem; the request is retried
// after a fresh login, at most maxAttempts times.
func (c *Client) do(ctx context.Context, rc requestContext) (*Response, error) {
	target := c.apiBase + rc.endpoint
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}

	for attempt := 0; ; attempt++ {
		httpClient, err := c.session.Current()
		if err != nil {
			if attempt == 0 {
				return nil, err
			}
			// Re-login failed mid-retry; keep burning the retry budget with
			// the bare transport so the caller sees a uniform RequestError.
			httpClient = c.base
		}

		var body io.Reader
		var contentType string
		if rc.makeBody != nil {
			body, contentType, err = rc.makeBody()
			if err != nil {
				return nil, &RequestError{Endpoint: rc.endpoint, Err: err}
			}
		}

		req, err := http.NewRequestWithContext(ctx, rc.method, target, body)
		if err != nil {
			return nil, &RequestError{Endpoint: rc.endpoint, Err: err}
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, &RequestError{Endpoint: rc.endpoint, Err: err}
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &RequestError{Endpoint: rc.endpoint, Err: err}
		}

		if resp.StatusCode == http.StatusForbidden && attempt < c.maxAttempts {
			c.logger.Debug().
				Str("endpoint", rc.endpoint).
				Int("attempt", attempt+1).
				Msg("session rejected, re-authenticating")

			if err := c.session.Authenticate(ctx); err != nil {
				// Not surfaced here; the retry loop decides the outcome.
				c.logger.Debug().Err(err).Msg("re-authentication failed")
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &RequestError{Endpoint: rc.endpoint, StatusCode: resp.StatusCode}
		}

		return &Response{raw: raw}, nil
	}
}
