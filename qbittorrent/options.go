package qbittorrent

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout       time.Duration
	dialTimeout   time.Duration
	maxAttempts   int
	userAgent     string
	skipTLSVerify bool
	transport     http.RoundTripper
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     30 * time.Second,
		maxAttempts: defaultMaxAttemptsOn403,
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithDialTimeout sets a separate connect timeout. Together with WithTimeout
// this mirrors a (connect, read) timeout pair.
func WithDialTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.dialTimeout = timeout
	}
}

// WithMaxAttempts sets how many times a request is retried after a 403 and a
// re-login before it fails with a RequestError.
func WithMaxAttempts(attempts int) Option {
	return func(o *clientOptions) {
		if attempts >= 0 {
			o.maxAttempts = attempts
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.skipTLSVerify = true
	}
}

// WithTransport replaces the underlying HTTP transport. Mostly useful in
// tests; overrides WithDialTimeout and WithInsecureSkipVerify.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = rt
	}
}
