package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
)

// LogOptions narrows down a log/main query. The include flags default to
// true on the server, so only explicit exclusions are sent.
type LogOptions struct {
	ExcludeNormal   bool
	ExcludeInfo     bool
	ExcludeWarning  bool
	ExcludeCritical bool

	// LastKnownID excludes entries with id <= LastKnownID. Nil sends
	// nothing, keeping the server default of -1 (no exclusion), so an
	// explicit 0 is still expressible.
	LastKnownID *int64
}

// Log returns main log entries matching the supplied options.
func (c *Client) Log(ctx context.Context, opts LogOptions) ([]LogEntry, error) {
	params := url.Values{}
	if opts.ExcludeNormal {
		params.Set("normal", "false")
	}
	if opts.ExcludeInfo {
		params.Set("info", "false")
	}
	if opts.ExcludeWarning {
		params.Set("warning", "false")
	}
	if opts.ExcludeCritical {
		params.Set("critical", "false")
	}
	if opts.LastKnownID != nil {
		params.Set("last_known_id", strconv.FormatInt(*opts.LastKnownID, 10))
	}

	resp, err := c.get(ctx, "log/main", params)
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	if err := resp.Decode(&entries); err != nil {
		return nil, &RequestError{Endpoint: "log/main", Err: err}
	}
	return entries, nil
}
