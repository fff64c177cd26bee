package qbittorrent

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	searchStatusRunning = "Running"
	searchPollInterval  = 500 * time.Millisecond
)

var errSearchRunning = errors.New("search still running")

// SearchOptions controls a built-in search-engine query.
type SearchOptions struct {
	// Plugins selects which search plugins to use, "all" when empty.
	Plugins string
	// Category restricts the search category, "all" when empty.
	Category string
	// Limit caps the number of returned results, 500 when zero.
	Limit int
	// Offset skips the first results.
	Offset int
}

// StartSearch starts a search job and returns its id.
func (c *Client) StartSearch(ctx context.Context, pattern string, opts SearchOptions) (int64, error) {
	if pattern == "" {
		return 0, &ValidationError{Field: "pattern", Reason: "must not be empty"}
	}

	plugins := opts.Plugins
	if plugins == "" {
		plugins = "all"
	}
	category := opts.Category
	if category == "" {
		category = "all"
	}

	data := url.Values{}
	data.Set("pattern", pattern)
	data.Set("category", category)
	data.Set("plugins", plugins)

	resp, err := c.post(ctx, "search/start", data)
	if err != nil {
		return 0, err
	}

	var job SearchJob
	if err := resp.Decode(&job); err != nil {
		return 0, &RequestError{Endpoint: "search/start", Err: err}
	}
	return job.ID, nil
}

// StopSearch stops a running search job.
func (c *Client) StopSearch(ctx context.Context, id int64) error {
	data := url.Values{}
	data.Set("id", strconv.FormatInt(id, 10))
	_, err := c.post(ctx, "search/stop", data)
	return err
}

// SearchResults returns the current results of a search job.
func (c *Client) SearchResults(ctx context.Context, id int64, limit, offset int) (*SearchResults, error) {
	if limit <= 0 {
		limit = 500
	}

	data := url.Values{}
	data.Set("id", strconv.FormatInt(id, 10))
	data.Set("limit", strconv.Itoa(limit))
	data.Set("offset", strconv.Itoa(offset))

	resp, err := c.post(ctx, "search/results", data)
	if err != nil {
		return nil, err
	}

	var results SearchResults
	if err := resp.Decode(&results); err != nil {
		return nil, &RequestError{Endpoint: "search/results", Err: err}
	}
	return &results, nil
}

// Search runs a query against the built-in search engine and blocks until
// the job finishes, polling search/results at a fixed interval. Cancel the
// context to abandon a long-running search.
func (c *Client) Search(ctx context.Context, pattern string, opts SearchOptions) (*SearchResults, error) {
	id, err := c.StartSearch(ctx, pattern, opts)
	if err != nil {
		return nil, err
	}

	var results *SearchResults
	poll := func() error {
		res, err := c.SearchResults(ctx, id, opts.Limit, opts.Offset)
		if err != nil {
			return backoff.Permanent(err)
		}
		if res.Status == searchStatusRunning {
			return errSearchRunning
		}
		results = res
		return nil
	}

	ticker := backoff.WithContext(backoff.NewConstantBackOff(searchPollInterval), ctx)
	if err := backoff.Retry(poll, ticker); err != nil {
		// The job keeps running server-side when polling is abandoned;
		// stop it even if the caller's context is already cancelled.
		if stopErr := c.StopSearch(context.WithoutCancel(ctx), id); stopErr != nil {
			c.logger.Debug().Err(stopErr).Int64("id", id).Msg("failed to stop abandoned search")
		}
		return nil, err
	}

	c.logger.Debug().
		Str("pattern", pattern).
		Int("results", len(results.Results)).
		Msg("search finished")
	return results, nil
}

// SearchPlugins lists the installed search plugins.
func (c *Client) SearchPlugins(ctx context.Context) ([]SearchPlugin, error) {
	resp, err := c.get(ctx, "search/plugins", nil)
	if err != nil {
		return nil, err
	}

	var plugins []SearchPlugin
	if err := resp.Decode(&plugins); err != nil {
		return nil, &RequestError{Endpoint: "search/plugins", Err: err}
	}
	return plugins, nil
}

// InstallSearchPlugin installs search plugins from raw source URLs.
func (c *Client) InstallSearchPlugin(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return &ValidationError{Field: "sources", Reason: "at least one plugin URL is required"}
	}

	data := url.Values{}
	data.Set("sources", strings.Join(sources, "|"))
	_, err := c.post(ctx, "search/installPlugin", data)
	return err
}

// EnableSearchPlugin enables or disables the named search plugins.
func (c *Client) EnableSearchPlugin(ctx context.Context, names []string, enable bool) error {
	if len(names) == 0 {
		return &ValidationError{Field: "names", Reason: "at least one plugin name is required"}
	}

	data := url.Values{}
	data.Set("names", strings.Join(names, "|"))
	data.Set("enable", strconv.FormatBool(enable))
	_, err := c.post(ctx, "search/enablePlugin", data)
	return err
}
