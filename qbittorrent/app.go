package qbittorrent

import (
	"context"
	"encoding/json"
	"fmt"
)

// AppVersion returns the qBittorrent application version, e.g. "v4.3.2".
// The server answers with plain text, not JSON.
func (c *Client) AppVersion(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, "app/version", nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// WebAPIVersion returns the Web API version.
func (c *Client) WebAPIVersion(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, "app/webapiVersion", nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Shutdown shuts down the qBittorrent application.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.get(ctx, "app/shutdown", nil)
	return err
}

// DefaultSavePath returns the default download directory.
func (c *Client) DefaultSavePath(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, "app/defaultSavePath", nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Preferences is a snapshot of the server preferences taken by
// Client.Preferences. It is a disconnected copy: writes through Set update
// the server and this snapshot, but never previously taken snapshots.
type Preferences struct {
	client *Client
	values map[string]any
}

// Preferences fetches the current server preferences.
func (c *Client) Preferences(ctx context.Context) (*Preferences, error) {
	resp, err := c.get(ctx, "app/preferences", nil)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if err := resp.Decode(&values); err != nil {
		return nil, &RequestError{Endpoint: "app/preferences", Err: err}
	}

	return &Preferences{client: c, values: values}, nil
}

// SetPreferences applies the given key/value pairs on the server. The body
// is the form field "json=<serialized object>".
func (c *Client) SetPreferences(ctx context.Context, prefs map[string]any) error {
	encoded, err := json.Marshal(prefs)
	if err != nil {
		return &ValidationError{Field: "preferences", Reason: err.Error()}
	}

	_, err = c.postRaw(ctx, "app/setPreferences", fmt.Sprintf("json=%s", encoded))
	return err
}

// Get returns the snapshot value for key.
func (p *Preferences) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set writes a single preference on the server and mirrors it into this
// snapshot. No re-fetch happens.
func (p *Preferences) Set(ctx context.Context, key string, value any) error {
	if err := p.client.SetPreferences(ctx, map[string]any{key: value}); err != nil {
		return err
	}
	p.values[key] = value
	return nil
}

// All returns a copy of the snapshot contents.
func (p *Preferences) All() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}
