package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
)

// TransferInfo returns the global transfer statistics.
func (c *Client) TransferInfo(ctx context.Context) (*TransferInfo, error) {
	resp, err := c.get(ctx, "transfer/info", nil)
	if err != nil {
		return nil, err
	}

	var info TransferInfo
	if err := resp.Decode(&info); err != nil {
		return nil, &RequestError{Endpoint: "transfer/info", Err: err}
	}
	return &info, nil
}

// GlobalDownloadLimit returns the global download speed limit in bytes per
// second; 0 means unlimited.
func (c *Client) GlobalDownloadLimit(ctx context.Context) (int64, error) {
	resp, err := c.get(ctx, "transfer/downloadLimit", nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(resp.Text(), 10, 64)
}

// SetGlobalDownloadLimit sets the global download speed limit in bytes per
// second.
func (c *Client) SetGlobalDownloadLimit(ctx context.Context, limit int64) error {
	data := url.Values{}
	data.Set("limit", strconv.FormatInt(limit, 10))
	_, err := c.post(ctx, "transfer/setDownloadLimit", data)
	return err
}

// GlobalUploadLimit returns the global upload speed limit in bytes per
// second; 0 means unlimited.
func (c *Client) GlobalUploadLimit(ctx context.Context) (int64, error) {
	resp, err := c.get(ctx, "transfer/uploadLimit", nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(resp.Text(), 10, 64)
}

// SetGlobalUploadLimit sets the global upload speed limit in bytes per
// second.
func (c *Client) SetGlobalUploadLimit(ctx context.Context, limit int64) error {
	data := url.Values{}
	data.Set("limit", strconv.FormatInt(limit, 10))
	_, err := c.post(ctx, "transfer/setUploadLimit", data)
	return err
}

// AlternativeSpeedLimitsEnabled reports whether the alternative speed limits
// are active. The endpoint answers "1" or "0".
func (c *Client) AlternativeSpeedLimitsEnabled(ctx context.Context) (bool, error) {
	resp, err := c.get(ctx, "transfer/speedLimitsMode", nil)
	if err != nil {
		return false, err
	}
	return resp.Text() == "1", nil
}

// ToggleAlternativeSpeedLimits switches the alternative speed limits on or
// off.
func (c *Client) ToggleAlternativeSpeedLimits(ctx context.Context) error {
	_, err := c.post(ctx, "transfer/toggleSpeedLimitsMode", url.Values{})
	return err
}
