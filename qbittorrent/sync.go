package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SyncMainData returns the incremental main-data update since rid. Pass 0
// for a full snapshot; subsequent calls should pass the RID of the previous
// response.
func (c *Client) SyncMainData(ctx context.Context, rid int64) (*MainData, error) {
	params := url.Values{}
	params.Set("rid", strconv.FormatInt(rid, 10))

	resp, err := c.get(ctx, "sync/maindata", params)
	if err != nil {
		return nil, err
	}

	var data MainData
	if err := resp.Decode(&data); err != nil {
		return nil, &RequestError{Endpoint: "sync/maindata", Err: err}
	}
	return &data, nil
}

// SyncTorrentPeers returns the incremental peer-list update of a torrent
// since rid.
func (c *Client) SyncTorrentPeers(ctx context.Context, infohash string, rid int64) (*TorrentPeers, error) {
	params := url.Values{}
	params.Set("hash", strings.ToLower(infohash))
	params.Set("rid", strconv.FormatInt(rid, 10))

	resp, err := c.get(ctx, "sync/torrentPeers", params)
	if err != nil {
		return nil, err
	}

	var peers TorrentPeers
	if err := resp.Decode(&peers); err != nil {
		return nil, &RequestError{Endpoint: "sync/torrentPeers", Err: err}
	}
	return &peers, nil
}
