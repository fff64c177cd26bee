package qbittorrent

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TorrentFilterOptions narrows down a torrents/info listing.
type TorrentFilterOptions struct {
	Filter   string
	Category string
	Sort     string
	Reverse  bool
	Limit    int
	Offset   int
	Hashes   Hashes
}

func (o TorrentFilterOptions) params() (url.Values, error) {
	params := url.Values{}
	if o.Filter != "" {
		params.Set("filter", o.Filter)
	}
	if o.Category != "" {
		params.Set("category", o.Category)
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	if o.Reverse {
		params.Set("reverse", "true")
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset != 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Hashes.all || len(o.Hashes.list) > 0 {
		value, err := o.Hashes.encode()
		if err != nil {
			return nil, err
		}
		params.Set("hashes", value)
	}
	return params, nil
}

// Torrents returns the torrent list, optionally filtered.
func (c *Client) Torrents(ctx context.Context, opts TorrentFilterOptions) ([]Torrent, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "torrents/info", params)
	if err != nil {
		return nil, err
	}

	var torrents []Torrent
	if err := resp.Decode(&torrents); err != nil {
		return nil, &RequestError{Endpoint: "torrents/info", Err: err}
	}

	c.logger.Debug().Int("count", len(torrents)).Msg("retrieved torrents")
	return torrents, nil
}

// Properties returns detailed properties of a single torrent.
func (c *Client) Properties(ctx context.Context, infohash string) (*TorrentProperties, error) {
	resp, err := c.get(ctx, "torrents/properties", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var props TorrentProperties
	if err := resp.Decode(&props); err != nil {
		return nil, &RequestError{Endpoint: "torrents/properties", Err: err}
	}
	return &props, nil
}

// Trackers returns the trackers of a torrent.
func (c *Client) Trackers(ctx context.Context, infohash string) ([]Tracker, error) {
	resp, err := c.get(ctx, "torrents/trackers", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var trackers []Tracker
	if err := resp.Decode(&trackers); err != nil {
		return nil, &RequestError{Endpoint: "torrents/trackers", Err: err}
	}
	return trackers, nil
}

// Webseeds returns the web seeds of a torrent.
func (c *Client) Webseeds(ctx context.Context, infohash string) ([]Webseed, error) {
	resp, err := c.get(ctx, "torrents/webseeds", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var seeds []Webseed
	if err := resp.Decode(&seeds); err != nil {
		return nil, &RequestError{Endpoint: "torrents/webseeds", Err: err}
	}
	return seeds, nil
}

// Files returns the file list of a torrent.
func (c *Client) Files(ctx context.Context, infohash string) ([]TorrentFile, error) {
	resp, err := c.get(ctx, "torrents/files", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var files []TorrentFile
	if err := resp.Decode(&files); err != nil {
		return nil, &RequestError{Endpoint: "torrents/files", Err: err}
	}
	return files, nil
}

// PieceStates returns the state of every piece of a torrent, in order.
func (c *Client) PieceStates(ctx context.Context, infohash string) ([]int, error) {
	resp, err := c.get(ctx, "torrents/pieceStates", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var states []int
	if err := resp.Decode(&states); err != nil {
		return nil, &RequestError{Endpoint: "torrents/pieceStates", Err: err}
	}
	return states, nil
}

// PieceHashes returns the hash of every piece of a torrent, in order.
func (c *Client) PieceHashes(ctx context.Context, infohash string) ([]string, error) {
	resp, err := c.get(ctx, "torrents/pieceHashes", hashParam(infohash))
	if err != nil {
		return nil, err
	}

	var hashes []string
	if err := resp.Decode(&hashes); err != nil {
		return nil, &RequestError{Endpoint: "torrents/pieceHashes", Err: err}
	}
	return hashes, nil
}

// AddTorrentOptions carries the optional fields of torrents/add.
type AddTorrentOptions struct {
	SavePath              string
	Category              string
	Tags                  string
	SkipChecking          bool
	Paused                bool
	RootFolder            string
	Rename                string
	UploadLimit           int64
	DownloadLimit         int64
	AutoTorrentManagement bool
	SequentialDownload    bool
	FirstLastPiecePrio    bool
}

func (o *AddTorrentOptions) fields() map[string]string {
	fields := make(map[string]string)
	if o == nil {
		return fields
	}
	if o.SavePath != "" {
		fields["savepath"] = o.SavePath
	}
	if o.Category != "" {
		fields["category"] = o.Category
	}
	if o.Tags != "" {
		fields["tags"] = o.Tags
	}
	if o.SkipChecking {
		fields["skip_checking"] = "true"
	}
	if o.Paused {
		fields["paused"] = "true"
	}
	if o.RootFolder != "" {
		fields["root_folder"] = o.RootFolder
	}
	if o.Rename != "" {
		fields["rename"] = o.Rename
	}
	if o.UploadLimit > 0 {
		fields["upLimit"] = strconv.FormatInt(o.UploadLimit, 10)
	}
	if o.DownloadLimit > 0 {
		fields["dlLimit"] = strconv.FormatInt(o.DownloadLimit, 10)
	}
	if o.AutoTorrentManagement {
		fields["autoTMM"] = "true"
	}
	if o.SequentialDownload {
		fields["sequentialDownload"] = "true"
	}
	if o.FirstLastPiecePrio {
		fields["firstLastPiecePrio"] = "true"
	}
	return fields
}

// AddTorrentURLs adds torrents from magnet or HTTP links. Multiple links go
// into a single newline-separated "urls" field. The server expects a
// multipart body even without file parts, hence a dummy part is attached.
func (c *Client) AddTorrentURLs(ctx context.Context, links []string, opts *AddTorrentOptions) error {
	if len(links) == 0 {
		return &ValidationError{Field: "links", Reason: "at least one link is required"}
	}

	fields := opts.fields()
	fields["urls"] = strings.Join(links, "\n")

	dummy := []uploadFile{{field: "_dummy", name: "_dummy"}}
	_, err := c.postMultipart(ctx, "torrents/add", fields, dummy)
	return err
}

// AddTorrentFiles adds torrents from raw .torrent file contents, keyed by
// file name.
func (c *Client) AddTorrentFiles(ctx context.Context, files map[string][]byte, opts *AddTorrentOptions) error {
	if len(files) == 0 {
		return &ValidationError{Field: "files", Reason: "at least one torrent file is required"}
	}

	var parts []uploadFile
	for name, data := range files {
		parts = append(parts, uploadFile{field: "torrents", name: name, data: data})
	}

	_, err := c.postMultipart(ctx, "torrents/add", opts.fields(), parts)
	return err
}

// AddTrackers adds tracker URLs to a torrent. Trackers are joined with
// newlines on the wire; ampersands inside tracker URLs must already be
// escaped by the caller.
func (c *Client) AddTrackers(ctx context.Context, infohash string, trackers []string) error {
	if len(trackers) == 0 {
		return &ValidationError{Field: "trackers", Reason: "at least one tracker URL is required"}
	}

	data := url.Values{}
	data.Set("hash", strings.ToLower(infohash))
	data.Set("urls", strings.Join(trackers, "\n"))
	_, err := c.post(ctx, "torrents/addTrackers", data)
	return err
}

// SetLocation moves the content of the targeted torrents to location.
func (c *Client) SetLocation(ctx context.Context, hashes Hashes, location string) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("location", location)
	_, err = c.post(ctx, "torrents/setLocation", data)
	return err
}

// Rename changes the display name of a torrent.
func (c *Client) Rename(ctx context.Context, infohash, name string) error {
	data := url.Values{}
	data.Set("hash", strings.ToLower(infohash))
	data.Set("name", name)
	_, err := c.post(ctx, "torrents/rename", data)
	return err
}

// Pause pauses the targeted torrents.
func (c *Client) Pause(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/pause", hashes)
}

// Resume resumes the targeted torrents.
func (c *Client) Resume(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/resume", hashes)
}

// Delete removes the targeted torrents. With deleteFiles the downloaded data
// is removed from disk as well.
func (c *Client) Delete(ctx context.Context, hashes Hashes, deleteFiles bool) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("deleteFiles", strconv.FormatBool(deleteFiles))
	_, err = c.post(ctx, "torrents/delete", data)
	return err
}

// Recheck rechecks the targeted torrents.
func (c *Client) Recheck(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/recheck", hashes)
}

// Reannounce reannounces the targeted torrents to their trackers.
func (c *Client) Reannounce(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/reannounce", hashes)
}

// IncreasePriority moves the targeted torrents up in the download queue.
func (c *Client) IncreasePriority(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/increasePrio", hashes)
}

// DecreasePriority moves the targeted torrents down in the download queue.
func (c *Client) DecreasePriority(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/decreasePrio", hashes)
}

// TopPriority moves the targeted torrents to the top of the queue.
func (c *Client) TopPriority(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/topPrio", hashes)
}

// BottomPriority moves the targeted torrents to the bottom of the queue.
func (c *Client) BottomPriority(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/bottomPrio", hashes)
}

// validFilePriorities is the discrete set accepted by torrents/filePrio:
// 0 (do not download), 1 (normal), 2 (legacy high), 4 (legacy), 6 (high),
// 7 (maximum).
var validFilePriorities = map[int]bool{0: true, 1: true, 2: true, 4: true, 6: true, 7: true}

// SetFilePriority sets the download priority of one file inside a torrent.
func (c *Client) SetFilePriority(ctx context.Context, infohash string, fileID, priority int) error {
	if !validFilePriorities[priority] {
		return &ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%d is not one of 0, 1, 2, 4, 6, 7", priority),
		}
	}
	if fileID < 0 {
		return &ValidationError{Field: "fileID", Reason: "must not be negative"}
	}

	data := url.Values{}
	data.Set("hash", strings.ToLower(infohash))
	data.Set("id", strconv.Itoa(fileID))
	data.Set("priority", strconv.Itoa(priority))
	_, err := c.post(ctx, "torrents/filePrio", data)
	return err
}

// SetAutoManagement toggles automatic torrent management for the targets.
func (c *Client) SetAutoManagement(ctx context.Context, hashes Hashes, enable bool) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("enable", strconv.FormatBool(enable))
	_, err = c.post(ctx, "torrents/setAutoManagement", data)
	return err
}

// SetCategory assigns the targeted torrents to category. An empty category
// removes them from every category. The category must already exist; the
// server answers 409 for unknown names.
func (c *Client) SetCategory(ctx context.Context, hashes Hashes, category string) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("category", category)
	_, err = c.post(ctx, "torrents/setCategory", data)
	return err
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}

	data := url.Values{}
	data.Set("category", category)
	_, err := c.post(ctx, "torrents/createCategory", data)
	return err
}

// RemoveCategories deletes the given categories.
func (c *Client) RemoveCategories(ctx context.Context, categories []string) error {
	if len(categories) == 0 {
		return &ValidationError{Field: "categories", Reason: "at least one category is required"}
	}

	data := url.Values{}
	data.Set("categories", strings.Join(categories, "\n"))
	_, err := c.post(ctx, "torrents/removeCategories", data)
	return err
}

// DownloadLimits returns the download speed limit of each targeted torrent,
// keyed by info hash, in bytes per second (0 means unlimited).
func (c *Client) DownloadLimits(ctx context.Context, hashes Hashes) (map[string]int64, error) {
	return c.limitsPost(ctx, "torrents/downloadLimit", hashes)
}

// SetDownloadLimit sets the download speed limit of the targeted torrents in
// bytes per second.
func (c *Client) SetDownloadLimit(ctx context.Context, hashes Hashes, limit int64) error {
	return c.setLimitPost(ctx, "torrents/setDownloadLimit", hashes, limit)
}

// UploadLimits returns the upload speed limit of each targeted torrent,
// keyed by info hash, in bytes per second (0 means unlimited).
func (c *Client) UploadLimits(ctx context.Context, hashes Hashes) (map[string]int64, error) {
	return c.limitsPost(ctx, "torrents/uploadLimit", hashes)
}

// SetUploadLimit sets the upload speed limit of the targeted torrents in
// bytes per second.
func (c *Client) SetUploadLimit(ctx context.Context, hashes Hashes, limit int64) error {
	return c.setLimitPost(ctx, "torrents/setUploadLimit", hashes, limit)
}

// ToggleSequentialDownload toggles sequential download for the targets.
func (c *Client) ToggleSequentialDownload(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/toggleSequentialDownload", hashes)
}

// ToggleFirstLastPiecePriority toggles first/last piece priority for the
// targets.
func (c *Client) ToggleFirstLastPiecePriority(ctx context.Context, hashes Hashes) error {
	return c.hashesPost(ctx, "torrents/toggleFirstLastPiecePrio", hashes)
}

// SetForceStart sets the force-start flag on the targeted torrents.
func (c *Client) SetForceStart(ctx context.Context, hashes Hashes, value bool) error {
	return c.valuePost(ctx, "torrents/setForceStart", hashes, value)
}

// SetSuperSeeding sets super seeding on the targeted torrents.
func (c *Client) SetSuperSeeding(ctx context.Context, hashes Hashes, value bool) error {
	return c.valuePost(ctx, "torrents/setSuperSeeding", hashes, value)
}

func (c *Client) hashesPost(ctx context.Context, endpoint string, hashes Hashes) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	_, err = c.post(ctx, endpoint, data)
	return err
}

func (c *Client) valuePost(ctx context.Context, endpoint string, hashes Hashes, value bool) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("value", strconv.FormatBool(value))
	_, err = c.post(ctx, endpoint, data)
	return err
}

func (c *Client) limitsPost(ctx context.Context, endpoint string, hashes Hashes) (map[string]int64, error) {
	data, err := hashes.form()
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, endpoint, data)
	if err != nil {
		return nil, err
	}

	limits := make(map[string]int64)
	if err := resp.Decode(&limits); err != nil {
		return nil, &RequestError{Endpoint: endpoint, Err: err}
	}
	return limits, nil
}

func (c *Client) setLimitPost(ctx context.Context, endpoint string, hashes Hashes, limit int64) error {
	data, err := hashes.form()
	if err != nil {
		return err
	}

	data.Set("limit", strconv.FormatInt(limit, 10))
	_, err = c.post(ctx, endpoint, data)
	return err
}

// hashParam builds the single-hash query shared by the torrent detail
// endpoints. Hashes are lower-cased because the server matches them
// case-sensitively.
func hashParam(infohash string) url.Values {
	params := url.Values{}
	params.Set("hash", strings.ToLower(infohash))
	return params
}
