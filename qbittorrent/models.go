package qbittorrent

// Torrent is one entry of the torrents/info listing.
type Torrent struct {
	Hash               string  `json:"hash"`
	Name               string  `json:"name"`
	State              string  `json:"state"`
	Size               int64   `json:"size"`
	TotalSize          int64   `json:"total_size"`
	Progress           float64 `json:"progress"`
	Ratio              float64 `json:"ratio"`
	DownloadSpeed      int64   `json:"dlspeed"`
	UploadSpeed        int64   `json:"upspeed"`
	Downloaded         int64   `json:"downloaded"`
	Uploaded           int64   `json:"uploaded"`
	AmountLeft         int64   `json:"amount_left"`
	ETA                int64   `json:"eta"`
	Priority           int     `json:"priority"`
	NumSeeds           int     `json:"num_seeds"`
	NumLeechers        int     `json:"num_leechs"`
	Category           string  `json:"category"`
	Tags               string  `json:"tags"`
	SavePath           string  `json:"save_path"`
	ContentPath        string  `json:"content_path"`
	AddedOn            int64   `json:"added_on"`
	CompletionOn       int64   `json:"completion_on"`
	DownloadLimit      int64   `json:"dl_limit"`
	UploadLimit        int64   `json:"up_limit"`
	AutoManaged        bool    `json:"auto_tmm"`
	SequentialDownload bool    `json:"seq_dl"`
	FirstLastPiecePrio bool    `json:"f_l_piece_prio"`
	ForceStart         bool    `json:"force_start"`
	SuperSeeding       bool    `json:"super_seeding"`
}

// IsActivelySeeding checks if the torrent is actively seeding.
func (t *Torrent) IsActivelySeeding() bool {
	switch t.State {
	case "uploading", "stalledUP", "queuedUP", "forcedUP":
		return true
	}
	return false
}

// IsComplete reports whether the torrent finished downloading.
func (t *Torrent) IsComplete() bool {
	return t.Progress >= 1.0
}

// TorrentProperties is the torrents/properties payload for a single torrent.
type TorrentProperties struct {
	SavePath          string  `json:"save_path"`
	CreationDate      int64   `json:"creation_date"`
	PieceSize         int64   `json:"piece_size"`
	PiecesHave        int     `json:"pieces_have"`
	PiecesNum         int     `json:"pieces_num"`
	Comment           string  `json:"comment"`
	TotalDownloaded   int64   `json:"total_downloaded"`
	TotalUploaded     int64   `json:"total_uploaded"`
	TotalSize         int64   `json:"total_size"`
	TotalWasted       int64   `json:"total_wasted"`
	UploadLimit       int64   `json:"up_limit"`
	DownloadLimit     int64   `json:"dl_limit"`
	TimeElapsed       int64   `json:"time_elapsed"`
	SeedingTime       int64   `json:"seeding_time"`
	NumConnections    int     `json:"nb_connections"`
	NumConnectionsMax int     `json:"nb_connections_limit"`
	ShareRatio        float64 `json:"share_ratio"`
	AdditionDate      int64   `json:"addition_date"`
	CompletionDate    int64   `json:"completion_date"`
	CreatedBy         string  `json:"created_by"`
	DownloadSpeed     int64   `json:"dl_speed"`
	DownloadSpeedAvg  int64   `json:"dl_speed_avg"`
	UploadSpeed       int64   `json:"up_speed"`
	UploadSpeedAvg    int64   `json:"up_speed_avg"`
	ETA               int64   `json:"eta"`
	LastSeen          int64   `json:"last_seen"`
	Peers             int     `json:"peers"`
	PeersTotal        int     `json:"peers_total"`
	Seeds             int     `json:"seeds"`
	SeedsTotal        int     `json:"seeds_total"`
}

// Tracker is one entry of torrents/trackers.
type Tracker struct {
	URL           string `json:"url"`
	Status        int    `json:"status"`
	Tier          int    `json:"tier"`
	NumPeers      int    `json:"num_peers"`
	NumSeeds      int    `json:"num_seeds"`
	NumLeechers   int    `json:"num_leeches"`
	NumDownloaded int    `json:"num_downloaded"`
	Message       string `json:"msg"`
}

// Webseed is one entry of torrents/webseeds.
type Webseed struct {
	URL string `json:"url"`
}

// TorrentFile is one entry of torrents/files.
type TorrentFile struct {
	Index        int     `json:"index"`
	Name         string  `json:"name"`
	Size         int64   `json:"size"`
	Progress     float64 `json:"progress"`
	Priority     int     `json:"priority"`
	IsSeed       bool    `json:"is_seed"`
	PieceRange   []int   `json:"piece_range"`
	Availability float64 `json:"availability"`
}

// TransferInfo is the transfer/info payload (global transfer statistics).
type TransferInfo struct {
	ConnectionStatus  string `json:"connection_status"`
	DHTNodes          int64  `json:"dht_nodes"`
	DownloadData      int64  `json:"dl_info_data"`
	DownloadSpeed     int64  `json:"dl_info_speed"`
	DownloadRateLimit int64  `json:"dl_rate_limit"`
	UploadData        int64  `json:"up_info_data"`
	UploadSpeed       int64  `json:"up_info_speed"`
	UploadRateLimit   int64  `json:"up_rate_limit"`
}

// MainData is the sync/maindata payload. Torrents are keyed by info hash;
// partial updates only carry the fields that changed since the given rid.
type MainData struct {
	RID               int64               `json:"rid"`
	FullUpdate        bool                `json:"full_update"`
	Torrents          map[string]Torrent  `json:"torrents"`
	TorrentsRemoved   []string            `json:"torrents_removed"`
	Categories        map[string]Category `json:"categories"`
	CategoriesRemoved []string            `json:"categories_removed"`
	Tags              []string            `json:"tags"`
	TagsRemoved       []string            `json:"tags_removed"`
	ServerState       ServerState         `json:"server_state"`
}

// Category describes a torrent category.
type Category struct {
	Name     string `json:"name"`
	SavePath string `json:"savePath"`
}

// ServerState is the server_state block of sync/maindata.
type ServerState struct {
	ConnectionStatus  string `json:"connection_status"`
	DHTNodes          int64  `json:"dht_nodes"`
	DownloadData      int64  `json:"dl_info_data"`
	DownloadSpeed     int64  `json:"dl_info_speed"`
	DownloadRateLimit int64  `json:"dl_rate_limit"`
	UploadData        int64  `json:"up_info_data"`
	UploadSpeed       int64  `json:"up_info_speed"`
	UploadRateLimit   int64  `json:"up_rate_limit"`
	AllTimeDownloaded int64  `json:"alltime_dl"`
	AllTimeUploaded   int64  `json:"alltime_ul"`
	GlobalRatio       string `json:"global_ratio"`
	QueuedIOJobs      int64  `json:"queued_io_jobs"`
	Queueing          bool   `json:"queueing"`
	RefreshInterval   int64  `json:"refresh_interval"`
	FreeSpaceOnDisk   int64  `json:"free_space_on_disk"`
	UseAltSpeedLimits bool   `json:"use_alt_speed_limits"`
}

// TorrentPeers is the sync/torrentPeers payload.
type TorrentPeers struct {
	RID        int64           `json:"rid"`
	FullUpdate bool            `json:"full_update"`
	ShowFlags  bool            `json:"show_flags"`
	Peers      map[string]Peer `json:"peers"`
}

// Peer is one connected peer of a torrent.
type Peer struct {
	IP            string  `json:"ip"`
	Port          int     `json:"port"`
	Client        string  `json:"client"`
	Connection    string  `json:"connection"`
	Country       string  `json:"country"`
	CountryCode   string  `json:"country_code"`
	Flags         string  `json:"flags"`
	Progress      float64 `json:"progress"`
	DownloadSpeed int64   `json:"dl_speed"`
	UploadSpeed   int64   `json:"up_speed"`
	Downloaded    int64   `json:"downloaded"`
	Uploaded      int64   `json:"uploaded"`
	Relevance     float64 `json:"relevance"`
}

// LogEntry is one entry of log/main.
type LogEntry struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Type      int    `json:"type"`
}

// SearchJob identifies a running search.
type SearchJob struct {
	ID int64 `json:"id"`
}

// SearchResults is the search/results payload.
type SearchResults struct {
	Status  string         `json:"status"`
	Total   int            `json:"total"`
	Results []SearchResult `json:"results"`
}

// SearchResult is one hit returned by the search engine.
type SearchResult struct {
	DescriptionLink string `json:"descrLink"`
	FileName        string `json:"fileName"`
	FileSize        int64  `json:"fileSize"`
	FileURL         string `json:"fileUrl"`
	NumSeeders      int    `json:"nbSeeders"`
	NumLeechers     int    `json:"nbLeechers"`
	SiteURL         string `json:"siteUrl"`
}

// SearchPlugin describes an installed search plugin.
type SearchPlugin struct {
	Enabled             bool     `json:"enabled"`
	FullName            string   `json:"fullName"`
	Name                string   `json:"name"`
	SupportedCategories []string `json:"supportedCategories"`
	URL                 string   `json:"url"`
	Version             string   `json:"version"`
}
