package qbittorrent

import (
	"net/url"
	"strings"
)

// hashSeparator joins multiple info hashes on the wire.
const hashSeparator = "|"

// allTorrents is the server-side sentinel addressing every known torrent.
const allTorrents = "all"

// Hashes selects the torrents a command applies to: one info hash, an
// ordered list of them, or every torrent. The canonical hash form is
// lower-case hex and the server matches case-sensitively, so values are
// lower-cased during encoding.
type Hashes struct {
	all  bool
	list []string
}

// Hash targets a single torrent.
func Hash(infohash string) Hashes {
	return Hashes{list: []string{infohash}}
}

// HashList targets the given torrents in order.
func HashList(infohashes ...string) Hashes {
	return Hashes{list: infohashes}
}

// AllTorrents targets every torrent known to the server.
func AllTorrents() Hashes {
	return Hashes{all: true}
}

// IsAll reports whether the target is the all-torrents sentinel.
func (h Hashes) IsAll() bool {
	return h.all
}

// encode produces the wire value: lower-cased hashes joined by "|", or the
// literal "all". An empty target is a caller error, never an empty string.
func (h Hashes) encode() (string, error) {
	if h.all {
		return allTorrents, nil
	}
	if len(h.list) == 0 {
		return "", &ValidationError{Field: "hashes", Reason: "at least one info hash is required"}
	}

	lowered := make([]string, len(h.list))
	for i, infohash := range h.list {
		lowered[i] = strings.ToLower(infohash)
	}
	return strings.Join(lowered, hashSeparator), nil
}

// form builds the request body shared by every multi-target command.
func (h Hashes) form() (url.Values, error) {
	value, err := h.encode()
	if err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("hashes", value)
	return data, nil
}
