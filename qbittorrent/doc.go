// Package qbittorrent provides a client for the qBittorrent Web API (api/v2).
//
// The client owns an authenticated session: construction logs in with the
// supplied credentials, every call carries the resulting session cookie, and
// a session the server has invalidated (timeout, restart) is renewed
// transparently, retrying the original request up to a configured number of
// times. Callers never deal with re-login themselves.
//
// # Usage
//
//	client, err := qbittorrent.NewClient(ctx, url, username, password, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List downloading torrents
//	torrents, err := client.Torrents(ctx, qbittorrent.TorrentFilterOptions{
//	    Filter: "downloading",
//	})
//
//	// Pause two of them
//	err = client.Pause(ctx, qbittorrent.HashList(torrents[0].Hash, torrents[1].Hash))
//
//	// Or everything at once
//	err = client.Pause(ctx, qbittorrent.AllTorrents())
//
// Commands addressing torrents take a Hashes target: one hash, an ordered
// list, or AllTorrents(). Failed calls return typed errors
// (ErrInvalidCredentials, ErrNotAuthenticated, *RequestError,
// *ValidationError); branch with errors.Is and errors.As.
package qbittorrent
