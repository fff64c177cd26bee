package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorrents(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/torrents/info", r.URL.Path)
		assert.Equal(t, "downloading", r.URL.Query().Get("filter"))
		assert.Equal(t, "ratio", r.URL.Query().Get("sort"))

		w.Write([]byte(`[
			{"hash":"ab12","name":"distro.iso","state":"downloading","size":1024,"progress":0.5,"ratio":0.1},
			{"hash":"cd34","name":"dataset.tar","state":"stalledUP","size":2048,"progress":1.0,"ratio":2.5}
		]`))
	}

	client := newTestClient(t, s)

	torrents, err := client.Torrents(context.Background(), TorrentFilterOptions{
		Filter: "downloading",
		Sort:   "ratio",
	})
	require.NoError(t, err)
	require.Len(t, torrents, 2)

	assert.Equal(t, "distro.iso", torrents[0].Name)
	assert.False(t, torrents[0].IsComplete())
	assert.True(t, torrents[1].IsActivelySeeding())
}

func TestPauseSendsNormalizedHashes(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "ab12|cd34", r.FormValue("hashes"))
	}

	client := newTestClient(t, s)

	require.NoError(t, client.Pause(context.Background(), HashList("AB12", "cd34")))
	assert.Equal(t, 1, s.requestCount("/api/v2/torrents/pause"))
}

func TestResumeAllTorrents(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.FormValue("hashes"))
	}

	client := newTestClient(t, s)
	require.NoError(t, client.Resume(context.Background(), AllTorrents()))
}

func TestDeleteCarriesDeleteFilesFlag(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ab12", r.FormValue("hashes"))
		assert.Equal(t, "true", r.FormValue("deleteFiles"))
	}

	client := newTestClient(t, s)
	require.NoError(t, client.Delete(context.Background(), Hash("AB12"), true))
}

func TestPauseEmptyTargetFailsLocally(t *testing.T) {
	s := newStubServer(t)

	client := newTestClient(t, s)

	err := client.Pause(context.Background(), HashList())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// The precondition fails before any request is sent.
	assert.Equal(t, 0, s.requestCount("/api/v2/torrents/pause"))
}

func TestSetFilePriority(t *testing.T) {
	t.Run("rejects priorities outside the allowed set", func(t *testing.T) {
		s := newStubServer(t)

		client := newTestClient(t, s)

		for _, priority := range []int{-1, 3, 5, 8, 100} {
			err := client.SetFilePriority(context.Background(), "ab12", 0, priority)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "priority %d must be rejected", priority)
			assert.Equal(t, "priority", verr.Field)
		}

		assert.Equal(t, 0, s.requestCount("/api/v2/torrents/filePrio"))
	})

	t.Run("rejects negative file ids", func(t *testing.T) {
		s := newStubServer(t)

		client := newTestClient(t, s)

		err := client.SetFilePriority(context.Background(), "ab12", -1, 1)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 0, s.requestCount("/api/v2/torrents/filePrio"))
	})

	t.Run("sends the validated form", func(t *testing.T) {
		s := newStubServer(t)
		s.handle = func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ab12", r.FormValue("hash"))
			assert.Equal(t, "2", r.FormValue("id"))
			assert.Equal(t, "7", r.FormValue("priority"))
		}

		client := newTestClient(t, s)
		require.NoError(t, client.SetFilePriority(context.Background(), "AB12", 2, 7))
	})
}

func TestAddTorrentURLs(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "magnet:?xt=a\nmagnet:?xt=b", r.FormValue("urls"))
		assert.Equal(t, "/downloads", r.FormValue("savepath"))
		assert.Equal(t, "linux", r.FormValue("category"))
	}

	client := newTestClient(t, s)

	err := client.AddTorrentURLs(context.Background(), []string{"magnet:?xt=a", "magnet:?xt=b"}, &AddTorrentOptions{
		SavePath: "/downloads",
		Category: "linux",
	})
	require.NoError(t, err)
}

func TestAddTorrentFiles(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["torrents"]
		require.Len(t, files, 1)
		assert.Equal(t, "distro.torrent", files[0].Filename)
	}

	client := newTestClient(t, s)

	err := client.AddTorrentFiles(context.Background(), map[string][]byte{
		"distro.torrent": []byte("d8:announce0:e"),
	}, nil)
	require.NoError(t, err)
}

func TestTorrentDownloadLimits(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ab12", r.FormValue("hashes"))
		w.Write([]byte(`{"ab12": 338944}`))
	}

	client := newTestClient(t, s)

	limits, err := client.DownloadLimits(context.Background(), Hash("ab12"))
	require.NoError(t, err)
	assert.Equal(t, int64(338944), limits["ab12"])
}
