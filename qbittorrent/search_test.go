package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPollsUntilFinished(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/search/start":
			assert.Equal(t, "debian", r.FormValue("pattern"))
			assert.Equal(t, "all", r.FormValue("plugins"))
			w.Write([]byte(`{"id": 42}`))
		case "/api/v2/search/results":
			assert.Equal(t, "42", r.FormValue("id"))
			if s.requestCount("/api/v2/search/results") == 1 {
				w.Write([]byte(`{"status": "Running", "total": 0, "results": []}`))
				return
			}
			w.Write([]byte(`{"status": "Stopped", "total": 1, "results": [
				{"fileName": "debian-12.iso", "fileSize": 659554304, "nbSeeders": 120}
			]}`))
		}
	}

	client := newTestClient(t, s)

	results, err := client.Search(context.Background(), "debian", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results.Results, 1)

	assert.Equal(t, "debian-12.iso", results.Results[0].FileName)
	assert.Equal(t, 120, results.Results[0].NumSeeders)
	assert.Equal(t, 2, s.requestCount("/api/v2/search/results"))
}

func TestStopSearch(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/search/stop", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "42", r.FormValue("id"))
	}

	client := newTestClient(t, s)

	require.NoError(t, client.StopSearch(context.Background(), 42))
	assert.Equal(t, 1, s.requestCount("/api/v2/search/stop"))
}

func TestSearchStopsAbandonedJob(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/search/start":
			w.Write([]byte(`{"id": 42}`))
		case "/api/v2/search/results":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/v2/search/stop":
			assert.Equal(t, "42", r.FormValue("id"))
		}
	}

	client := newTestClient(t, s)

	_, err := client.Search(context.Background(), "debian", SearchOptions{})
	require.Error(t, err)

	// The failed poll must not leave the job running on the server.
	assert.Equal(t, 1, s.requestCount("/api/v2/search/stop"))
}

func TestSearchEmptyPattern(t *testing.T) {
	s := newStubServer(t)

	client := newTestClient(t, s)

	_, err := client.Search(context.Background(), "", SearchOptions{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, s.requestCount("/api/v2/search/start"))
}

func TestSearchPlugins(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "legittorrents", "fullName": "Legit Torrents", "enabled": true, "version": "2.3"}]`))
	}

	client := newTestClient(t, s)

	plugins, err := client.SearchPlugins(context.Background())
	require.NoError(t, err)
	require.Len(t, plugins, 1)
	assert.Equal(t, "legittorrents", plugins[0].Name)
	assert.True(t, plugins[0].Enabled)
}

func TestEnableSearchPlugin(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "legittorrents", r.FormValue("names"))
		assert.Equal(t, "false", r.FormValue("enable"))
	}

	client := newTestClient(t, s)
	require.NoError(t, client.EnableSearchPlugin(context.Background(), []string{"legittorrents"}, false))
}
