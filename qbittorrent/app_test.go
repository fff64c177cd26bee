package qbittorrent

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppVersion(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("v4.3.2"))
	}

	client := newTestClient(t, s)

	version, err := client.AppVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v4.3.2", version)
}

func TestPreferencesSnapshot(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/app/preferences":
			w.Write([]byte(`{"autorun_enabled": true, "dl_limit": 0}`))
		case "/api/v2/app/setPreferences":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, `json={"autorun_enabled":false}`, string(body))
		}
	}

	client := newTestClient(t, s)
	ctx := context.Background()

	prefs, err := client.Preferences(ctx)
	require.NoError(t, err)

	value, ok := prefs.Get("autorun_enabled")
	require.True(t, ok)
	assert.Equal(t, true, value)

	// Take a second snapshot before writing through the first one.
	earlier, err := client.Preferences(ctx)
	require.NoError(t, err)

	require.NoError(t, prefs.Set(ctx, "autorun_enabled", false))
	assert.Equal(t, 1, s.requestCount("/api/v2/app/setPreferences"))

	// The write is mirrored locally without a re-fetch...
	value, _ = prefs.Get("autorun_enabled")
	assert.Equal(t, false, value)
	assert.Equal(t, 2, s.requestCount("/api/v2/app/preferences"))

	// ...and snapshots are disconnected copies: the earlier one is untouched.
	value, _ = earlier.Get("autorun_enabled")
	assert.Equal(t, true, value)
}

func TestSetPreferencesBulk(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `json={"max_connec":500}`, string(body))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	}

	client := newTestClient(t, s)

	err := client.SetPreferences(context.Background(), map[string]any{"max_connec": 500})
	require.NoError(t, err)
}

func TestDefaultSavePath(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("/home/user/Downloads"))
	}

	client := newTestClient(t, s)

	path, err := client.DefaultSavePath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/user/Downloads", path)
}
