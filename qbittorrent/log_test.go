package qbittorrent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	s := newStubServer(t)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/log/main", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("warning"))
		assert.False(t, r.URL.Query().Has("last_known_id"))
		w.Write([]byte(`[{"id": 3, "message": "peer banned", "timestamp": 1693200000, "type": 4}]`))
	}

	client := newTestClient(t, s)

	entries, err := client.Log(context.Background(), LogOptions{ExcludeWarning: true})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, "peer banned", entries[0].Message)
}

func TestLogLastKnownID(t *testing.T) {
	tests := []struct {
		name   string
		id     *int64
		sent   bool
		wanted string
	}{
		{name: "unset sends nothing", id: nil},
		{name: "zero is sent", id: ptrInt64(0), sent: true, wanted: "0"},
		{name: "positive id is sent", id: ptrInt64(17), sent: true, wanted: "17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStubServer(t)
			s.handle = func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.sent, r.URL.Query().Has("last_known_id"))
				if tt.sent {
					assert.Equal(t, tt.wanted, r.URL.Query().Get("last_known_id"))
				}
				w.Write([]byte(`[]`))
			}

			client := newTestClient(t, s)

			_, err := client.Log(context.Background(), LogOptions{LastKnownID: tt.id})
			require.NoError(t, err)
			assert.Equal(t, 1, s.requestCount("/api/v2/log/main"))
		})
	}
}

func ptrInt64(v int64) *int64 { return &v }
