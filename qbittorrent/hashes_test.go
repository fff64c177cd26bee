package qbittorrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashesEncode(t *testing.T) {
	tests := []struct {
		name   string
		hashes Hashes
		want   string
	}{
		{
			name:   "single hash is lower-cased without separator",
			hashes: Hash("AB12"),
			want:   "ab12",
		},
		{
			name:   "mixed-case list joins with pipe",
			hashes: HashList("AB12", "cd34"),
			want:   "ab12|cd34",
		},
		{
			name:   "order is preserved",
			hashes: HashList("cd34", "AB12"),
			want:   "cd34|ab12",
		},
		{
			name:   "all sentinel passes through unchanged",
			hashes: AllTorrents(),
			want:   "all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.hashes.encode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashesEncodeEmpty(t *testing.T) {
	_, err := HashList().encode()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hashes", verr.Field)
}

func TestHashesForm(t *testing.T) {
	data, err := HashList("AB12", "cd34").form()
	require.NoError(t, err)
	assert.Equal(t, "ab12|cd34", data.Get("hashes"))
}

func TestHashesIsAll(t *testing.T) {
	assert.True(t, AllTorrents().IsAll())
	assert.False(t, Hash("ab12").IsAll())
}
