package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/qbitweb/qbittorrent"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "simple comparison",
			expression: "Ratio > 1.0",
		},
		{
			name:       "boolean combination",
			expression: "Seeding and Category == 'linux'",
		},
		{
			name:       "helper function",
			expression: `hasTag("public")`,
		},
		{
			name:       "empty expression",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: "Ratio >",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				var cerr *CompilationError
				require.ErrorAs(t, err, &cerr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	torrent := qbittorrent.Torrent{
		Hash:     "ab12",
		Name:     "debian-12.iso",
		State:    "stalledUP",
		Category: "linux",
		Tags:     "public, keep",
		Size:     659554304,
		Progress: 1.0,
		Ratio:    2.4,
		AddedOn:  time.Now().AddDate(0, -2, 0).Unix(),
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{"Ratio > 2.0", true},
		{"Ratio > 3.0", false},
		{"Seeding", true},
		{"Complete and Category == 'linux'", true},
		{`hasTag("KEEP")`, true},
		{`hasTag("private")`, false},
		{`contains(Name, "DEBIAN")`, true},
		{"daysSince(AddedOn) > 30", true},
		{"AddedOn > daysAgo(7)", false},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(torrent))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"public", "keep"}, splitTags("public, keep"))
	assert.Equal(t, []string{"solo"}, splitTags("solo"))
}
