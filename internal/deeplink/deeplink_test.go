package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want Intent
	}{
		{
			name: "custom scheme room link",
			raw:  "wouldwatch://room/r-123",
			want: Intent{Kind: KindRoom, ID: "r-123"},
		},
		{
			name: "custom scheme join alias",
			raw:  "wouldwatch://join/r-123",
			want: Intent{Kind: KindRoom, ID: "r-123"},
		},
		{
			name: "custom scheme profile link",
			raw:  "wouldwatch://profile/u-9",
			want: Intent{Kind: KindProfile, ID: "u-9"},
		},
		{
			name: "custom scheme user alias",
			raw:  "wouldwatch://user/u-9",
			want: Intent{Kind: KindProfile, ID: "u-9"},
		},
		{
			name: "universal join link",
			raw:  "https://wouldwatch.app/join/r-123",
			want: Intent{Kind: KindRoom, ID: "r-123"},
		},
		{
			name: "universal link with www",
			raw:  "https://www.wouldwatch.app/profile/u-9",
			want: Intent{Kind: KindProfile, ID: "u-9"},
		},
		{
			name: "universal link with trailing slash",
			raw:  "https://wouldwatch.app/room/r-123/",
			want: Intent{Kind: KindRoom, ID: "r-123"},
		},
		{
			name: "missing id",
			raw:  "wouldwatch://room",
			want: None,
		},
		{
			name: "unknown action",
			raw:  "wouldwatch://settings/theme",
			want: None,
		},
		{
			name: "wrong host",
			raw:  "https://example.com/join/r-123",
			want: None,
		},
		{
			name: "wrong scheme",
			raw:  "ftp://wouldwatch.app/join/r-123",
			want: None,
		},
		{
			name: "universal link without id segment",
			raw:  "https://wouldwatch.app/join",
			want: None,
		},
		{
			name: "garbage",
			raw:  "://not a url",
			want: None,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Parse(tc.raw))
		})
	}
}
