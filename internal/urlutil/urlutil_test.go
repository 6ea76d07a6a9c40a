package urlutil_test

import (
	"strings"
	"testing"

	"github.com/sgaunet/boolco/internal/urlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "https host", raw: "https://boolco.dev", want: "https://boolco.dev"},
		{name: "trailing slash", raw: "https://boolco.dev/", want: "https://boolco.dev"},
		{name: "path prefix", raw: "http://localhost:8080/board/", want: "http://localhost:8080/board"},
		{name: "query dropped", raw: "https://boolco.dev/?x=1#top", want: "https://boolco.dev"},
		{name: "surrounding spaces", raw: "  https://boolco.dev  ", want: "https://boolco.dev"},
		{name: "no scheme", raw: "boolco.dev", wantErr: true},
		{name: "ftp scheme", raw: "ftp://boolco.dev", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "missing host", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := urlutil.ParseBaseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, urlutil.ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestEndpoint(t *testing.T) {
	base, err := urlutil.ParseBaseURL("https://boolco.dev")
	require.NoError(t, err)
	prefixed, err := urlutil.ParseBaseURL("http://localhost:8080/board")
	require.NoError(t, err)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "plain endpoint", got: urlutil.Endpoint(base, "/api/game"), expected: "https://boolco.dev/api/game"},
		{name: "endpoint without leading slash", got: urlutil.Endpoint(base, "api/short"), expected: "https://boolco.dev/api/short"},
		{name: "prefixed base", got: urlutil.Endpoint(prefixed, "/api/game"), expected: "http://localhost:8080/board/api/game"},
		{name: "segment with space", got: urlutil.Endpoint(base, "/api/discord", "hello world"), expected: "https://boolco.dev/api/discord/hello%20world"},
		{name: "segment with slash", got: urlutil.Endpoint(base, "/api/discord", "a/b"), expected: "https://boolco.dev/api/discord/a%2Fb"},
		{name: "segment with query char", got: urlutil.Endpoint(base, "/api/discord", "why?"), expected: "https://boolco.dev/api/discord/why%3F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestShortLinkURL(t *testing.T) {
	base, err := urlutil.ParseBaseURL("https://boolco.dev/")
	require.NoError(t, err)

	assert.Equal(t, "https://boolco.dev/s/Ab3_xYz", urlutil.ShortLinkURL(base, "Ab3_xYz"))
}

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{name: "https link", link: "https://example.com/a", want: "https://example.com/a"},
		{name: "http link", link: "http://example.com", want: "http://example.com"},
		{name: "trimmed", link: "  https://example.com \n", want: "https://example.com"},
		{name: "max length", link: "https://" + strings.Repeat("a", urlutil.MaxLinkLength-8), want: "https://" + strings.Repeat("a", urlutil.MaxLinkLength-8)},
		{name: "too long", link: "https://" + strings.Repeat("a", urlutil.MaxLinkLength), wantErr: true},
		{name: "non-ascii at max length", link: "https://" + strings.Repeat("é", urlutil.MaxLinkLength-8), want: "https://" + strings.Repeat("é", urlutil.MaxLinkLength-8)},
		{name: "astral characters count twice", link: "https://" + strings.Repeat("😀", (urlutil.MaxLinkLength-8)/2+1), wantErr: true},
		{name: "empty", link: "", wantErr: true},
		{name: "only spaces", link: "   ", wantErr: true},
		{name: "no scheme", link: "example.com", wantErr: true},
		{name: "javascript scheme", link: "javascript:alert(1)", wantErr: true},
		{name: "uppercase scheme", link: "HTTPS://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := urlutil.NormalizeLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, urlutil.ErrInvalidLink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
