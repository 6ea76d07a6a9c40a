// Package urlutil builds boolco endpoint URLs and checks links before they
// are sent to the shortener.
//
// Base URLs may carry a path prefix (https://example.org/boolco); endpoints
// are appended to it rather than replacing it.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sgaunet/boolco/internal/textutil"
)

const (
	// MaxLinkLength is the longest link the shortener accepts.
	MaxLinkLength = 1500

	// shortLinkPrefix is where the server serves short link redirects.
	shortLinkPrefix = "/s/"
)

var (
	// ErrInvalidBaseURL is returned for base URLs that are not absolute http(s) URLs.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http or https URL")

	// ErrInvalidLink is returned for links the shortener would reject.
	ErrInvalidLink = errors.New("invalid link")
)

// ParseBaseURL validates raw as an absolute http(s) URL and drops any
// trailing slash, query or fragment.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// Endpoint joins the base URL with an endpoint path and optional path
// segments. Segments are escaped individually so a name containing "/" or
// "?" stays a single segment.
//
// Examples:
//
//	Endpoint(base, "/api/game")                  → https://boolco.dev/api/game
//	Endpoint(base, "/api/discord", "hello world") → https://boolco.dev/api/discord/hello%20world
func Endpoint(base *url.URL, path string, segments ...string) string {
	u := *base

	escaped := u.EscapedPath() + "/" + strings.Trim(path, "/")
	for _, s := range segments {
		escaped += "/" + url.PathEscape(s)
	}

	// RawPath keeps the escaping; Path must agree with it once unescaped.
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		unescaped = escaped
	}
	u.Path = unescaped
	u.RawPath = escaped
	return u.String()
}

// ShortLinkURL is the public address of a short link mnemonic.
func ShortLinkURL(base *url.URL, mnemonic string) string {
	return Endpoint(base, shortLinkPrefix, mnemonic)
}

// NormalizeLink trims link and checks it the way the shortener does:
// between 1 and [MaxLinkLength] characters (UTF-16 code units) and starting with http:// or https://.
// The trimmed link is returned.
func NormalizeLink(link string) (string, error) {
	link = strings.TrimSpace(link)

	switch {
	case link == "":
		return "", fmt.Errorf("%w: link is empty", ErrInvalidLink)
	case textutil.Length(link) > MaxLinkLength:
		return "", fmt.Errorf("%w: link is longer than %d characters", ErrInvalidLink, MaxLinkLength)
	case !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://"):
		return "", fmt.Errorf("%w: link must start with http:// or https://", ErrInvalidLink)
	}
	return link, nil
}
