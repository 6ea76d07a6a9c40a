package security

import (
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// SessionCookieName is the cookie the server reads the login session from.
const SessionCookieName = "id"

var (
	sessionCookieRegex *regexp.Regexp
	authHeaderRegex    *regexp.Regexp
	longTokenRegex     *regexp.Regexp
	regexOnce          sync.Once
)

func compileRegexPatterns() {
	regexOnce.Do(func() {
		// id=<base64 session> in Cookie or Set-Cookie headers
		sessionCookieRegex = regexp.MustCompile(`\bid=[A-Za-z0-9+/=_-]{8,}`)

		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|basic)\s+[a-zA-Z0-9+/=_-]{10,}`)

		// Session cookies and registration tokens are 64 bytes of base64 (88 chars);
		// anything that long and unbroken is treated as a secret.
		longTokenRegex = regexp.MustCompile(`[A-Za-z0-9+/]{40,200}={0,2}`)
	})
}

// SanitizeString redacts session cookies, authorization headers and long
// base64 runs from s. Safe for concurrent use.
func SanitizeString(s string) string {
	compileRegexPatterns()

	s = sessionCookieRegex.ReplaceAllString(s, SessionCookieName+"=[session-redacted]")
	s = authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")
	s = longTokenRegex.ReplaceAllString(s, "[token-redacted]")

	return s
}

// sanitizedError shows a redacted message but keeps the wrapped chain, so
// errors.Is still matches context.Canceled and friends.
type sanitizedError struct {
	msg string
	err error
}

func (e *sanitizedError) Error() string { return e.msg }

func (e *sanitizedError) Unwrap() error { return e.err }

// SanitizeError returns an error whose message has passed through
// [SanitizeString]. errors.Is and errors.As still see err.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	return &sanitizedError{msg: SanitizeString(err.Error()), err: err}
}

// SanitizeHeaders renders headers as "Key: value" lines for debug logs with
// Cookie, Set-Cookie and Authorization values masked.
func SanitizeHeaders(h http.Header) string {
	if len(h) == 0 {
		return ""
	}

	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		value := strings.Join(h.Values(k), ", ")
		switch http.CanonicalHeaderKey(k) {
		case "Cookie", "Set-Cookie", "Authorization":
			value = maskRedacted
		default:
			value = SanitizeString(value)
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}
