// Package security keeps session cookies and registration tokens out of
// terminal output and logs.
package security

import "fmt"

const (
	// minLengthForPartialMask is the shortest secret that shows a suffix.
	minLengthForPartialMask = 12
	maskShowChars           = 4
	maskEmpty               = "[empty]"
	maskRedacted            = "[redacted]"
)

// SecureToken wraps a credential so that every fmt verb prints a mask.
//
//	session := NewSecureToken("session", cookieValue)
//	fmt.Printf("%v", session) // [session:****Zw==]
type SecureToken struct {
	kind  string
	value string
}

// NewSecureToken wraps value. kind labels the mask ("session", "token").
func NewSecureToken(kind, value string) SecureToken {
	if kind == "" {
		kind = "token"
	}
	return SecureToken{kind: kind, value: value}
}

// String implements fmt.Stringer with a masked representation.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}
	if len(t.value) < minLengthForPartialMask {
		return maskRedacted
	}
	return fmt.Sprintf("[%s:****%s]", t.kind, t.value[len(t.value)-maskShowChars:])
}

// GoString keeps %#v masked.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the real secret. Never log the result.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty reports whether no secret is held.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
