// Package textutil measures user input the way the boolco web forms do.
package textutil

import "unicode/utf16"

// Length returns the number of UTF-16 code units in s, which is what the
// browser reports as a string's length. Characters outside the Basic
// Multilingual Plane count twice; invalid UTF-8 bytes count once each.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
