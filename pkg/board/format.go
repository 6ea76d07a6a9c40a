package board

import (
	"fmt"
	"time"

	"github.com/sgaunet/boolco/internal/timeutil"
	"github.com/sgaunet/boolco/pkg/api"
)

const unknownTime = "unknown time"

// FormatMessageHeader renders the line introducing a message:
//
//	alice says: (5 minutes ago)
//
// A timestamp that cannot be read renders as "(unknown time)".
func FormatMessageHeader(m api.Message, now time.Time) string {
	age, err := timeutil.Since(m.Timestamp, now)
	if err != nil {
		return fmt.Sprintf("%s says: (%s)", m.Name, unknownTime)
	}
	return fmt.Sprintf("%s says: (%s ago)", m.Name, age)
}

// FormatLink renders one short link entry.
func FormatLink(l api.Link, shortURL string) string {
	return fmt.Sprintf("%s  %s  (%s)", l.Mnemonic, l.Link, shortURL)
}

// FormatLinkCreated is the confirmation shown after shortening a link.
func FormatLinkCreated(shortURL string) string {
	return fmt.Sprintf("Your link has been created! Visit %s to access it.", shortURL)
}
