// Package fixtures provides canned boolco API data for tests.
package fixtures

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sgaunet/boolco/pkg/api"
)

// ReferenceNow is the fixed "now" used by board fixtures.
var ReferenceNow = time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

// MessageAt builds a message whose timestamp is encoded the way the server
// sends it: epoch milliseconds decoded as a json.Number.
func MessageAt(name, content string, at time.Time) api.Message {
	return api.Message{
		Name:      name,
		Content:   content,
		Timestamp: json.Number(strconv.FormatInt(at.UnixMilli(), 10)),
	}
}

// ValidMessages returns a board of three messages, newest first, relative to
// [ReferenceNow].
func ValidMessages() []api.Message {
	return []api.Message{
		MessageAt("alice", "hello everyone", ReferenceNow.Add(-30*time.Second)),
		MessageAt("bob", "anyone around?", ReferenceNow.Add(-90*time.Minute)),
		MessageAt("carol", "first!", ReferenceNow.Add(-400*24*time.Hour)),
	}
}

// ValidLinks returns two short links.
func ValidLinks() []api.Link {
	return []api.Link{
		{Mnemonic: "Ab3_xYz", Link: "https://example.com/a"},
		{Mnemonic: "Q9q9q9q", Link: "http://example.org/very/long/path"},
	}
}

// ValidNames returns the names a lookup for "catdogbird" might produce.
func ValidNames() []string {
	return []string{"cat", "dog", "bird"}
}
