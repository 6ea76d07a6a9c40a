package api

import (
	"context"

	"github.com/sgaunet/boolco/internal/security"
)

// APIClient is the set of boolco endpoints the commands use.
// It lets the board workflows run against mocks in tests.
type APIClient interface {
	// ListMessages returns the message board, newest first.
	ListMessages(ctx context.Context) ([]Message, error)

	// PostMessage adds a message and returns the server's success text.
	PostMessage(ctx context.Context, name, content string) (string, error)

	// LookupNames returns the dictionary names hidden in name.
	LookupNames(ctx context.Context, name string) ([]string, error)

	// GenerateRegistrationToken asks the server for a one-time registration token.
	GenerateRegistrationToken(ctx context.Context) (security.SecureToken, error)

	// ListLinks returns the short links of the session's user.
	ListLinks(ctx context.Context) ([]Link, error)

	// CreateLink shortens link and returns its mnemonic.
	CreateLink(ctx context.Context, link string) (string, error)

	// ShortURL is the public address of a mnemonic.
	ShortURL(mnemonic string) string
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
