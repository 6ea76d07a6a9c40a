package security

import (
	"fmt"

	"github.com/sgaunet/bullets"
)

// DebugSession logs which server and session a command is about to use.
// The session is printed masked.
//
//	DebugSession(logger, "https://boolco.dev", session)
//	// Logs: "Using session [session:****Zw==] for https://boolco.dev"
func DebugSession(logger *bullets.Logger, baseURL string, session SecureToken) {
	if logger == nil {
		return
	}

	if session.IsEmpty() {
		logger.Debug("No session configured for " + SanitizeString(baseURL))
		return
	}
	logger.Debug(fmt.Sprintf("Using session %s for %s", session, SanitizeString(baseURL)))
}
