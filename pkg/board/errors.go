package board

import (
	"errors"

	"github.com/sgaunet/boolco/pkg/api"
)

// ErrReported marks errors that have already been shown to the user.
// Callers should exit non-zero without printing them again.
var ErrReported = errors.New("error already reported")

// ErrorText is what the user sees for err: the server's own message for
// errors the server reported, a generic prefix for everything else.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := api.IsAPIError(err); ok {
		return apiErr.Error()
	}
	if errors.Is(err, api.ErrInvalidInput) {
		return err.Error()
	}
	return "An error has occurred: " + err.Error()
}
