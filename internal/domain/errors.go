package domain

import "errors"

var (
	ErrRequestTimeout     = errors.New("request timed out")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrAPIRejected        = errors.New("api rejected request")
	ErrValidation         = errors.New("invalid input")

	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrNoActiveCart    = errors.New("no active cart")
	ErrCartRejected    = errors.New("cart operation rejected")
	ErrProductNotFound = errors.New("product not found")

	ErrOfflineIdentityMismatch = errors.New("offline login requires the last signed-in email")
	ErrNotAuthenticated        = errors.New("not authenticated")
	ErrKeyNotFound             = errors.New("key not found")
	ErrNoKeywords              = errors.New("no product keywords found")
)

// IsConnectivityError reports whether err means the backend could not be reached.
func IsConnectivityError(err error) bool {
	return errors.Is(err, ErrRequestTimeout) || errors.Is(err, ErrNetworkUnavailable)
}
