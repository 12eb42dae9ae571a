package service

import (
	"errors"
	"fmt"

	"ATHLETEHUB_BACK-END/internal/store"
)

// Sentinel error kinds of the profile service. Callers match them with
// errors.Is; the wrapped detail is for logs only.
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("athlete not found")
	ErrInvalidPublicID    = errors.New("invalid athlete id")
	ErrInvalidVideo       = errors.New("invalid video")
	ErrMediaUploadFailed  = errors.New("media upload failed")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrInvalidInput       = errors.New("invalid input")
)

// translate maps store errors onto service kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrDuplicateEmail):
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
