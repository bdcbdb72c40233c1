// Package guard rejects a second submission for a screen while the first is
// still waiting on the auth provider.
package guard

import (
	"context"
	"errors"
)

// ErrHeld is returned by Acquire when the key is already held.
var ErrHeld = errors.New("submission already in progress")

// Guard hands out exclusive, non-blocking holds on a key.
type Guard interface {
	// Acquire takes the hold for key or returns ErrHeld. The returned release
	// function must be called exactly once when the submission settles.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
