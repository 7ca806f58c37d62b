package glib

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one of
// them under errors.Is.
var (
	ErrInvalidArgument = errors.New("glib: invalid argument")
	ErrInvalidState    = errors.New("glib: invalid state")
)

// Invalid-state conditions.
var (
	ErrNotInitialized  = fmt.Errorf("%w: pool not initialized", ErrInvalidState)
	ErrPoolDepleted    = fmt.Errorf("%w: pool depleted", ErrInvalidState)
	ErrBatchDisposed   = fmt.Errorf("%w: batch disposed", ErrInvalidState)
	ErrDoubleRelease   = fmt.Errorf("%w: particle already released", ErrInvalidState)
	ErrForeignParticle = fmt.Errorf("%w: particle belongs to another pool", ErrInvalidState)
)

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
