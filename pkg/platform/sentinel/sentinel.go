// Package sentinel holds state facts returned by models.
package sentinel

import "errors"

// ErrInvalidState means the entity is in the wrong state for the requested
// operation. Models wrap it; services translate it into a result reason.
var ErrInvalidState = errors.New("invalid state")
