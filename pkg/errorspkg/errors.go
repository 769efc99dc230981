// Package errorspkg holds errors shared across delivery layers.
package errorspkg

import "errors"

// ErrInternal is returned to clients when the failure is not their fault.
var ErrInternal = errors.New("internal server error")
