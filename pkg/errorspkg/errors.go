// Package errorspkg provides errors shared by the delivery layers.
package errorspkg

import "errors"

// ErrInternal is returned to clients in place of unexpected failures.
var ErrInternal = errors.New("internal error")
