package converter

import "errors"

// ErrInvalidDependency is returned by NewService when a required dependency
// is missing.
var ErrInvalidDependency = errors.New("invalid converter dependency")
