package render

import "errors"

var (
	// ErrInit wraps failures that stop the sandbox from starting: window or
	// context creation, GL function loading and shader compilation.
	ErrInit = errors.New("initialization failed")

	// ErrResourceLoad wraps texture decode failures. These are logged and the
	// scene keeps rendering with an empty texture in place.
	ErrResourceLoad = errors.New("resource load failed")
)
