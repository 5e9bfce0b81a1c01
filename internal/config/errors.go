package config

import "errors"

var (
	// ErrOverrideFormat is returned by [Load] when the override file found on
	// the search path has an extension it cannot decode.
	ErrOverrideFormat = errors.New("unsupported override file format")

	// ErrRenderFormat is returned by [Render] for an unknown [Format].
	ErrRenderFormat = errors.New("unsupported render format")
)
