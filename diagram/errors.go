package diagram

import (
	"errors"

	"tripline/render"
)

var (
	// ErrNotReady is returned when an operation needs a mounted surface.
	ErrNotReady = render.ErrNotReady
	// ErrInvalidInput is returned for a leg with an empty endpoint.
	ErrInvalidInput = errors.New("diagram: leg needs both a start and an end")
	// ErrSurfaceUnavailable is returned when the host cannot provide a surface.
	ErrSurfaceUnavailable = errors.New("diagram: drawing surface unavailable")
)
