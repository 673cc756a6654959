// Package diagram owns a trip diagram: the leg history, its layout and the surface
// it is drawn on.
//
// A Controller is driven from a single goroutine. Every mutation computes the new
// layout completely before it replaces the previous one, so a redraw never sees a
// half-updated diagram.
package diagram

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"tripline/layout"
	"tripline/palette"
	"tripline/render"
)

// Host is what a controller is mounted on.
type Host interface {
	// ContainerSize reports the size of the element the surface lives in.
	ContainerSize() (width, height float64)
	// Surface returns the drawing surface.
	Surface() (render.Surface, error)
	// OnResize registers fn to be called whenever the container changes size.
	// The returned func unregisters it.
	OnResize(fn func()) (release func())
}

// State is the mount state of a Controller.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// snapshot is the derived state exposed between mutations.
type snapshot struct {
	legs   []layout.Leg
	plan   layout.Plan
	width  float64
	height float64
}

// Controller keeps the leg history of one diagram and redraws it on every change.
type Controller struct {
	logger  *log.Logger
	colors  *palette.Registry
	adapter render.Adapter
	host    Host
	release func()
	state   State
	snap    snapshot
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sends diagnostics to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithColorSource makes color assignment reproducible.
func WithColorSource(src palette.Source) Option {
	return func(c *Controller) {
		c.colors = palette.New(src)
	}
}

// New returns an unmounted controller with an empty trip.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger: log.New(io.Discard, "", 0),
		snap:   snapshot{plan: layout.Plan{Cursor: layout.ZeroCursor()}},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.colors == nil {
		c.colors = palette.New(nil)
	}
	c.adapter = render.Adapter{Palette: c.colors, Logger: c.logger}
	return c
}

// Mount attaches the controller to h, sizes the surface and draws the current legs.
// Mounting an already mounted controller detaches it from the previous host first.
func (c *Controller) Mount(h Host) error {
	if c.state == StateReady {
		c.Unmount()
	}
	s, err := h.Surface()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
		c.logger.Printf("error: mount: %v", err)
		return err
	}
	if s == nil {
		c.logger.Printf("error: mount: %v", ErrSurfaceUnavailable)
		return ErrSurfaceUnavailable
	}
	c.host = h
	c.adapter.Surface = s
	c.release = h.OnResize(c.NotifyContainerResized)
	c.state = StateReady
	c.redraw(c.snap.legs)
	return nil
}

// Unmount releases the resize listener and drops the surface. The leg history is kept.
func (c *Controller) Unmount() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.host = nil
	c.adapter.Surface = nil
	c.state = StateUninitialized
}

// AppendLeg adds a leg to the trip and redraws. A leg with an empty endpoint is
// ignored and reported as ErrInvalidInput.
func (c *Controller) AppendLeg(start, end string) error {
	if start == "" || end == "" {
		return ErrInvalidInput
	}
	if c.state != StateReady {
		c.logger.Printf("warn: append %q -> %q: %v", start, end, ErrNotReady)
		return ErrNotReady
	}
	legs := make([]layout.Leg, len(c.snap.legs), len(c.snap.legs)+1)
	copy(legs, c.snap.legs)
	legs = append(legs, layout.Leg{Start: start, End: end})
	c.redraw(legs)
	return nil
}

// NotifyContainerResized re-measures the container and redraws everything.
func (c *Controller) NotifyContainerResized() {
	if c.state != StateReady {
		c.logger.Printf("warn: resize: %v", ErrNotReady)
		return
	}
	c.redraw(c.snap.legs)
}

// Reset forgets every leg and color and clears the surface.
func (c *Controller) Reset() {
	c.colors.Reset()
	c.snap = snapshot{
		plan:   layout.Plan{Cursor: layout.ZeroCursor()},
		width:  c.snap.width,
		height: c.snap.height,
	}
	if c.state == StateReady {
		c.adapter.Clear()
	}
}

// redraw lays out legs for the current container and swaps in the result once it
// has been drawn.
func (c *Controller) redraw(legs []layout.Leg) {
	w, h := render.SurfaceSize(c.host.ContainerSize())
	next := snapshot{
		legs:   legs,
		plan:   layout.Compute(legs, w, h),
		width:  w,
		height: h,
	}
	if err := c.adapter.Draw(next.plan, w, h); err != nil {
		c.logger.Printf("error: redraw: %v", err)
		return
	}
	c.snap = next
}

// State reports whether the controller is mounted.
func (c *Controller) State() State {
	return c.state
}

// Legs returns a copy of the leg history.
func (c *Controller) Legs() []layout.Leg {
	out := make([]layout.Leg, len(c.snap.legs))
	copy(out, c.snap.legs)
	return out
}

// Plan returns the layout last drawn.
func (c *Controller) Plan() layout.Plan {
	return c.snap.plan
}

// Points returns a copy of the placed points of the current plan.
func (c *Controller) Points() []layout.Point {
	out := make([]layout.Point, len(c.snap.plan.Points))
	copy(out, c.snap.plan.Points)
	return out
}

// Cursor is where the next leg would be placed.
func (c *Controller) Cursor() layout.Cursor {
	return c.snap.plan.Cursor
}

// SurfaceSize is the size the surface was last drawn at.
func (c *Controller) SurfaceSize() (width, height float64) {
	return c.snap.width, c.snap.height
}

// Colors returns the assigned colors in first-sight order.
func (c *Controller) Colors() []palette.Entry {
	return c.colors.Entries()
}

// ColorFor returns the color of a pair, assigning one if the pair is new.
func (c *Controller) ColorFor(a, b string) color.RGBA {
	return c.colors.ColorFor(a, b)
}
