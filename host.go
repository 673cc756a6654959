package main

import (
	"tripline/render"
	"tripline/render/raster"
)

// termHost maps the terminal window onto a pixel container backed by a raster canvas.
// Until the first window size arrives the configured container size is used.
type termHost struct {
	cols       int
	rows       int
	cellWidth  float64
	cellHeight float64
	fallbackW  float64
	fallbackH  float64
	canvas     *raster.Canvas
	listeners  []listener
	nextID     int
}

type listener struct {
	id int
	fn func()
}

func newTermHost(config *Config) (*termHost, error) {
	w, h := render.SurfaceSize(config.ContainerWidth, config.ContainerHeight)
	canvas, err := raster.New(int(w), int(h), config.FontSize)
	if err != nil {
		return nil, err
	}
	return &termHost{
		cellWidth:  config.CellWidth,
		cellHeight: config.CellHeight,
		fallbackW:  config.ContainerWidth,
		fallbackH:  config.ContainerHeight,
		canvas:     canvas,
	}, nil
}

// ContainerSize is the terminal in pixels. The height never drops below the
// configured container height (or minContainerHeight) so stacked and looped
// stations stay above the top edge of the surface.
func (h *termHost) ContainerSize() (float64, float64) {
	if h.cols <= 0 || h.rows <= 0 {
		return h.fallbackW, max(h.fallbackH, minContainerHeight)
	}
	return float64(h.cols) * h.cellWidth, max(float64(h.rows)*h.cellHeight, h.fallbackH, minContainerHeight)
}

func (h *termHost) Surface() (render.Surface, error) {
	return h.canvas, nil
}

func (h *termHost) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// resize records the new terminal size and notifies listeners, in registration
// order, when it changed.
func (h *termHost) resize(cols, rows int) {
	if cols == h.cols && rows == h.rows {
		return
	}
	h.cols, h.rows = cols, rows
	for _, l := range h.listeners {
		l.fn()
	}
}

// staticHost is a fixed-size container used for batch rendering.
type staticHost struct {
	width, height float64
	canvas        *raster.Canvas
}

func (h *staticHost) ContainerSize() (float64, float64) {
	return h.width, h.height
}

func (h *staticHost) Surface() (render.Surface, error) {
	return h.canvas, nil
}

func (h *staticHost) OnResize(func()) func() {
	return func() {}
}
