package diagram

import (
	"errors"

	"tripline/render"
	"tripline/render/rendertest"
)

// fakeHost is an in-memory container with a recording surface.
type fakeHost struct {
	width, height float64
	surface       *rendertest.Recorder
	surfaceErr    error
	listeners     map[int]func()
	nextID        int
	released      int
}

func newFakeHost(width, height float64) *fakeHost {
	return &fakeHost{
		width:     width,
		height:    height,
		surface:   &rendertest.Recorder{},
		listeners: map[int]func(){},
	}
}

func (h *fakeHost) ContainerSize() (float64, float64) {
	return h.width, h.height
}

func (h *fakeHost) Surface() (render.Surface, error) {
	if h.surfaceErr != nil {
		return nil, h.surfaceErr
	}
	return h.surface, nil
}

func (h *fakeHost) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		if _, ok := h.listeners[id]; ok {
			delete(h.listeners, id)
			h.released++
		}
	}
}

// resize changes the container and notifies listeners the way a window would.
func (h *fakeHost) resize(width, height float64) {
	h.width, h.height = width, height
	for _, fn := range h.listeners {
		fn()
	}
}

var errNoContext = errors.New("no 2d context")
