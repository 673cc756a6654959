// Package palette assigns a stable color to every unordered pair of trip endpoints.
package palette

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Source is the entropy used to synthesize new colors. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Entry binds a color to the pair (Start, End). The pair is unordered.
type Entry struct {
	Start string
	End   string
	Color color.RGBA
}

func (e Entry) matches(a, b string) bool {
	return (e.Start == a && e.End == b) || (e.Start == b && e.End == a)
}

// Registry memoizes colors in first-sight order. It is not safe for concurrent use.
type Registry struct {
	src     Source
	entries []Entry
}

// New returns an empty registry drawing from src. A nil src is seeded from the clock.
func New(src Source) *Registry {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Registry{src: src}
}

// ColorFor returns the color bound to the pair, assigning a new one on first sight.
func (r *Registry) ColorFor(a, b string) color.RGBA {
	for _, e := range r.entries {
		if e.matches(a, b) {
			return e.Color
		}
	}
	c := color.RGBA{
		R: uint8(r.src.Intn(255)),
		G: uint8(r.src.Intn(255)),
		B: uint8(r.src.Intn(255)),
		A: 255,
	}
	r.entries = append(r.entries, Entry{Start: a, End: b, Color: c})
	return c
}

// Lookup reports the color for the pair without assigning one.
func (r *Registry) Lookup(a, b string) (color.RGBA, bool) {
	for _, e := range r.entries {
		if e.matches(a, b) {
			return e.Color, true
		}
	}
	return color.RGBA{}, false
}

func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset forgets every binding. The entropy source is kept.
func (r *Registry) Reset() {
	r.entries = nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}
