// Package rendertest provides a render.Surface that records calls instead of drawing.
package rendertest

import (
	"fmt"
	"image/color"

	"tripline/render"
)

// Op is one recorded primitive call.
type Op struct {
	Name   string
	Text   string
	Args   []float64
	CCW    bool
	Align  render.Align
	Color  color.Color
	Points [3]render.Vec
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q %v)", o.Name, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Recorder implements render.Surface.
type Recorder struct {
	Width  float64
	Height float64
	Ops    []Op
}

var _ render.Surface = (*Recorder)(nil)

func (r *Recorder) SetSize(width, height float64) {
	r.Width, r.Height = width, height
	r.Ops = append(r.Ops, Op{Name: "SetSize", Args: []float64{width, height}})
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Name: "Clear"})
}

func (r *Recorder) StrokeCircle(x, y, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "StrokeCircle", Args: []float64{x, y, rad}, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, align render.Align, c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "DrawText", Text: text, Args: []float64{x, y}, Align: align, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeLine", Args: []float64{x1, y1, x2, y2, width}, Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, rad, startDeg, endDeg float64, ccw bool, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeArc", Args: []float64{cx, cy, rad, startDeg, endDeg, width}, CCW: ccw, Color: c})
}

func (r *Recorder) FillTriangle(pts [3]render.Vec, c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "FillTriangle", Points: pts, Color: c})
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls named name, in order.
func (r *Recorder) Named(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Since returns the calls recorded after the last Clear.
func (r *Recorder) Since() []Op {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Name == "Clear" {
			return r.Ops[i+1:]
		}
	}
	return r.Ops
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Ops = nil
}
