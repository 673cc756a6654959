// Package raster implements render.Surface on an in-memory image using gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"tripline/render"
)

const DefaultFontSize = 12.0

// Canvas is a raster surface. The zero value is not usable; call New.
type Canvas struct {
	dc         *gg.Context
	face       font.Face
	background color.Color
}

var _ render.Surface = (*Canvas)(nil)

// New returns a canvas of the given size with labels set in Go Mono at fontSize points.
func New(width, height int, fontSize float64) (*Canvas, error) {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c := &Canvas{face: face, background: color.White}
	c.resize(width, height)
	return c, nil
}

func (c *Canvas) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.dc = gg.NewContext(width, height)
	c.dc.SetFontFace(c.face)
	c.Clear()
}

// SetSize replaces the backing image when the size changes. Content is not kept.
func (c *Canvas) SetSize(width, height float64) {
	w, h := int(math.Round(width)), int(math.Round(height))
	if w == c.dc.Width() && h == c.dc.Height() {
		return
	}
	c.resize(w, h)
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *Canvas) StrokeCircle(x, y, r float64, col color.Color) {
	c.dc.NewSubPath()
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()
}

func (c *Canvas) DrawText(text string, x, y float64, align render.Align, col color.Color) {
	ax := 0.0
	switch align {
	case render.AlignCenter:
		ax = 0.5
	case render.AlignRight:
		ax = 1
	}
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(text, x, y, ax, 0)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *Canvas) StrokeArc(cx, cy, r, startDeg, endDeg float64, ccw bool, col color.Color, width float64) {
	a1, a2 := ArcSweep(gg.Radians(startDeg), gg.Radians(endDeg), ccw)
	c.dc.NewSubPath()
	c.dc.DrawArc(cx, cy, r, a1, a2)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *Canvas) FillTriangle(pts [3]render.Vec, col color.Color) {
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	c.dc.LineTo(pts[1].X, pts[1].Y)
	c.dc.LineTo(pts[2].X, pts[2].Y)
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

// ArcSweep turns canvas-style arc angles into the explicit start and end that
// gg.DrawArc interpolates between. Clockwise arcs sweep with increasing angle,
// counter-clockwise ones with decreasing angle, and a sweep never exceeds a full turn.
func ArcSweep(start, end float64, ccw bool) (float64, float64) {
	const turn = 2 * math.Pi
	if ccw {
		if start-end >= turn {
			return start, start - turn
		}
		for end > start {
			end -= turn
		}
		return start, end
	}
	if end-start >= turn {
		return start, start + turn
	}
	for end < start {
		end += turn
	}
	return start, end
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns the backing image. It is overwritten by later drawing.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current surface to filename.
func (c *Canvas) SavePNG(filename string) error {
	return c.dc.SavePNG(filename)
}
