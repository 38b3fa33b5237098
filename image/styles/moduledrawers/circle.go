package moduledrawers

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// bezierCircle is the control-point offset ratio approximating a quarter
// circle with a cubic Bezier segment.
const bezierCircle = 0.5523

// Circle draws each dark module as an antialiased disc inscribed in the
// module's pixel box. The disc mask depends only on the box size, so it is
// rasterized once at Initialize and reused for every cell.
type Circle struct {
	target Target
	mask   *image.Alpha
}

func (d *Circle) Initialize(t Target) error {
	d.target = t
	box := t.BoxSize()
	r := vector.NewRasterizer(box, box)
	appendCorner := func(x0, y0, x1, y1, cx, cy float32) {
		k := float32(bezierCircle)
		r.CubeTo(x0+(cx-x0)*k, y0+(cy-y0)*k, x1+(cx-x1)*k, y1+(cy-y1)*k, x1, y1)
	}
	s := float32(box)
	h := s / 2
	r.MoveTo(h, 0)
	appendCorner(h, 0, s, h, s, 0)
	appendCorner(s, h, h, s, s, s)
	appendCorner(h, s, 0, h, 0, s)
	appendCorner(0, h, h, 0, 0, 0)
	r.ClosePath()

	d.mask = image.NewAlpha(image.Rect(0, 0, box, box))
	r.Draw(d.mask, d.mask.Bounds(), image.Opaque, image.Point{})
	return nil
}

func (d *Circle) NeedsNeighbors() bool { return false }

func (d *Circle) DrawRect(box image.Rectangle, cell Cell) {
	if !cell.Dark {
		return
	}
	fg := image.NewUniform(d.target.Foreground())
	draw.DrawMask(d.target.RGBA(), box, fg, image.Point{}, d.mask, image.Point{}, draw.Over)
}
