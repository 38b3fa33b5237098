package moduledrawers

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Rounded draws dark modules as squares whose outer corners are rounded
// wherever the two orthogonally adjacent modules are light, so runs of
// dark modules merge into capsule-like shapes. Needs the neighborhood.
type Rounded struct {
	// RadiusRatio scales the corner radius relative to half the box
	// size. Values outside (0, 1] fall back to the default of 1.
	RadiusRatio float64

	target Target
	radius float32
	// One mask per combination of rounded corners, built on demand.
	// Bit order: NW, NE, SE, SW.
	masks [16]*image.Alpha
}

func (d *Rounded) Initialize(t Target) error {
	d.target = t
	ratio := d.RadiusRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	d.radius = float32(float64(t.BoxSize()/2) * ratio)
	d.masks = [16]*image.Alpha{}
	return nil
}

func (d *Rounded) NeedsNeighbors() bool { return true }

func (d *Rounded) DrawRect(box image.Rectangle, cell Cell) {
	if !cell.Dark {
		return
	}
	n := cell.Neighbors
	if n == nil {
		n = &Neighbors{}
	}
	key := 0
	if !n.N && !n.W {
		key |= 1 // NW
	}
	if !n.N && !n.E {
		key |= 2 // NE
	}
	if !n.S && !n.E {
		key |= 4 // SE
	}
	if !n.S && !n.W {
		key |= 8 // SW
	}
	mask := d.masks[key]
	if mask == nil {
		mask = d.cornerMask(key)
		d.masks[key] = mask
	}
	fg := image.NewUniform(d.target.Foreground())
	draw.DrawMask(d.target.RGBA(), box, fg, image.Point{}, mask, image.Point{}, draw.Over)
}

// cornerMask rasterizes a box-sized square with the selected corners
// rounded at the configured radius.
func (d *Rounded) cornerMask(key int) *image.Alpha {
	box := d.target.BoxSize()
	s := float32(box)
	k := float32(bezierCircle)
	radiusAt := func(bit int) float32 {
		if key&bit != 0 {
			return d.radius
		}
		return 0
	}
	rNW := radiusAt(1)
	rNE := radiusAt(2)
	rSE := radiusAt(4)
	rSW := radiusAt(8)

	r := vector.NewRasterizer(box, box)
	r.MoveTo(rNW, 0)
	r.LineTo(s-rNE, 0)
	if rNE > 0 {
		r.CubeTo(s-rNE+k*rNE, 0, s, rNE-k*rNE, s, rNE)
	}
	r.LineTo(s, s-rSE)
	if rSE > 0 {
		r.CubeTo(s, s-rSE+k*rSE, s-rSE+k*rSE, s, s-rSE, s)
	}
	r.LineTo(rSW, s)
	if rSW > 0 {
		r.CubeTo(rSW-k*rSW, s, 0, s-rSW+k*rSW, 0, s-rSW)
	}
	r.LineTo(0, rNW)
	if rNW > 0 {
		r.CubeTo(0, rNW-k*rNW, rNW-k*rNW, 0, rNW, 0)
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, box, box))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
