package moduledrawers

import (
	"image"
	"image/draw"
)

// Square fills the module's whole pixel box with the foreground color.
// This is the default drawer for raster backends.
type Square struct {
	target Target
}

func (d *Square) Initialize(t Target) error {
	d.target = t
	return nil
}

func (d *Square) NeedsNeighbors() bool { return false }

func (d *Square) DrawRect(box image.Rectangle, cell Cell) {
	if !cell.Dark {
		return
	}
	fg := image.NewUniform(d.target.Foreground())
	draw.Draw(d.target.RGBA(), box, fg, image.Point{}, draw.Over)
}

// GappedSquare fills a centered square covering SizeRatio of the module's
// box, leaving a light gap between adjacent modules.
type GappedSquare struct {
	// SizeRatio is the fraction of the box side the square covers.
	// Values outside (0, 1] fall back to the default of 0.8.
	SizeRatio float64

	target Target
	inset  int
}

func (d *GappedSquare) Initialize(t Target) error {
	d.target = t
	ratio := d.SizeRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.8
	}
	box := t.BoxSize()
	d.inset = (box - int(float64(box)*ratio)) / 2
	return nil
}

func (d *GappedSquare) NeedsNeighbors() bool { return false }

func (d *GappedSquare) DrawRect(box image.Rectangle, cell Cell) {
	if !cell.Dark {
		return
	}
	fg := image.NewUniform(d.target.Foreground())
	draw.Draw(d.target.RGBA(), box.Inset(d.inset), fg, image.Point{}, draw.Over)
}
