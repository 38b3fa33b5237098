package image

import (
	"io"
	"iter"

	"qrframe/pngwriter"
)

// Pixel values produced by the streaming backend.
const (
	streamLight byte = 1
	streamDark  byte = 0
)

// StreamImage is the memory-efficient monochrome backend: it never
// materializes the canvas. Rows yields pixel rows lazily in scan order
// and Save pipes them straight into a row-streaming PNG encoder, so
// memory use stays constant regardless of symbol size.
type StreamImage struct {
	Base
}

func NewStreamImage(geom Geometry, modules Matrix) (*StreamImage, error) {
	if err := checkModules(geom, modules); err != nil {
		return nil, err
	}
	return &StreamImage{Base: NewBase(geom, modules)}, nil
}

// Caps: the streaming backend opts out of per-cell drawing entirely; it
// computes every pixel from the matrix and the offsets.
func (s *StreamImage) Caps() Capabilities { return Capabilities{} }

// Render is a no-op: rows are produced lazily when consumed.
func (s *StreamImage) Render() error { return nil }

// Rows returns a single-use sequence of pixel rows, top to bottom. It
// yields exactly CanvasHeight rows of exactly CanvasWidth pixels each
// (streamLight background, streamDark for module pixels), clamping spans
// so the invariant holds even when the content overflows the canvas.
// Yielded slices are reused between iterations; consumers must copy a row
// to retain it.
func (s *StreamImage) Rows() iter.Seq[[]byte] {
	g := s.Geometry()
	return func(yield func([]byte) bool) {
		lightRow := make([]byte, g.CanvasWidth)
		for i := range lightRow {
			lightRow[i] = streamLight
		}

		emitted := 0
		// emit yields row n times, stopping at the canvas bottom.
		emit := func(row []byte, n int) bool {
			for ; n > 0 && emitted < g.CanvasHeight; n-- {
				if !yield(row) {
					return false
				}
				emitted++
			}
			return true
		}

		// Filler above the symbol.
		if !emit(lightRow, g.OffsetY) {
			return
		}
		// Top border band: full-width light rows across the quiet zone.
		if !emit(lightRow, g.Border*g.BoxSize) {
			return
		}
		// Data rows: each module row expands to BoxSize identical pixel
		// rows, each module to BoxSize identical pixels.
		rowBuf := make([]byte, g.CanvasWidth)
		for _, moduleRow := range s.Modules() {
			s.composeRow(rowBuf, moduleRow)
			if !emit(rowBuf, g.BoxSize) {
				return
			}
		}
		// Bottom border band.
		if !emit(lightRow, g.Border*g.BoxSize) {
			return
		}
		// Filler below the symbol, including the blank label band.
		emit(lightRow, g.CanvasHeight-emitted)
	}
}

// composeRow builds one full-width pixel row for a module row: light side
// margins and quiet-zone columns, each dark module upscaled to BoxSize
// dark pixels. Spans outside the canvas are clipped.
func (s *StreamImage) composeRow(dst []byte, moduleRow []bool) {
	g := s.Geometry()
	for i := range dst {
		dst[i] = streamLight
	}
	for col, dark := range moduleRow {
		if !dark {
			continue
		}
		x0 := g.OffsetX + (g.Border+col)*g.BoxSize
		x1 := min(x0+g.BoxSize, len(dst))
		for x := max(x0, 0); x < x1; x++ {
			dst[x] = streamDark
		}
	}
}

func (s *StreamImage) Save(w io.Writer) error {
	g := s.Geometry()
	pw, err := pngwriter.New(w, g.CanvasWidth, g.CanvasHeight)
	if err != nil {
		return err
	}
	for row := range s.Rows() {
		if err := pw.WriteRow(row); err != nil {
			return err
		}
	}
	return pw.Close()
}
