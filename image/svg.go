package image

import (
	"fmt"
	"io"
	"strings"
)

// SVGOptions configures an SVGImage. The zero value renders black modules
// on a white background.
type SVGOptions struct {
	FillColor string // dark modules, default "#000000"
	BackColor string // background rect, default "#ffffff"

	// ModuleDrawerName is rejected with a CapabilityError: the SVG
	// backend keeps no drawer registry, every module is a rect. The
	// field exists so callers selecting styles by name fail before any
	// output is produced rather than silently losing the style.
	ModuleDrawerName string
}

// SVGImage is a stateful vector backend: it collects one rect element per
// dark module and writes a standalone SVG document sized to the fixed
// canvas. It draws per cell but needs no neighbor context.
type SVGImage struct {
	Base

	fill  string
	back  string
	rects []string
}

func NewSVGImage(geom Geometry, modules Matrix, opts SVGOptions) (*SVGImage, error) {
	if opts.ModuleDrawerName != "" {
		return nil, NewCapabilityError(
			"svg backend has no drawer aliases, cannot resolve %q", opts.ModuleDrawerName)
	}
	if err := checkModules(geom, modules); err != nil {
		return nil, err
	}
	s := &SVGImage{
		Base: NewBase(geom, modules),
		fill: opts.FillColor,
		back: opts.BackColor,
	}
	if s.fill == "" {
		s.fill = "#000000"
	}
	if s.back == "" {
		s.back = "#ffffff"
	}
	return s, nil
}

func (s *SVGImage) Caps() Capabilities {
	return Capabilities{PerCell: true}
}

func (s *SVGImage) DrawCell(row, col int) error {
	tl, _ := s.PixelBox(row, col)
	box := s.Geometry().BoxSize
	s.rects = append(s.rects,
		fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>`, tl.X, tl.Y, box, box))
	return nil
}

func (s *SVGImage) Save(w io.Writer) error {
	g := s.Geometry()
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		g.CanvasWidth, g.CanvasHeight, g.CanvasWidth, g.CanvasHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`+"\n", g.CanvasWidth, g.CanvasHeight, s.back)
	fmt.Fprintf(&b, `<g fill="%s">`+"\n", s.fill)
	for _, r := range s.rects {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	b.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
