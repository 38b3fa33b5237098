package image

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"qrframe/image/styles/moduledrawers"
)

// RasterDrawerAliases is the style registry of the raster backend. Each
// entry constructs a fresh strategy with its default arguments.
var RasterDrawerAliases = DrawerAliases{
	"square": {New: func() moduledrawers.Drawer {
		return &moduledrawers.Square{}
	}},
	"gapped-square": {New: func() moduledrawers.Drawer {
		return &moduledrawers.GappedSquare{SizeRatio: 0.8}
	}},
	"circle": {New: func() moduledrawers.Drawer {
		return &moduledrawers.Circle{}
	}},
	"rounded": {New: func() moduledrawers.Drawer {
		return &moduledrawers.Rounded{RadiusRatio: 1}
	}},
}

// RasterOptions configures a RasterImage. The zero value renders black
// square modules on a white canvas with no label.
type RasterOptions struct {
	// ModuleDrawer and EyeDrawer select the strategies directly. When
	// nil, the corresponding *Name field is resolved against
	// RasterDrawerAliases; an empty name selects the square default.
	// Swapping the eye drawer changes the finder patterns only; pick
	// shapes scanners still recognize.
	ModuleDrawer     moduledrawers.Drawer
	EyeDrawer        moduledrawers.Drawer
	ModuleDrawerName string
	EyeDrawerName    string

	FillColor color.Color // dark modules, default black
	BackColor color.Color // canvas background, default white

	// Label is drawn centered in the band below the symbol during the
	// post-process pass. Empty disables the pass.
	Label string
}

// RasterImage materializes the full canvas as an RGBA image and delegates
// per-module painting to a pair of drawer strategies, one for ordinary
// modules and one for the finder patterns. Save encodes the canvas as PNG.
type RasterImage struct {
	Base

	img          *image.RGBA
	fill         color.Color
	back         color.Color
	moduleDrawer moduledrawers.Drawer
	eyeDrawer    moduledrawers.Drawer
	label        string
}

func NewRasterImage(geom Geometry, modules Matrix, opts RasterOptions) (*RasterImage, error) {
	if err := checkModules(geom, modules); err != nil {
		return nil, err
	}
	r := &RasterImage{
		Base:  NewBase(geom, modules),
		fill:  opts.FillColor,
		back:  opts.BackColor,
		label: opts.Label,
	}
	if r.fill == nil {
		r.fill = color.Black
	}
	if r.back == nil {
		r.back = color.White
	}

	var err error
	if r.moduleDrawer, err = pickDrawer(opts.ModuleDrawer, opts.ModuleDrawerName); err != nil {
		return nil, err
	}
	if r.eyeDrawer, err = pickDrawer(opts.EyeDrawer, opts.EyeDrawerName); err != nil {
		return nil, err
	}

	r.img = image.NewRGBA(image.Rect(0, 0, geom.CanvasWidth, geom.CanvasHeight))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.back), image.Point{}, draw.Src)

	if err := r.moduleDrawer.Initialize(r); err != nil {
		return nil, err
	}
	if err := r.eyeDrawer.Initialize(r); err != nil {
		return nil, err
	}
	return r, nil
}

func pickDrawer(d moduledrawers.Drawer, name string) (moduledrawers.Drawer, error) {
	if d != nil {
		return d, nil
	}
	if name == "" {
		name = "square"
	}
	return RasterDrawerAliases.Resolve(name)
}

func (r *RasterImage) Caps() Capabilities {
	return Capabilities{
		PerCell:     true,
		Context:     true,
		PostProcess: r.label != "",
	}
}

func (r *RasterImage) DrawCellContext(row, col int) error {
	drawer := r.moduleDrawer
	if r.IsEye(row, col) {
		drawer = r.eyeDrawer
	}
	cell := moduledrawers.Cell{Dark: r.Dark(row, col)}
	if drawer.NeedsNeighbors() {
		n := r.Modules().Neighbors(row, col)
		cell.Neighbors = &n
	}
	drawer.DrawRect(r.CellRect(row, col), cell)
	return nil
}

// Process draws the label centered in the reserved band below the symbol.
// The embedded bitmap face keeps the core free of font discovery.
func (r *RasterImage) Process() error {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.fill),
		Face: face,
	}
	m := face.Metrics()
	g := r.Geometry()
	x := g.OffsetX + (g.SymbolSize-d.MeasureString(r.label).Ceil())/2
	y := g.TextOffsetY + (g.TextAreaHeight-m.Height.Ceil())/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(r.label)
	return nil
}

func (r *RasterImage) Save(w io.Writer) error {
	return png.Encode(w, r.img)
}

// Image exposes the canvas for callers that post-process the render
// themselves.
func (r *RasterImage) Image() *image.RGBA { return r.img }

// RGBA, BoxSize and Foreground implement moduledrawers.Target.
func (r *RasterImage) RGBA() *image.RGBA { return r.img }

func (r *RasterImage) BoxSize() int { return r.Geometry().BoxSize }

func (r *RasterImage) Foreground() color.Color { return r.fill }
