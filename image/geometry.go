package image

// Fixed outer canvas dimensions, in pixels, at 2x resolution for smoother
// output. The canvas is portrait: the area below the symbol is reserved for
// an ID label band.
const (
	CanvasWidth  = 288 * 2
	CanvasHeight = 432 * 2

	// TextAreaHeight is the label band reserved directly below the symbol.
	TextAreaHeight = 120 * 2
	// TextGap separates the symbol from the label band.
	TextGap = 42
)

// Auto-fit limits, as percentages of the available canvas area.
const (
	maxSymbolWidthPct  = 72
	maxSymbolHeightPct = 81
)

// Geometry describes where the symbol and its label band sit inside the
// fixed canvas. It is immutable once computed and shared by all backends,
// so pixel boxes are bit-identical across backends for the same inputs.
type Geometry struct {
	// Border is the quiet zone around the symbol, in modules.
	Border int
	// Width is the symbol's side length in modules, excluding the border.
	Width int
	// BoxSize is the pixel side length of one module.
	BoxSize int

	CanvasWidth  int
	CanvasHeight int

	// SymbolSize is the symbol's pixel side length including the border.
	// Invariant: SymbolSize == (Width + 2*Border) * BoxSize, exactly.
	SymbolSize int

	// OffsetX, OffsetY locate the symbol's top-left pixel on the canvas.
	// OffsetY may be negative when the content block is taller than the
	// canvas; backends clip rather than fail (see ComputeGeometry).
	OffsetX int
	OffsetY int

	TextAreaHeight int
	TextGap        int
	// TextOffsetY is the top pixel of the label band.
	TextOffsetY int
}

// GeometryOptions selects how the module scale is chosen. The zero value
// requests auto-fit.
type GeometryOptions struct {
	// BoxSize fixes the pixels-per-module scale directly. Ignored when
	// TargetSize is set.
	BoxSize int
	// TargetSize requests a symbol pixel size. The box size is derived by
	// floor division and the resulting symbol may be slightly smaller than
	// requested; that shrink is deliberate, not an error.
	TargetSize int
}

// ComputeGeometry lays out a symbol of the given module count and quiet
// zone on the fixed canvas. It is a pure function: identical arguments
// always produce an identical Geometry.
//
// When neither a box size nor a target size is given, the scale is chosen
// so the symbol fills at most 72% of the canvas width and 81% of the
// height left over after the label band and gap. A target size too small
// to give every module a pixel clamps the box size to 1 silently; the
// symbol then renders larger than requested. A content block taller than
// the canvas yields a negative OffsetY and is clipped at draw time.
func ComputeGeometry(border, width int, opts GeometryOptions) (Geometry, error) {
	if width <= 0 {
		return Geometry{}, NewConfigurationError("invalid module count: %d", width)
	}
	if border < 0 {
		return Geometry{}, NewConfigurationError("invalid border size: %d", border)
	}
	if opts.BoxSize < 0 {
		return Geometry{}, NewConfigurationError("invalid box size: %d", opts.BoxSize)
	}
	if opts.TargetSize < 0 {
		return Geometry{}, NewConfigurationError("invalid target size: %d", opts.TargetSize)
	}

	g := Geometry{
		Border:         border,
		Width:          width,
		CanvasWidth:    CanvasWidth,
		CanvasHeight:   CanvasHeight,
		TextAreaHeight: TextAreaHeight,
		TextGap:        TextGap,
	}

	modules := width + border*2
	switch {
	case opts.TargetSize > 0:
		g.BoxSize = max(1, opts.TargetSize/modules)
	case opts.BoxSize > 0:
		g.BoxSize = opts.BoxSize
	default:
		maxWidth := CanvasWidth * maxSymbolWidthPct / 100
		available := CanvasHeight - TextAreaHeight - TextGap
		maxHeight := available * maxSymbolHeightPct / 100
		g.BoxSize = max(1, min(maxWidth, maxHeight)/modules)
	}
	g.SymbolSize = modules * g.BoxSize

	// Center the content block (symbol + gap + label band) vertically and
	// the symbol horizontally. Floor division keeps the layout stable when
	// the margin goes negative.
	contentHeight := g.SymbolSize + g.TextGap + g.TextAreaHeight
	g.OffsetY = floorDiv(CanvasHeight-contentHeight, 2)
	g.OffsetX = floorDiv(CanvasWidth-g.SymbolSize, 2)
	g.TextOffsetY = g.OffsetY + g.SymbolSize + g.TextGap

	return g, nil
}

// floorDiv rounds the quotient toward negative infinity, so centering
// offsets behave consistently for oversized content.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
