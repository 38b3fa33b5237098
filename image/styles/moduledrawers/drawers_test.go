package moduledrawers

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// fakeTarget is a minimal canvas for exercising drawers directly.
type fakeTarget struct {
	img *image.RGBA
	box int
}

func newFakeTarget(box int) *fakeTarget {
	img := image.NewRGBA(image.Rect(0, 0, box*3, box*3))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &fakeTarget{img: img, box: box}
}

func (f *fakeTarget) RGBA() *image.RGBA       { return f.img }
func (f *fakeTarget) BoxSize() int            { return f.box }
func (f *fakeTarget) Foreground() color.Color { return color.Black }

func (f *fakeTarget) isDark(x, y int) bool {
	c := f.img.RGBAAt(x, y)
	return c.R == 0 && c.G == 0 && c.B == 0
}

// centerBox is the middle module's pixel box on the 3x3-module fake canvas.
func centerBox(box int) image.Rectangle {
	return image.Rect(box, box, 2*box, 2*box)
}

func initDrawer(t *testing.T, d Drawer, target Target) {
	t.Helper()
	if err := d.Initialize(target); err != nil {
		t.Fatal(err)
	}
}

func TestSquare(t *testing.T) {
	ft := newFakeTarget(8)
	d := &Square{}
	initDrawer(t, d, ft)

	d.DrawRect(centerBox(8), Cell{Dark: true})
	for _, p := range [][2]int{{8, 8}, {15, 15}, {11, 12}} {
		if !ft.isDark(p[0], p[1]) {
			t.Errorf("pixel (%d, %d) should be dark", p[0], p[1])
		}
	}
	if ft.isDark(7, 7) || ft.isDark(16, 16) {
		t.Error("square drawer painted outside its box")
	}
}

func TestSquareSkipsLightModules(t *testing.T) {
	ft := newFakeTarget(8)
	d := &Square{}
	initDrawer(t, d, ft)

	d.DrawRect(centerBox(8), Cell{Dark: false})
	if ft.isDark(12, 12) {
		t.Error("light module should not be painted")
	}
}

func TestGappedSquare(t *testing.T) {
	ft := newFakeTarget(10)
	d := &GappedSquare{SizeRatio: 0.8}
	initDrawer(t, d, ft)

	d.DrawRect(centerBox(10), Cell{Dark: true})
	if ft.isDark(10, 10) {
		t.Error("gap pixel at box corner should stay light")
	}
	if !ft.isDark(11, 11) || !ft.isDark(15, 15) {
		t.Error("inset square should be dark")
	}
}

func TestCircle(t *testing.T) {
	ft := newFakeTarget(16)
	d := &Circle{}
	initDrawer(t, d, ft)

	d.DrawRect(centerBox(16), Cell{Dark: true})
	if !ft.isDark(24, 24) {
		t.Error("disc center should be dark")
	}
	if ft.isDark(16, 16) || ft.isDark(31, 31) {
		t.Error("box corners lie outside the disc")
	}
}

func TestRoundedCorners(t *testing.T) {
	box := 16
	cases := []struct {
		name       string
		neighbors  Neighbors
		cornerDark bool
	}{
		{"isolated module rounds the corner", Neighbors{Me: true}, false},
		{"dark north neighbor keeps it square", Neighbors{Me: true, N: true}, true},
		{"dark west neighbor keeps it square", Neighbors{Me: true, W: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ft := newFakeTarget(box)
			d := &Rounded{}
			initDrawer(t, d, ft)

			n := c.neighbors
			d.DrawRect(centerBox(box), Cell{Dark: true, Neighbors: &n})
			if got := ft.isDark(box, box); got != c.cornerDark {
				t.Errorf("NW corner dark = %v, want %v", got, c.cornerDark)
			}
			if !ft.isDark(box+8, box+8) {
				t.Error("module center should be dark")
			}
		})
	}
}

func TestRoundedNeedsNeighbors(t *testing.T) {
	if !(&Rounded{}).NeedsNeighbors() {
		t.Error("rounded drawer must request the neighborhood")
	}
	for name, d := range map[string]Drawer{
		"square": &Square{}, "gapped": &GappedSquare{}, "circle": &Circle{},
	} {
		if d.NeedsNeighbors() {
			t.Errorf("%s drawer should not request the neighborhood", name)
		}
	}
}
