package image

import (
	"bytes"
	"io"
	"testing"
)

// recordingBackend counts how the render driver exercises the contract.
type recordingBackend struct {
	Base
	caps Capabilities

	cells        [][2]int
	contextCells [][2]int
	renders      int
	processes    int
	saves        int
}

func (r *recordingBackend) Caps() Capabilities { return r.caps }

func (r *recordingBackend) DrawCell(row, col int) error {
	r.cells = append(r.cells, [2]int{row, col})
	return nil
}

func (r *recordingBackend) DrawCellContext(row, col int) error {
	r.contextCells = append(r.contextCells, [2]int{row, col})
	return nil
}

func (r *recordingBackend) Render() error {
	r.renders++
	return nil
}

func (r *recordingBackend) Process() error {
	r.processes++
	return nil
}

func (r *recordingBackend) Save(w io.Writer) error {
	r.saves++
	_, err := w.Write([]byte("artifact"))
	return err
}

func TestRenderDispatch(t *testing.T) {
	g := mustGeometry(t, 1, 3, GeometryOptions{BoxSize: 2})
	m := testMatrix(3, [2]int{0, 0}, [2]int{1, 2}, [2]int{2, 1})

	t.Run("per-cell draws dark modules only", func(t *testing.T) {
		b := &recordingBackend{Base: NewBase(g, m), caps: Capabilities{PerCell: true}}
		if err := Render(b); err != nil {
			t.Fatal(err)
		}
		if len(b.cells) != 3 {
			t.Errorf("drew %d cells, want 3 dark cells", len(b.cells))
		}
		if len(b.contextCells) != 0 || b.renders != 0 || b.processes != 0 {
			t.Error("per-cell backend took an unexpected path")
		}
	})

	t.Run("context draws every module", func(t *testing.T) {
		b := &recordingBackend{Base: NewBase(g, m), caps: Capabilities{PerCell: true, Context: true}}
		if err := Render(b); err != nil {
			t.Fatal(err)
		}
		if len(b.contextCells) != 9 {
			t.Errorf("drew %d cells with context, want all 9", len(b.contextCells))
		}
		if len(b.cells) != 0 {
			t.Error("context backend should not receive plain DrawCell calls")
		}
	})

	t.Run("bulk backend renders once", func(t *testing.T) {
		b := &recordingBackend{Base: NewBase(g, m)}
		if err := Render(b); err != nil {
			t.Fatal(err)
		}
		if b.renders != 1 {
			t.Errorf("Render ran %d times, want 1", b.renders)
		}
		if len(b.cells) != 0 || len(b.contextCells) != 0 {
			t.Error("bulk backend should not be iterated per cell")
		}
	})

	t.Run("post-process runs last", func(t *testing.T) {
		b := &recordingBackend{Base: NewBase(g, m), caps: Capabilities{PerCell: true, PostProcess: true}}
		if err := Render(b); err != nil {
			t.Fatal(err)
		}
		if b.processes != 1 {
			t.Errorf("Process ran %d times, want 1", b.processes)
		}
	})
}

func TestRenderTo(t *testing.T) {
	g := mustGeometry(t, 1, 3, GeometryOptions{BoxSize: 2})
	b := &recordingBackend{Base: NewBase(g, testMatrix(3)), caps: Capabilities{PerCell: true}}
	var buf bytes.Buffer
	if err := RenderTo(b, &buf); err != nil {
		t.Fatal(err)
	}
	if b.saves != 1 || buf.String() != "artifact" {
		t.Errorf("save not driven: saves=%d output=%q", b.saves, buf.String())
	}
}
