package image

import "io"

// Render drives one backend through a full render of its matrix. The
// capability set decides the shape of the loop: per-cell backends get one
// call per module (context-capable ones for every module, plain ones for
// dark modules only), streaming backends get a single bulk Render call,
// and backends that declared a post-process pass run it last.
func Render(b Backend) error {
	caps := b.Caps()
	if caps.PerCell {
		width := b.Geometry().Width
		for row := 0; row < width; row++ {
			for col := 0; col < width; col++ {
				switch {
				case caps.Context:
					if err := b.DrawCellContext(row, col); err != nil {
						return err
					}
				case b.Dark(row, col):
					if err := b.DrawCell(row, col); err != nil {
						return err
					}
				}
			}
		}
	} else if err := b.Render(); err != nil {
		return err
	}
	if caps.PostProcess {
		return b.Process()
	}
	return nil
}

// RenderTo renders the backend and writes the artifact to w.
func RenderTo(b Backend, w io.Writer) error {
	if err := Render(b); err != nil {
		return err
	}
	return b.Save(w)
}
