// Package pngwriter encodes one-bit greyscale PNG images row by row, so a
// producer can stream arbitrarily tall images through constant memory.
// The stdlib encoder needs the whole image materialized up front, which is
// exactly what streaming render backends must avoid.
package pngwriter

import (
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// idatChunkSize is how much compressed data is buffered before an IDAT
// chunk is flushed to the sink.
const idatChunkSize = 1 << 15

// Writer emits a width x height PNG, greyscale, bit depth 1 (0 = black,
// 1 = white). Rows are pushed with WriteRow in top-to-bottom order and
// Close must be called to finish the stream.
type Writer struct {
	width  int
	height int

	sink io.Writer
	zw   *zlib.Writer
	idat *idatWriter

	rows   int
	rowBuf []byte
	err    error
}

// New writes the PNG signature and header to w and returns a Writer
// expecting exactly height rows of width bits each.
func New(w io.Writer, width, height int) (*Writer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pngwriter: invalid dimensions %dx%d", width, height)
	}
	if _, err := w.Write(pngSignature); err != nil {
		return nil, err
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 1 // bit depth
	ihdr[9] = 0 // color type: greyscale
	// compression, filter and interlace methods stay zero
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return nil, err
	}

	idat := &idatWriter{sink: w}
	return &Writer{
		width:  width,
		height: height,
		sink:   w,
		zw:     zlib.NewWriter(idat),
		idat:   idat,
		// one filter byte, then the row packed eight pixels per byte
		rowBuf: make([]byte, 1+(width+7)/8),
	}, nil
}

// WriteRow packs one pixel row and feeds it to the compressor. Each byte
// of row is one pixel: zero renders black, anything else white. The row
// slice may be reused by the caller after WriteRow returns.
func (w *Writer) WriteRow(row []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(row) != w.width {
		return w.fail(fmt.Errorf("pngwriter: row has %d pixels, want %d", len(row), w.width))
	}
	if w.rows >= w.height {
		return w.fail(fmt.Errorf("pngwriter: more than %d rows written", w.height))
	}

	buf := w.rowBuf
	clear(buf)
	for i, v := range row {
		if v != 0 {
			buf[1+i/8] |= 0x80 >> (i % 8)
		}
	}
	if _, err := w.zw.Write(buf); err != nil {
		return w.fail(err)
	}
	w.rows++
	return nil
}

// Close flushes the compressed stream and writes the trailing chunk. It
// fails if the number of rows written does not match the declared height.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.rows != w.height {
		return w.fail(fmt.Errorf("pngwriter: wrote %d of %d rows", w.rows, w.height))
	}
	if err := w.zw.Close(); err != nil {
		return w.fail(err)
	}
	if err := w.idat.flush(); err != nil {
		return w.fail(err)
	}
	return writeChunk(w.sink, "IEND", nil)
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

// idatWriter buffers compressed bytes and flushes them as IDAT chunks.
type idatWriter struct {
	sink io.Writer
	buf  []byte
}

func (iw *idatWriter) Write(p []byte) (int, error) {
	iw.buf = append(iw.buf, p...)
	for len(iw.buf) >= idatChunkSize {
		if err := writeChunk(iw.sink, "IDAT", iw.buf[:idatChunkSize]); err != nil {
			return 0, err
		}
		iw.buf = iw.buf[:copy(iw.buf, iw.buf[idatChunkSize:])]
	}
	return len(p), nil
}

func (iw *idatWriter) flush() error {
	if len(iw.buf) == 0 {
		return nil
	}
	err := writeChunk(iw.sink, "IDAT", iw.buf)
	iw.buf = iw.buf[:0]
	return err
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], typ)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc.Sum32())
	_, err := w.Write(trailer[:])
	return err
}
