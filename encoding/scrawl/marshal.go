package scrawl

import (
	"bytes"
	"encoding/binary"

	"github.com/inkmath/inkmath/ink"
)

// MarshalBinary implements encoding.BinaryMarshaler for
// transforming a Drawing into bytes
func (d *Drawing) MarshalBinary() (data []byte, err error) {
	w := new(writer)

	w.writeHeader()

	nbStrokes := len(d.Strokes)
	w.writeNumber(nbStrokes)

	for _, stroke := range d.Strokes {
		w.writeStroke(stroke)
	}
	data = w.Bytes()

	return
}

type writer struct {
	b bytes.Buffer
}

func (r *writer) Bytes() []byte {
	return r.b.Bytes()
}

func (r *writer) writeHeader() error {
	r.b.Write([]byte(Header))
	return nil
}

func (r *writer) writeNumber(n int) error {
	binary.Write(&r.b, binary.LittleEndian, uint32(n))
	return nil
}

func (r *writer) writeFloat64(n float64) error {
	binary.Write(&r.b, binary.LittleEndian, n)
	return nil
}

func (r *writer) writeInt64(n int64) error {
	binary.Write(&r.b, binary.LittleEndian, n)
	return nil
}

func (r *writer) writeStroke(stroke ink.Stroke) error {
	nbPoints := len(stroke.Points)
	r.writeNumber(nbPoints)

	for _, point := range stroke.Points {
		r.writePoint(point)
	}

	return nil
}

func (r *writer) writePoint(point ink.Point) error {
	r.writeFloat64(point.X)
	r.writeFloat64(point.Y)
	r.writeInt64(point.T)

	return nil
}
