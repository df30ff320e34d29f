package scrawl

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/inkmath/inkmath/ink"
)

// UnmarshalBinary implements encoding.BinaryUnmarshaler for
// transforming bytes into a Drawing
func (d *Drawing) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}

	nbStrokes, err := r.readNumber()
	if err != nil {
		return err
	}

	d.Strokes = make([]ink.Stroke, nbStrokes)
	for i := uint32(0); i < nbStrokes; i++ {
		stroke, err := r.readStroke()
		if err != nil {
			return err
		}
		d.Strokes[i] = stroke
	}

	return nil
}

type reader struct {
	bytes.Reader
}

func newReader(data []byte) reader {
	br := bytes.NewReader(data)
	return reader{*br}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)

	n, err := r.Read(buf)
	if err != nil {
		return err
	}

	if n != HeaderLen {
		return fmt.Errorf("Wrong header size")
	}

	if string(buf) != Header {
		return fmt.Errorf("Unknown header")
	}

	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var nb uint32
	if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return 0, fmt.Errorf("Wrong number read")
	}
	return nb, nil
}

func (r *reader) readStroke() (ink.Stroke, error) {
	var stroke ink.Stroke

	nbPoints, err := r.readNumber()
	if err != nil {
		return stroke, err
	}

	if nbPoints == 0 {
		return stroke, nil
	}

	stroke.Points = make([]ink.Point, nbPoints)

	for i := uint32(0); i < nbPoints; i++ {
		p, err := r.readPoint()
		if err != nil {
			return stroke, err
		}

		stroke.Points[i] = p
	}

	return stroke, nil
}

func (r *reader) readPoint() (ink.Point, error) {
	var point ink.Point

	if err := binary.Read(r, binary.LittleEndian, &point.X); err != nil {
		return point, fmt.Errorf("Failed to read point")
	}
	if err := binary.Read(r, binary.LittleEndian, &point.Y); err != nil {
		return point, fmt.Errorf("Failed to read point")
	}
	if err := binary.Read(r, binary.LittleEndian, &point.T); err != nil {
		return point, fmt.Errorf("Failed to read point")
	}

	return point, nil
}
