package scrawl

import (
	"testing"

	"github.com/inkmath/inkmath/ink"
)

func TestRoundTrip(t *testing.T) {
	points := make([]ink.Point, 0)
	for i := 0; i < 200; i++ {
		c := float64(i)
		points = append(points, ink.Point{X: 100, Y: c, T: int64(i) * 10})
	}

	d := Drawing{
		Strokes: []ink.Stroke{
			{Points: points},
			{Points: []ink.Point{
				{X: 100, Y: 100, T: 0},
				{X: 1000, Y: 1000, T: 50},
			}},
			{},
		},
	}

	data, err := d.MarshalBinary()
	if err != nil {
		t.Error(err)
	}

	if len(data) != HeaderLen+4+(4+200*24)+(4+2*24)+4 {
		t.Errorf("unexpected encoded size %d", len(data))
	}

	var back Drawing
	if err := back.UnmarshalBinary(data); err != nil {
		t.Error(err)
	}

	if len(back.Strokes) != 3 {
		t.Fatalf("expected 3 strokes, got %d", len(back.Strokes))
	}
	if len(back.Strokes[0].Points) != 200 {
		t.Errorf("expected 200 points, got %d", len(back.Strokes[0].Points))
	}
	if back.Strokes[1].Points[1].X != 1000 {
		t.Errorf("point not preserved: %+v", back.Strokes[1].Points[1])
	}
	if back.Strokes[1].Points[1].T != 50 {
		t.Errorf("timestamp not preserved: %+v", back.Strokes[1].Points[1])
	}
	if back.Strokes[2].Points != nil {
		t.Errorf("empty stroke should stay empty")
	}
}

func TestUnmarshalRejectsUnknownHeader(t *testing.T) {
	data := make([]byte, HeaderLen+4)
	copy(data, "not an ink file")

	var d Drawing
	if err := d.UnmarshalBinary(data); err == nil {
		t.Error("expected header error")
	}
}

func TestUnmarshalRejectsTruncated(t *testing.T) {
	d := Drawing{Strokes: []ink.Stroke{
		{Points: []ink.Point{{X: 1, Y: 2, T: 3}, {X: 4, Y: 5, T: 6}}},
	}}
	data, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back Drawing
	if err := back.UnmarshalBinary(data[:len(data)-8]); err == nil {
		t.Error("expected error on truncated data")
	}

	if err := back.UnmarshalBinary(data[:HeaderLen-1]); err == nil {
		t.Error("expected error on truncated header")
	}
}
