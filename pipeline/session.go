// Package pipeline owns the stroke session and runs the full recognition
// pass: segmentation, per-group recognition, parsing and evaluation.
package pipeline

import (
	"errors"

	"github.com/google/uuid"

	"github.com/inkmath/inkmath/ink"
)

// ErrNoStroke is returned when a point references a stroke that was never
// begun.
var ErrNoStroke = errors.New("no such stroke")

// Session holds the mutable stroke list of one canvas. It assumes a
// single writer: callers must not mutate strokes while a recognition pass
// reads them.
type Session struct {
	ID      uuid.UUID
	strokes []ink.Stroke
}

// NewSession returns an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// BeginStroke opens a new empty stroke and returns its reference for
// AppendPoint.
func (s *Session) BeginStroke() int {
	s.strokes = append(s.strokes, ink.Stroke{})
	return len(s.strokes) - 1
}

// AppendPoint adds a point to a previously begun stroke.
func (s *Session) AppendPoint(ref int, x, y float64, t int64) error {
	if ref < 0 || ref >= len(s.strokes) {
		return ErrNoStroke
	}
	s.strokes[ref].Append(x, y, t)
	return nil
}

// AddStroke appends a complete stroke in one call.
func (s *Session) AddStroke(points []ink.Point) {
	s.strokes = append(s.strokes, ink.Stroke{Points: points})
}

// UndoLastStroke removes the most recent stroke. Returns false when there
// is nothing to undo.
func (s *Session) UndoLastStroke() bool {
	if len(s.strokes) == 0 {
		return false
	}
	s.strokes = s.strokes[:len(s.strokes)-1]
	return true
}

// Clear removes all strokes.
func (s *Session) Clear() {
	s.strokes = nil
}

// StrokeCount returns the number of strokes in the session.
func (s *Session) StrokeCount() int {
	return len(s.strokes)
}

// Strokes returns a snapshot of the stroke list. The slice is copied so
// later session mutations do not shift it underneath the caller.
func (s *Session) Strokes() []ink.Stroke {
	out := make([]ink.Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// SetStrokes replaces the whole stroke list, e.g. after loading a saved
// drawing.
func (s *Session) SetStrokes(strokes []ink.Stroke) {
	s.strokes = strokes
}
