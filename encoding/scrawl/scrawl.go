// Package scrawl implements the binary ink file format: a fixed ASCII
// header followed by little-endian stroke and point records.
package scrawl

import "github.com/inkmath/inkmath/ink"

// Header identifies a version 1 ink file. The trailing spaces pad it to
// HeaderLen bytes.
const Header = "inkmath ink file, version=1     "

// HeaderLen is the fixed size of the file header.
const HeaderLen = 32

// Drawing is the root of an ink file: the strokes of one canvas.
type Drawing struct {
	Strokes []ink.Stroke
}
