/*
Package adc2 decodes symbol sets from the ADC2 board wargame tool.

A symbol set is a small binary descriptor (usually with an .ads extension)
that indexes rectangles inside a handful of large bitmap sheets sitting next
to it. There is a sheet for terrain (map board) symbols, one for unit (game
piece) symbols and, in newer files, one for black and white masks. Each
symbol has a rectangle for each of three zoom levels and each zoom level has
its own set of sheets, named after the descriptor:

	<base>-t<zoom>.bmp  map board symbols
	<base>-u<zoom>.bmp  game piece symbols
	<base>-m<zoom>.bmp  masks

where zoom is 1, 2 or 3. Only one zoom level is decoded at a time.

Symbol images are cut out of the shared sheets lazily and any mask is
applied as an alpha channel at the same time.
*/
package adc2

import "fmt"

// Zoom selects one of the three precomputed zoom levels.
type Zoom int

const (
	ZoomSmall Zoom = iota
	ZoomMedium
	ZoomLarge

	numZoom = 3

	// DefaultZoom is the zoom level used unless WithZoom says otherwise
	DefaultZoom = ZoomLarge
)

func (z Zoom) valid() bool {
	return z >= ZoomSmall && z < numZoom
}

func (z Zoom) String() string {
	return fmt.Sprintf("%d", int(z)+1)
}

// Category is one of the three kinds of symbol held in a set.
type Category int

// Symbol categories, in the order they appear in the file.
const (
	MapBoard Category = iota
	GamePiece
	Mask

	numCategories = 3
)

var categoryNames = [numCategories]string{"map board", "game piece", "mask"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Suffix returns the letter used in sheet filenames for c.
func (c Category) Suffix() byte {
	return "tum"[c]
}

// Shape is the shape of the map board cells.
type Shape int

const (
	Square Shape = iota
	Hex
)

func (s Shape) String() string {
	if s == Hex {
		return "hex"
	}
	return "square"
}
