package adc2

import "image"

// ModalSize returns the most common game piece size. When sizes are equally
// common the one whose first game piece comes earliest wins. An empty set
// returns a zero size.
func (s *SymbolSet) ModalSize() image.Point {
	histogram := make(map[image.Point]int)
	var order []image.Point

	for _, sym := range s.categories[GamePiece].symbols {
		// Symbol images are always the size of their rectangle
		d := sym.rect.Size()
		if _, ok := histogram[d]; !ok {
			order = append(order, d)
		}
		histogram[d]++
	}

	var best int
	var modal image.Point
	for _, d := range order {
		if n := histogram[d]; n > best {
			best, modal = n, d
		}
	}

	return modal
}

// Sizes returns the symbol height at each zoom level for category c, taken
// from the first symbol in that category. It is all zeroes if the category
// is empty.
func (s *SymbolSet) Sizes(c Category) [numZoom]int {
	if c < 0 || c >= numCategories {
		return [numZoom]int{}
	}
	return s.categories[c].sizes
}

// Size table from the first symbol in the file, normally a map board symbol
func (s *SymbolSet) symbolSizes() [numZoom]int {
	for _, c := range []Category{MapBoard, GamePiece, Mask} {
		if len(s.categories[c].symbols) > 0 {
			return s.categories[c].sizes
		}
	}
	return [numZoom]int{}
}

// SymbolSize returns the symbol size at the active zoom level. This is the
// map board symbol size, or the first game piece's size in a set without
// map board symbols.
func (s *SymbolSet) SymbolSize() int {
	return s.symbolSizes()[s.zoom]
}

// ZoomFactor returns how much larger symbols are at zoom level z than at
// the active zoom level, measured the same way as SymbolSize. It returns
// zero if z isn't valid or the set is empty.
func (s *SymbolSet) ZoomFactor(z Zoom) float64 {
	sizes := s.symbolSizes()
	if !z.valid() || sizes[s.zoom] == 0 {
		return 0
	}
	return float64(sizes[z]) / float64(sizes[s.zoom])
}
