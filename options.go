package adc2

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Option configures how a symbol set is decoded and exported.
type Option func(*SymbolSet) error

// WithZoom selects the zoom level to decode. The default is DefaultZoom.
func WithZoom(z Zoom) Option {
	return func(s *SymbolSet) error {
		if !z.valid() {
			return fmt.Errorf("adc2: invalid zoom level %d", int(z))
		}
		s.zoom = z
		return nil
	}
}

// WithLogger sets the logger used while decoding.
func WithLogger(logger hclog.Logger) Option {
	return func(s *SymbolSet) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithPalette makes Externalize write paletted PNG images with at most n
// colors. Symbols with more than n colors are quantized. Zero turns it off.
func WithPalette(n int) Option {
	return func(s *SymbolSet) error {
		if n != 0 && (n < 2 || n > 256) {
			return fmt.Errorf("adc2: invalid palette size %d", n)
		}
		s.palette = n
		return nil
	}
}
