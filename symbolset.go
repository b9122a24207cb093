package adc2

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bodgit/adc2/mask"
	"github.com/hashicorp/go-hclog"
)

const (
	minHeader = -6
	maxHeader = -1

	// Files older than version 2.12 use single byte mask indices
	oldHeader = -3

	hexStyle = 1
)

type category struct {
	symbols []*Symbol

	// Symbol height at each zoom level, taken from the first symbol
	sizes [numZoom]int
}

// SymbolSet is a decoded ADC2 symbol set. Once decoded the sheets are only
// ever read. Externalize records names on the set and must be serialized by
// the caller.
type SymbolSet struct {
	zoom       Zoom
	shape      Shape
	ignoreMask bool

	categories [numCategories]category

	names   names
	palette int
	logger  hclog.Logger
}

func newSymbolSet(opts ...Option) (*SymbolSet, error) {
	s := &SymbolSet{
		zoom:   DefaultZoom,
		names:  make(names),
		logger: hclog.NewNullLogger(),
	}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Open reads the symbol set descriptor at file. The sheets are expected to
// be in the same directory.
func Open(file string, opts ...Option) (*SymbolSet, error) {
	dir, name := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	return OpenFS(os.DirFS(dir), name, opts...)
}

// OpenFS reads the symbol set descriptor name from fsys, loading the sheets
// with FSSheets.
func OpenFS(fsys fs.FS, name string, opts ...Option) (*SymbolSet, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	defer f.Close()

	return Decode(f, FSSheets{
		FS:   fsys,
		Base: strings.TrimSuffix(name, path.Ext(name)),
	}, opts...)
}

// Decode reads a symbol set descriptor from r, loading sheets from sheets as
// required. Either the whole set is decoded or an error is returned.
func Decode(r io.Reader, sheets SheetLoader, opts ...Option) (*SymbolSet, error) {
	s, err := newSymbolSet(opts...)
	if err != nil {
		return nil, err
	}

	d := newDecoder(r)

	if err := s.readHeader(d); err != nil {
		return nil, err
	}

	counts, err := s.readCounts(d)
	if err != nil {
		return nil, err
	}

	for _, c := range []Category{MapBoard, GamePiece, Mask} {
		if c == Mask && s.ignoreMask {
			break
		}
		if err := s.readCategory(d, sheets, c, counts[c]); err != nil {
			return nil, err
		}
	}

	s.resolveMasks()

	return s, nil
}

func (s *SymbolSet) readHeader(d *decoder) error {
	header, err := d.readInt8()
	if err != nil {
		return readError("header", err)
	}
	if header < minHeader || header > maxHeader {
		return fmt.Errorf("%w: invalid symbol set header %d, expected %d to %d", ErrUnsupportedFormat, header, minHeader, maxHeader)
	}
	if header == oldHeader {
		return fmt.Errorf("%w: symbol set file version less than 2.12, convert before importing", ErrUnsupportedFormat)
	}

	// Orientation is decided by the map file
	if _, err := d.readInt8(); err != nil {
		return readError("orientation", err)
	}

	style, err := d.readInt8()
	if err != nil {
		return readError("map style", err)
	}
	if style == hexStyle {
		s.shape = Hex
	}

	version, err := d.readInt8()
	if err != nil {
		return readError("symbol set version", err)
	}
	s.ignoreMask = version != 0

	s.logger.Debug("read header", "header", header, "shape", s.shape, "version", version)

	return nil
}

func (s *SymbolSet) readCounts(d *decoder) ([numCategories]int, error) {
	var counts [numCategories]int
	for c := range counts {
		n, err := d.readWord()
		if err != nil {
			return counts, readError(Category(c).String()+" count", err)
		}
		if err := d.readDimensions(); err != nil {
			return counts, readError(Category(c).String()+" sheet dimensions", err)
		}
		counts[c] = n
	}

	if !s.ignoreMask {
		s.categories[Mask].symbols = make([]*Symbol, 0, counts[Mask])
	}
	s.categories[MapBoard].symbols = make([]*Symbol, 0, counts[MapBoard])
	s.categories[GamePiece].symbols = make([]*Symbol, 0, counts[GamePiece])

	s.logger.Debug("read counts", "map_board", counts[MapBoard], "game_piece", counts[GamePiece], "mask", counts[Mask])

	return counts, nil
}

func (s *SymbolSet) readCategory(d *decoder, sheets SheetLoader, c Category, n int) error {
	if n == 0 {
		return nil
	}

	sheet, err := sheets.Sheet(c, s.zoom)
	if err != nil {
		return ioError(err)
	}
	if c == Mask {
		sheet = mask.Generate(sheet)
	}
	s.logger.Debug("loaded sheet", "category", c, "bounds", sheet.Bounds())

	cat := &s.categories[c]
	for i := 0; i < n; i++ {
		sym := &Symbol{
			set:      s,
			sheet:    sheet,
			category: c,
		}

		var sizes *[numZoom]int
		if i == 0 {
			sizes = &cat.sizes
		}
		if err := sym.read(d, sizes); err != nil {
			return fmt.Errorf("%s symbol %d: %w", c, i, err)
		}

		if c == MapBoard {
			if err := checkMapBoard(cat.symbols, sym); err != nil {
				return err
			}
		}

		if r := sym.rect; r.Empty() || !r.In(sheet.Bounds()) {
			return fmt.Errorf("%w: %s symbol %d rectangle %v outside sheet %v", ErrInconsistentGeometry, c, i, r, sheet.Bounds())
		}

		s.logger.Trace("read symbol", "category", c, "index", i, "name", sym.name, "rect", sym.rect)

		cat.symbols = append(cat.symbols, sym)
	}

	return nil
}

// checkMapBoard makes sure sym is square and the same size as the first map
// board symbol.
func checkMapBoard(symbols []*Symbol, sym *Symbol) error {
	r := sym.rect
	if len(symbols) > 0 {
		first := symbols[0].rect
		if r.Dx() != first.Dx() || r.Dy() != first.Dy() {
			return fmt.Errorf("%w: map board symbol %d is %dx%d, expected %dx%d", ErrInconsistentGeometry, len(symbols), r.Dx(), r.Dy(), first.Dx(), first.Dy())
		}
	}
	if r.Dx() != r.Dy() {
		return fmt.Errorf("%w: map board symbol %d is %dx%d, expected a square", ErrInconsistentGeometry, len(symbols), r.Dx(), r.Dy())
	}
	return nil
}

// resolveMasks links each map board and game piece symbol to its mask.
func (s *SymbolSet) resolveMasks() {
	if s.ignoreMask {
		return
	}
	masks := s.categories[Mask].symbols
	for _, c := range []Category{MapBoard, GamePiece} {
		for _, sym := range s.categories[c].symbols {
			if i, ok := sym.index.resolve(len(masks)); ok {
				sym.mask = masks[i]
			}
		}
	}
}

func (s *SymbolSet) Shape() Shape {
	return s.shape
}

func (s *SymbolSet) Zoom() Zoom {
	return s.zoom
}

// IgnoresMasks reports whether the set predates masks, in which case any
// mask indices are ignored.
func (s *SymbolSet) IgnoresMasks() bool {
	return s.ignoreMask
}

func (s *SymbolSet) Len(c Category) int {
	if c < 0 || c >= numCategories {
		return 0
	}
	return len(s.categories[c].symbols)
}

// Symbol returns the symbol at index i in category c. It returns false if
// there is no such symbol.
func (s *SymbolSet) Symbol(c Category, i int) (*Symbol, bool) {
	if c < 0 || c >= numCategories {
		return nil, false
	}
	symbols := s.categories[c].symbols
	if i < 0 || i >= len(symbols) {
		return nil, false
	}
	return symbols[i], true
}

func (s *SymbolSet) GamePiece(i int) (*Symbol, bool) {
	return s.Symbol(GamePiece, i)
}

func (s *SymbolSet) MapBoardSymbol(i int) (*Symbol, bool) {
	return s.Symbol(MapBoard, i)
}

// MaskSymbol returns the mask at zero-based index i.
func (s *SymbolSet) MaskSymbol(i int) (*Symbol, bool) {
	return s.Symbol(Mask, i)
}

// Symbols returns the symbols in category c in file order.
func (s *SymbolSet) Symbols(c Category) []*Symbol {
	if c < 0 || c >= numCategories {
		return nil
	}
	return append([]*Symbol(nil), s.categories[c].symbols...)
}
