package adc2

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/bodgit/adc2/base250"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// decoder reads the primitive types of an ADC2 descriptor. Integers are
// big-endian and strings are null-terminated Windows-1252.
type decoder struct {
	r    *bufio.Reader
	text *encoding.Decoder

	tmp [4]byte
}

func newDecoder(r io.Reader) *decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &decoder{
		r:    br,
		text: charmap.Windows1252.NewDecoder(),
	}
}

func (d *decoder) readInt8() (int8, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (d *decoder) readInt32() (int32, error) {
	if _, err := io.ReadFull(d.r, d.tmp[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d.tmp[:4])), nil
}

func (d *decoder) readWord() (int, error) {
	v, err := base250.ReadWord(d.r)
	return int(v), err
}

func (d *decoder) readString() (string, error) {
	b, err := d.r.ReadBytes(0)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return d.text.String(string(b[:len(b)-1]))
}

// readDimensions skips over a width and height for each zoom level. The
// overall sheet sizes are implied by the sheets themselves.
func (d *decoder) readDimensions() error {
	for i := 0; i < numZoom*2; i++ {
		if _, err := d.readInt32(); err != nil {
			return err
		}
	}
	return nil
}
