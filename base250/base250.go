/*
Package base250 implements the two byte base-250 word used throughout ADC2
files for counts and indices.

A word is stored as a high byte followed by a low byte, each holding a digit
in the range 0 to 249, giving values between 0 and 62499. Byte values of 250
and above are an escape convention in other parts of the format; here they
are reduced modulo 250 as the original tools do.
*/
package base250

import (
	"errors"
	"fmt"
	"io"
)

const (
	base = 250

	// Max is one more than the largest value a word can hold
	Max = base * base
)

// ErrShort is returned when fewer than two bytes are available.
var ErrShort = errors.New("base250: short word")

// Decode returns the value of the word held in b.
func Decode(b [2]byte) uint16 {
	return uint16(b[0]%base)*base + uint16(b[1]%base)
}

// Encode returns the two byte form of v.
func Encode(v uint16) ([2]byte, error) {
	if int(v) >= Max {
		return [2]byte{}, fmt.Errorf("base250: %d out of range", v)
	}
	return [2]byte{byte(v / base), byte(v % base)}, nil
}

// ReadWord consumes exactly two bytes from r and decodes them.
func ReadWord(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrShort
		}
		return 0, err
	}
	return Decode(b), nil
}

// WriteWord encodes v and writes it to w.
func WriteWord(w io.Writer, v uint16) error {
	b, err := Encode(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b[:])
	return err
}
