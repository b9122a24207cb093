package adc2

import (
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/adc2/base250"
)

var (
	// ErrMalformedStream is returned when the descriptor ends early
	ErrMalformedStream = errors.New("adc2: malformed stream")

	// ErrUnsupportedFormat is returned for unknown or unsupported headers
	ErrUnsupportedFormat = errors.New("adc2: unsupported format")

	// ErrInconsistentGeometry is returned when symbol rectangles don't
	// agree with each other or with their sheet
	ErrInconsistentGeometry = errors.New("adc2: inconsistent geometry")

	// ErrIOFailure is returned when a sheet can't be read or decoded, or
	// an image can't be encoded or stored
	ErrIOFailure = errors.New("adc2: i/o failure")
)

func readError(what string, err error) error {
	switch err {
	case io.EOF, io.ErrUnexpectedEOF, base250.ErrShort:
		return fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedStream, what)
	default:
		return fmt.Errorf("%w: reading %s: %w", ErrIOFailure, what, err)
	}
}

func ioError(err error) error {
	if errors.Is(err, ErrIOFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrIOFailure, err)
}
