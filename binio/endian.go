package binio

import (
	"encoding/binary"
	"fmt"
)

// Endian selects the byte order of multi-byte scalars.
type Endian int

const (
	// DefaultEndian defers to the stream's configured endian.
	DefaultEndian Endian = iota
	Little
	Big
)

func (e Endian) String() string {
	switch e {
	case DefaultEndian:
		return "default"
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("<bad endian %d>", int(e))
	}
}

func (e Endian) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Endian) UnmarshalText(d []byte) error {
	pe, ok := map[string]Endian{
		"default": DefaultEndian,
		"little":  Little,
		"le":      Little,
		"big":     Big,
		"be":      Big,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown endian %q", d)
	}
	*e = pe
	return nil
}

func (e Endian) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
