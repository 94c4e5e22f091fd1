// Package wstr transcodes between UTF-8 host strings and the UTF-16 code
// units carried by wide strings on the wire.
package wstr

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrEncoding is wrapped by every EncodingError.
var ErrEncoding = errors.New("encoding error")

// BOM is the byte order mark code point. It is never emitted as a unit.
const BOM = 0xFEFF

// EncodingError reports invalid UTF-8 or UTF-16 input. The offending
// sequences are replaced by U+FFFD and the result is still returned, so
// callers usually log it and carry on.
type EncodingError struct {
	Op     string
	Offset int
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v at offset %d: %v", e.Op, ErrEncoding, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v at offset %d", e.Op, ErrEncoding, e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode transcodes s into UTF-16 code units, dropping any U+FEFF.
func Encode(s string) ([]uint16, error) {
	var encErr error
	if off := invalidUTF8(s); off >= 0 {
		encErr = &EncodingError{Op: "utf-8 to utf-16", Offset: off}
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &EncodingError{Op: "utf-8 to utf-16", Err: err}
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		if u == BOM {
			continue
		}
		units = append(units, u)
	}
	return units, encErr
}

// Decode transcodes UTF-16 code units into a UTF-8 string. Unpaired
// surrogates become U+FFFD and are reported.
func Decode(units []uint16) (string, error) {
	var encErr error
	if off := unpairedSurrogate(units); off >= 0 {
		encErr = &EncodingError{Op: "utf-16 to utf-8", Offset: off}
	}
	b := make([]byte, 2*len(units))
	for i, u := range units {
		b[2*i] = byte(u)
		b[2*i+1] = byte(u >> 8)
	}
	d, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", &EncodingError{Op: "utf-16 to utf-8", Err: err}
	}
	return string(d), encErr
}

// Len returns the number of code units Encode produces for s.
func Len(s string) int {
	if invalidUTF8(s) >= 0 {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	n := 0
	for _, r := range s {
		switch {
		case r == BOM:
		case r > 0xFFFF:
			n += 2
		default:
			n++
		}
	}
	return n
}

func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz == 1 {
			return i
		}
		i += sz
	}
	return -1
}

func unpairedSurrogate(units []uint16) int {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] < 0xE000 {
				i++
				continue
			}
			return i
		case u >= 0xDC00 && u < 0xE000:
			return i
		}
	}
	return -1
}
