package binio

import (
	"fmt"
	"io"
)

// cursor holds the position state shared by Reader and Writer.
type cursor struct {
	endian Endian
	pos    int64
	bit    uint8
}

// Position returns the byte cursor.
func (c *cursor) Position() int64 {
	return c.pos
}

// BitPosition returns the bit cursor within the current byte.
func (c *cursor) BitPosition() int {
	return int(c.bit)
}

// Endian returns the stream endian.
func (c *cursor) Endian() Endian {
	return c.endian
}

// SetEndian changes the stream endian. DefaultEndian resets it to Little.
func (c *cursor) SetEndian(e Endian) {
	if e == DefaultEndian {
		e = Little
	}
	c.endian = e
}

// SeekBit sets the bit cursor to n (0..7) without moving the byte cursor.
func (c *cursor) SeekBit(n int) {
	if n < 0 || n > 7 {
		panic(fmt.Sprintf("binio: bit index %d out of range 0..7", n))
	}
	c.bit = uint8(n)
}

func (c *cursor) normalize() {
	if c.bit != 0 {
		c.pos++
		c.bit = 0
	}
}

func (c *cursor) advanceBit() {
	c.bit++
	if c.bit == 8 {
		c.bit = 0
		c.pos++
	}
}

func (c *cursor) resolve(e Endian) Endian {
	if e == DefaultEndian {
		return c.endian
	}
	return e
}

func (c *cursor) target(offset int64, whence int, length int64) (int64, bool) {
	switch whence {
	case io.SeekStart:
		return offset, true
	case io.SeekCurrent:
		return c.pos + offset, true
	case io.SeekEnd:
		return length + offset, true
	default:
		return 0, false
	}
}

// AlignUp rounds v up to the next multiple of n. Powers of two use a mask.
func AlignUp(v, n int64) int64 {
	if n <= 1 {
		return v
	}
	if n&(n-1) == 0 {
		return (v + n - 1) &^ (n - 1)
	}
	return (v + n - 1) / n * n
}
