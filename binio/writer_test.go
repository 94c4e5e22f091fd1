package binio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrowableWriterKeepsHighWaterMark(t *testing.T) {
	w := NewGrowableWriter(2)
	var want []byte
	for i := range 100 {
		w.WriteUint8(uint8(i))
		want = append(want, uint8(i))
		if w.Length() != int64(i+1) {
			t.Fatalf("Length() = %d after %d writes", w.Length(), i+1)
		}
	}
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Fatalf("bytes (-want +got):\n%s", diff)
	}

	if _, err := w.Seek(10, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	w.WriteUint16Big(0xFFFF)
	want[10], want[11] = 0xFF, 0xFF
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Errorf("overwrite shrank or lost data (-want +got):\n%s", diff)
	}
}

func TestGrowableWriterSeekZeroFills(t *testing.T) {
	w := NewGrowableWriter(0)
	w.WriteUint8(0xAA)
	if _, err := w.Seek(3, io.SeekCurrent); err != nil {
		t.Fatal(err)
	}
	w.WriteUint8(0xBB)
	if diff := cmp.Diff([]byte{0xAA, 0, 0, 0, 0xBB}, w.Bytes()); diff != "" {
		t.Errorf("bytes (-want +got):\n%s", diff)
	}
	w.Align(8)
	if w.Length() != 8 || w.Position() != 8 {
		t.Errorf("Align(8): length %d position %d", w.Length(), w.Position())
	}
}

func TestInPlaceWriterOverflow(t *testing.T) {
	buf := make([]byte, 3)
	w := NewWriter(buf)
	w.WriteUint16Big(0x0102)
	w.WriteUint16Big(0x0304)
	if !errors.Is(w.Err(), ErrBounds) {
		t.Fatalf("Err() = %v, want bounds error", w.Err())
	}
	w.WriteUint8(9)
	if diff := cmp.Diff([]byte{1, 2, 0}, buf); diff != "" {
		t.Errorf("caller buffer (-want +got):\n%s", diff)
	}
	if _, err := w.Write([]byte{1}); !errors.Is(err, ErrBounds) {
		t.Errorf("Write() err = %v", err)
	}
}

func TestInPlaceWriterSeekPastEnd(t *testing.T) {
	w := NewWriter(make([]byte, 4))
	if _, err := w.Seek(5, io.SeekStart); !errors.Is(err, ErrBounds) {
		t.Errorf("Seek() err = %v", err)
	}
}

func TestResize(t *testing.T) {
	w := NewGrowableWriter(0)
	w.WriteBytes([]byte("abcd"))
	w.Resize(6)
	if diff := cmp.Diff([]byte("abcd\x00\x00"), w.Bytes()); diff != "" {
		t.Errorf("Resize(6) (-want +got):\n%s", diff)
	}

	defer func() {
		r := recover()
		ape, ok := r.(*AllocationPolicyError)
		if !ok {
			t.Fatalf("recovered %v, want *AllocationPolicyError", r)
		}
		if ape.Length != 6 || ape.Requested != 2 {
			t.Errorf("AllocationPolicyError = %+v", ape)
		}
	}()
	w.Resize(2)
}

func TestWriteBitPreservesNeighbours(t *testing.T) {
	buf := []byte{0xFF}
	w := NewWriter(buf)
	w.SeekBit(3)
	w.WriteBit(false)
	if buf[0] != 0xF7 {
		t.Errorf("byte = %#x, want 0xf7", buf[0])
	}
}

func TestWriterIO(t *testing.T) {
	w := NewGrowableWriter(0)
	if _, err := io.Copy(w, bytes.NewReader([]byte("payload"))); err != nil {
		t.Fatal(err)
	}
	if string(w.Bytes()) != "payload" {
		t.Errorf("Bytes() = %q", w.Bytes())
	}
}
