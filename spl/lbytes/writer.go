package lbytes

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewWriter(bs []byte) Writer {
	return Writer{bs: bs}
}

func (w *Writer) Offset() int {
	return w.offset
}

func (w *Writer) PutUint32(value uint32) error {
	if len(w.bs)-w.offset < WordSize {
		err := errors.Wrapf(
			io.ErrShortBuffer,
			"Writer.PutUint32 error at offset %d: %d bytes left",
			w.offset, len(w.bs)-w.offset,
		)
		return err
	}
	binary.LittleEndian.PutUint32(w.bs[w.offset:w.offset+WordSize], value)
	w.offset += WordSize
	return nil
}

// Zero clears the next n bytes. Reserved regions are always written out
// explicitly so that reused buffers never leak stale content.
func (w *Writer) Zero(n int) error {
	if n < 0 || len(w.bs)-w.offset < n {
		err := errors.Wrapf(
			io.ErrShortBuffer,
			"Writer.Zero error at offset %d: want %d bytes, %d left",
			w.offset, n, len(w.bs)-w.offset,
		)
		return err
	}
	region := w.bs[w.offset : w.offset+n]
	for i := range region {
		region[i] = 0
	}
	w.offset += n
	return nil
}

// PutUint32At writes a single word at an absolute offset.
func PutUint32At(bs []byte, offset int, value uint32) error {
	writer := NewWriter(bs)
	if offset < 0 || offset > len(bs) {
		err := errors.Wrapf(io.ErrShortBuffer, "PutUint32At error: offset %d out of %d", offset, len(bs))
		return err
	}
	writer.offset = offset
	return writer.PutUint32(value)
}
