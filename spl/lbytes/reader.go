package lbytes

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewReader(bs []byte) Reader {
	return Reader{bs: bs}
}

func (r *Reader) Offset() int {
	return r.offset
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.bs) - r.offset
}

func (r *Reader) ReadUint32() (uint32, error) {
	if r.Len() < WordSize {
		err := errors.Wrapf(
			io.ErrUnexpectedEOF,
			"Reader.ReadUint32 error at offset %d: %d bytes left",
			r.offset, r.Len(),
		)
		return 0, err
	}
	value := binary.LittleEndian.Uint32(r.bs[r.offset : r.offset+WordSize])
	r.offset += WordSize
	return value, nil
}

func (r *Reader) Skip(n int) error {
	if n < 0 || r.Len() < n {
		err := errors.Wrapf(
			io.ErrUnexpectedEOF,
			"Reader.Skip error at offset %d: want %d bytes, %d left",
			r.offset, n, r.Len(),
		)
		return err
	}
	r.offset += n
	return nil
}

// Uint32At reads a single word at an absolute offset without moving a cursor.
func Uint32At(bs []byte, offset int) (uint32, error) {
	reader := NewReader(bs)
	if err := reader.Skip(offset); err != nil {
		return 0, err
	}
	return reader.ReadUint32()
}
