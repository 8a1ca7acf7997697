package lbytes

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUint32(t *testing.T) {
	reader := NewReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	result1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), result1)

	result2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), result2)

	_, err = reader.ReadUint32()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, 8, reader.Offset())
}

func TestReader_ReadUint32_Short(t *testing.T) {
	for n := 0; n < WordSize; n++ {
		reader := NewReader(make([]byte, n))
		_, err := reader.ReadUint32()
		assert.Error(t, err)
		assert.Equal(t, 0, reader.Offset())
	}
}

func TestReader_Skip(t *testing.T) {
	reader := NewReader(make([]byte, 10))
	require.NoError(t, reader.Skip(6))
	assert.Equal(t, 4, reader.Len())
	assert.Error(t, reader.Skip(5))
	assert.Error(t, reader.Skip(-1))
	assert.Equal(t, 6, reader.Offset())
}

func TestUint32At(t *testing.T) {
	bs := []byte{0, 0, 0, 0, 0x78, 0x56, 0x34, 0x12}
	value, err := Uint32At(bs, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), value)

	_, err = Uint32At(bs, 5)
	assert.Error(t, err)
	_, err = Uint32At(bs, 100)
	assert.Error(t, err)
}

func TestWriter(t *testing.T) {
	bs := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	writer := NewWriter(bs)

	require.NoError(t, writer.PutUint32(0x0A0B0C0D))
	require.NoError(t, writer.Zero(3))
	assert.Equal(t, []byte{0x0D, 0x0C, 0x0B, 0x0A, 0, 0, 0, 0xFF, 0xFF}, bs)

	err := writer.PutUint32(1)
	assert.True(t, errors.Is(err, io.ErrShortBuffer))
	assert.Error(t, writer.Zero(3))
	assert.Equal(t, 7, writer.Offset())
}

func TestPutUint32At(t *testing.T) {
	bs := make([]byte, 8)
	require.NoError(t, PutUint32At(bs, 4, 0x01020304))
	assert.Equal(t, []byte{0, 0, 0, 0, 4, 3, 2, 1}, bs)
	assert.Error(t, PutUint32At(bs, 6, 1))
	assert.Error(t, PutUint32At(bs, -1, 1))
}
