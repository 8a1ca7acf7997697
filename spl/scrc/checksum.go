package scrc

import (
	"fmt"

	"github.com/samber/lo"
)

// Checksum algorithm constants. These are fixed by the boot ROM verifier.
const (
	// Init is the register value before the first byte.
	Init = 0xFFFFFFFF
	// Polynomial is the CRC-32 generator, shifted MSB first.
	Polynomial = 0x04C11DB7
	// Failed is the value written into a checksum field to make the boot ROM
	// reject that copy on purpose.
	Failed = 0x5A5A5A5A

	highBitMask = 0x80000000
	bitsPerByte = 8
)

type ErrRangeOutOfBounds struct {
	Length int
	Offset int
	Size   int
}

func (r ErrRangeOutOfBounds) Error() string {
	msg := fmt.Sprintf(
		`checksum range [%d, %d+%d) is out of bounds for %d bytes`,
		r.Offset, r.Offset, r.Size, r.Length,
	)
	return msg
}

// Reverse mirrors the bit order of a 32-bit word.
func Reverse(x uint32) uint32 {
	x = ((x & 0x55555555) << 1) | ((x >> 1) & 0x55555555)
	x = ((x & 0x33333333) << 2) | ((x >> 2) & 0x33333333)
	x = ((x & 0x0F0F0F0F) << 4) | ((x >> 4) & 0x0F0F0F0F)
	x = (x << 24) | ((x & 0xFF00) << 8) | ((x >> 8) & 0xFF00) | (x >> 24)
	return x
}

func updateByte(crc uint32, b byte) uint32 {
	sum := Reverse(uint32(b))
	for i := 0; i < bitsPerByte; i++ {
		if i != 0 {
			sum <<= 1
		}
		if (crc^sum)&highBitMask != 0 {
			crc = (crc << 1) ^ Polynomial
		} else {
			crc <<= 1
		}
	}
	return crc
}

// Update feeds data into a running register. Chained calls over consecutive
// slices give the same register as a single call over their concatenation.
func Update(crc uint32, data []byte) uint32 {
	return lo.Reduce(
		data,
		func(crc uint32, b byte, _ int) uint32 {
			return updateByte(crc, b)
		},
		crc,
	)
}

// Final turns a running register into the value stored on disk.
func Final(crc uint32) uint32 {
	return Reverse(crc ^ 0xFFFFFFFF)
}

func Checksum(data []byte) uint32 {
	return Final(Update(Init, data))
}

func Verify(data []byte, expected uint32) bool {
	return Checksum(data) == expected
}

func ChecksumRange(data []byte, offset int, size int) (uint32, error) {
	if offset < 0 || size < 0 || offset > len(data) || len(data)-offset < size {
		err := ErrRangeOutOfBounds{
			Length: len(data),
			Offset: offset,
			Size:   size,
		}
		return 0, err
	}
	return Checksum(data[offset : offset+size]), nil
}

func VerifyRange(data []byte, offset int, size int, expected uint32) (bool, error) {
	actual, err := ChecksumRange(data, offset, size)
	if err != nil {
		return false, err
	}
	return actual == expected, nil
}
