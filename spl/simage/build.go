package simage

import (
	"github.com/pkg/errors"
	"spl-tool/ds"
	"spl-tool/spl/scopy"
	"spl-tool/spl/scrc"
	"spl-tool/spl/sheader"
)

// Size returns the number of bytes BuildInto needs for a payload of
// payloadLen bytes.
func Size(payloadLen int) int {
	return PayloadOffset + ds.NearestDivisibleByM(payloadLen, PayloadAlign)
}

// BuildInto assembles a complete image into dst and returns its length.
// fields.PayloadSize and fields.PayloadCRC are derived from payload; the
// caller's values for them are ignored. Bytes of dst past the returned
// length are left untouched.
func BuildInto(dst []byte, fields sheader.Fields, payload []byte) (int, error) {
	if len(payload) > MaxPayloadSize {
		return 0, ErrPayloadTooLarge{
			Size: len(payload),
			Max:  MaxPayloadSize,
		}
	}

	fields.PayloadSize = uint64(len(payload))
	fields.PayloadCRC = scrc.Checksum(payload)
	header, err := sheader.New(fields)
	if err != nil {
		return 0, errors.Wrap(err, "simage.BuildInto error")
	}

	size := Size(len(payload))
	if len(dst) < size {
		return 0, ErrBufferTooSmall{
			Need: size,
			Have: len(dst),
		}
	}
	image := dst[:size]

	if err := scopy.WriteCopies(image, header); err != nil {
		return 0, errors.Wrap(err, "simage.BuildInto error")
	}
	n := copy(image[PayloadOffset:], payload)
	padding := image[PayloadOffset+n:]
	for i := range padding {
		padding[i] = 0
	}

	return size, nil
}

// Build is BuildInto with a freshly allocated buffer.
func Build(fields sheader.Fields, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge{
			Size: len(payload),
			Max:  MaxPayloadSize,
		}
	}
	image := make([]byte, Size(len(payload)))
	n, err := BuildInto(image, fields, payload)
	if err != nil {
		return nil, err
	}
	return image[:n], nil
}
