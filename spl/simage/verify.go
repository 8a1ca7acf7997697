package simage

import (
	"github.com/pkg/errors"
	"spl-tool/spl/scopy"
	"spl-tool/spl/scrc"
	"spl-tool/spl/sheader"
)

// Payload returns the payload region described by header. The slice shares
// memory with image.
func Payload(image []byte, header sheader.Header) ([]byte, error) {
	end := PayloadOffset + int(header.PayloadSize())
	if len(image) < end {
		return nil, sheader.ErrTooShort{
			Caller:   "simage.Payload",
			Length:   len(image),
			Expected: end,
		}
	}
	return image[PayloadOffset:end], nil
}

// Verify runs the same checks the boot ROM does: find a valid header copy,
// then check the payload size and payload CRC against it.
func Verify(image []byte) (Result, error) {
	header, source, err := scopy.DecodePrimaryOrBackup(image)
	if err != nil {
		return Result{}, errors.Wrap(err, "simage.Verify error")
	}
	result := Result{
		Header: header,
		Source: source,
	}

	payload, err := Payload(image, header)
	if err != nil {
		return result, errors.Wrap(err, "simage.Verify error")
	}
	if !sheader.Verify(header, payload) {
		err := sheader.ErrChecksumMismatch{
			Target:   sheader.ChecksumTargetPayload,
			Stored:   header.PayloadCRC(),
			Computed: scrc.Checksum(payload),
		}
		return result, errors.Wrap(err, "simage.Verify error")
	}
	result.Payload = payload

	return result, nil
}
