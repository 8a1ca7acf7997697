package simage

import (
	"fmt"

	"spl-tool/spl/scopy"
	"spl-tool/spl/sheader"
)

type (
	// Result is a fully verified image: a valid header copy and the payload
	// it describes.
	Result struct {
		Header  sheader.Header
		Source  scopy.Source
		Payload []byte
	}
	ErrPayloadTooLarge struct {
		Size int
		Max  int
	}
	ErrBufferTooSmall struct {
		Need int
		Have int
	}
)

const (
	// PayloadOffset is where the SPL payload starts, right after both header
	// copies.
	PayloadOffset = scopy.RegionEnd
	// PayloadAlign is the granularity the payload region is zero-padded to.
	PayloadAlign   = 4
	MaxPayloadSize = sheader.MaxPayloadSize
)

func (r ErrPayloadTooLarge) Error() string {
	msg := fmt.Sprintf(
		`payload of %d bytes is too large; maximum allowed size is %d bytes`,
		r.Size, r.Max,
	)
	return msg
}

func (r ErrBufferTooSmall) Error() string {
	msg := fmt.Sprintf(
		`image buffer of %d bytes is too small; %d bytes needed`,
		r.Have, r.Need,
	)
	return msg
}
