package sheader

import (
	"fmt"
)

type (
	ErrInvalidField struct {
		Caller string
		Field  string
		Value  uint64
		Reason string
	}
	ErrTooShort struct {
		Caller   string
		Length   int
		Expected int
	}
	ErrBadMagic struct {
		Actual uint32
	}
	// ErrChecksumMismatch reports a stored checksum that disagrees with the
	// recomputed one. Target is either "header" or "payload".
	ErrChecksumMismatch struct {
		Target   string
		Stored   uint32
		Computed uint32
	}
)

const (
	ChecksumTargetHeader  = "header"
	ChecksumTargetPayload = "payload"
)

func (r ErrInvalidField) Error() string {
	msg := fmt.Sprintf(
		`%s: invalid field "%s" = %#x: %s`,
		r.Caller, r.Field, r.Value, r.Reason,
	)
	return msg
}

func (r ErrTooShort) Error() string {
	msg := fmt.Sprintf(
		`%s: got %d bytes; expected at least %d`,
		r.Caller, r.Length, r.Expected,
	)
	return msg
}

func (r ErrBadMagic) Error() string {
	msg := fmt.Sprintf(
		`invalid magic number: expected "0x%08x", got "0x%08x"`,
		Magic, r.Actual,
	)
	return msg
}

func (r ErrChecksumMismatch) Error() string {
	msg := fmt.Sprintf(
		`%s checksum mismatch: stored "0x%08x", computed "0x%08x"`,
		r.Target, r.Stored, r.Computed,
	)
	return msg
}
