package cli

import (
	"strconv"

	"github.com/pkg/errors"
)

// Number is a command line integer that also accepts 0x, 0o and 0b
// prefixes, since addresses are always written in hex.
type Number uint64

func (r *Number) UnmarshalText(text []byte) error {
	value, err := strconv.ParseUint(string(text), 0, 64)
	if err != nil {
		return errors.Wrapf(err, `invalid number "%s"`, string(text))
	}
	*r = Number(value)
	return nil
}

func (r Number) MarshalText() ([]byte, error) {
	return []byte("0x" + strconv.FormatUint(uint64(r), 16)), nil
}
