package sheader

import (
	"github.com/pkg/errors"
	"spl-tool/spl/lbytes"
)

// Encode returns the on-disk form of one header copy.
func Encode(header Header) [HeaderSize]byte {
	var bs [HeaderSize]byte
	// cannot fail: the array is exactly HeaderSize long
	_ = EncodeTo(bs[:], header)
	return bs
}

// EncodeTo writes one header copy into the first HeaderSize bytes of dst.
// Reserved bytes are zeroed.
func EncodeTo(dst []byte, header Header) error {
	if len(dst) < HeaderSize {
		return ErrTooShort{
			Caller:   "sheader.EncodeTo",
			Length:   len(dst),
			Expected: HeaderSize,
		}
	}
	writer := lbytes.NewWriter(dst[:HeaderSize])
	words := [...]uint32{
		header.magic,
		header.version,
		header.headerSize,
		header.payloadSize,
		header.loadAddress,
		header.entryAddress,
		header.checksum,
		header.payloadCRC,
	}
	for _, word := range words {
		if err := writer.PutUint32(word); err != nil {
			return errors.Wrap(err, "sheader.EncodeTo error")
		}
	}
	if err := writer.Zero(ReservedSize); err != nil {
		return errors.Wrap(err, "sheader.EncodeTo error: reserved")
	}
	return nil
}
