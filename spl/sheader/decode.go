package sheader

import (
	"github.com/pkg/errors"
	"spl-tool/spl/lbytes"
	"spl-tool/spl/scrc"
)

// Checksum computes the header checksum over one encoded copy. The magic
// and the checksum field itself are not covered.
func Checksum(bs []byte) (uint32, error) {
	if len(bs) < HeaderSize {
		return 0, ErrTooShort{
			Caller:   "sheader.Checksum",
			Length:   len(bs),
			Expected: HeaderSize,
		}
	}
	crc := scrc.Update(scrc.Init, bs[OffsetVersion:OffsetChecksum])
	crc = scrc.Update(crc, bs[OffsetPayloadCRC:HeaderSize])
	return scrc.Final(crc), nil
}

// Decode parses one header copy from the start of bs. Extra bytes after the
// first HeaderSize are ignored. Any input, including random data, results in
// either a valid Header or one of ErrTooShort, ErrBadMagic,
// ErrChecksumMismatch and ErrInvalidField. Reserved bytes have to be zero so
// that every decoded Header encodes back to the same bytes.
func Decode(bs []byte) (Header, error) {
	if len(bs) < HeaderSize {
		return Header{}, ErrTooShort{
			Caller:   "sheader.Decode",
			Length:   len(bs),
			Expected: HeaderSize,
		}
	}

	reader := lbytes.NewReader(bs[:HeaderSize])
	var words [OffsetReserved / wordSize]uint32
	for i := range words {
		word, err := reader.ReadUint32()
		if err != nil {
			err := errors.Wrapf(err, `sheader.Decode error reading key "%s"`, Layout()[i].Name)
			return Header{}, err
		}
		words[i] = word
	}
	header := Header{
		magic:        words[0],
		version:      words[1],
		headerSize:   words[2],
		payloadSize:  words[3],
		loadAddress:  words[4],
		entryAddress: words[5],
		checksum:     words[6],
		payloadCRC:   words[7],
	}

	if header.magic != Magic {
		return Header{}, ErrBadMagic{Actual: header.magic}
	}
	computed, err := Checksum(bs)
	if err != nil {
		return Header{}, err
	}
	if computed != header.checksum {
		return Header{}, ErrChecksumMismatch{
			Target:   ChecksumTargetHeader,
			Stored:   header.checksum,
			Computed: computed,
		}
	}
	for i, b := range bs[OffsetReserved:HeaderSize] {
		if b != 0 {
			return Header{}, ErrInvalidField{
				Caller: "sheader.Decode",
				Field:  FieldNameReserved,
				Value:  uint64(OffsetReserved + i),
				Reason: "reserved byte at this offset is not zero",
			}
		}
	}
	if err := Validate(header); err != nil {
		return Header{}, err
	}

	return header, nil
}

// Verify reports whether payload is the one described by header: same
// length and same CRC.
func Verify(header Header, payload []byte) bool {
	if uint64(len(payload)) != uint64(header.payloadSize) {
		return false
	}
	return scrc.Verify(payload, header.payloadCRC)
}
