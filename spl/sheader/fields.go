package sheader

import (
	"fmt"
	"math"
)

// DefaultFields returns the values the vendor tooling uses when nothing is
// specified. PayloadSize and PayloadCRC still have to be filled in.
func DefaultFields() Fields {
	return Fields{
		Version:      DefaultVersion,
		LoadAddress:  SRAMBase,
		EntryAddress: SRAMBase,
	}
}

// New validates fields and returns the corresponding Header with magic,
// header size and checksum filled in.
func New(fields Fields) (Header, error) {
	if err := validateFields("sheader.New", fields); err != nil {
		return Header{}, err
	}
	header := Header{
		magic:        Magic,
		version:      uint32(fields.Version),
		headerSize:   HeaderSize,
		payloadSize:  uint32(fields.PayloadSize),
		loadAddress:  uint32(fields.LoadAddress),
		entryAddress: uint32(fields.EntryAddress),
		payloadCRC:   fields.PayloadCRC,
	}
	bs := Encode(header)
	// the checksum field is outside the covered range, so encoding with a
	// zero checksum first gives the final value
	checksum, err := Checksum(bs[:])
	if err != nil {
		return Header{}, err
	}
	header.checksum = checksum
	return header, nil
}

// Validate re-checks every field invariant of a header, which matters for
// headers that came off disk.
func Validate(header Header) error {
	caller := "sheader.Validate"
	if header.magic != Magic {
		return ErrBadMagic{Actual: header.magic}
	}
	if header.headerSize != HeaderSize {
		return ErrInvalidField{
			Caller: caller,
			Field:  FieldNameHeaderSize,
			Value:  uint64(header.headerSize),
			Reason: fmt.Sprintf("must be %#x", HeaderSize),
		}
	}
	return validateFields(caller, header.Fields())
}

func validateFields(caller string, fields Fields) error {
	invalid := func(field string, value uint64, reason string) error {
		return ErrInvalidField{
			Caller: caller,
			Field:  field,
			Value:  value,
			Reason: reason,
		}
	}

	words := []struct {
		name  string
		value uint64
	}{
		{FieldNameVersion, fields.Version},
		{FieldNamePayloadSize, fields.PayloadSize},
		{FieldNameLoadAddress, fields.LoadAddress},
		{FieldNameEntryAddress, fields.EntryAddress},
	}
	for _, word := range words {
		if word.value > math.MaxUint32 {
			return invalid(word.name, word.value, "overflows 32 bits")
		}
	}

	if fields.Version == 0 {
		return invalid(FieldNameVersion, fields.Version, "must not be zero")
	}

	if fields.PayloadSize == 0 {
		return invalid(FieldNamePayloadSize, fields.PayloadSize, "must not be zero")
	}
	if fields.PayloadSize > MaxPayloadSize {
		return invalid(
			FieldNamePayloadSize, fields.PayloadSize,
			fmt.Sprintf("exceeds maximum of %d bytes", MaxPayloadSize),
		)
	}

	load := fields.LoadAddress
	if load < SRAMBase || load >= SRAMEnd {
		return invalid(
			FieldNameLoadAddress, load,
			fmt.Sprintf("outside SRAM [0x%08x, 0x%08x)", SRAMBase, SRAMEnd),
		)
	}
	if load%AddressAlign != 0 {
		return invalid(FieldNameLoadAddress, load, "not word aligned")
	}
	loadEnd := load + fields.PayloadSize
	if loadEnd > SRAMEnd {
		return invalid(
			FieldNamePayloadSize, fields.PayloadSize,
			fmt.Sprintf("payload loaded at 0x%08x runs past SRAM end 0x%08x", load, SRAMEnd),
		)
	}

	entry := fields.EntryAddress
	if entry < load || entry >= loadEnd {
		return invalid(
			FieldNameEntryAddress, entry,
			fmt.Sprintf("outside loaded payload [0x%08x, 0x%08x)", load, loadEnd),
		)
	}
	if entry%AddressAlign != 0 {
		return invalid(FieldNameEntryAddress, entry, "not word aligned")
	}

	return nil
}

func (r Header) Magic() uint32        { return r.magic }
func (r Header) Version() uint32      { return r.version }
func (r Header) HeaderSize() uint32   { return r.headerSize }
func (r Header) PayloadSize() uint32  { return r.payloadSize }
func (r Header) LoadAddress() uint32  { return r.loadAddress }
func (r Header) EntryAddress() uint32 { return r.entryAddress }
func (r Header) Checksum() uint32     { return r.checksum }
func (r Header) PayloadCRC() uint32   { return r.payloadCRC }

// Fields returns the caller-facing values of the header, suitable for
// building a new header with some of them changed.
func (r Header) Fields() Fields {
	return Fields{
		Version:      uint64(r.version),
		PayloadSize:  uint64(r.payloadSize),
		LoadAddress:  uint64(r.loadAddress),
		EntryAddress: uint64(r.entryAddress),
		PayloadCRC:   r.payloadCRC,
	}
}

func (r Header) String() string {
	return fmt.Sprintf(
		"version=0x%08x payload_size=%d load=0x%08x entry=0x%08x checksum=0x%08x payload_crc=0x%08x",
		r.version, r.payloadSize, r.loadAddress, r.entryAddress, r.checksum, r.payloadCRC,
	)
}
