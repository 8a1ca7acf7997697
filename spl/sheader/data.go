package sheader

type (
	// Header is a validated SPL header. Values only come out of New or
	// Decode, so a Header always carries a checksum matching its fields.
	Header struct {
		magic        uint32
		version      uint32
		headerSize   uint32
		payloadSize  uint32
		loadAddress  uint32
		entryAddress uint32
		checksum     uint32
		payloadCRC   uint32
	}
	// Fields are the caller-supplied values a Header is built from. They are
	// wider than the on-disk words so that overflow is reported instead of
	// silently truncated.
	Fields struct {
		Version      uint64 `json:"version"`
		PayloadSize  uint64 `json:"payload_size"`
		LoadAddress  uint64 `json:"load_address"`
		EntryAddress uint64 `json:"entry_address"`
		PayloadCRC   uint32 `json:"payload_crc"`
	}
	FieldSpec struct {
		Name   string
		Offset int
		Width  int
	}
)

const (
	// Magic reads "SPLH" in file order.
	Magic = 0x484C5053
	// HeaderSize is the size of one header copy including reserved padding.
	HeaderSize = 0x400
	// DefaultVersion is the SPL version ID the vendor tooling writes.
	DefaultVersion = 0x01010101
	// MaxPayloadSize is the largest SPL the boot ROM will copy into SRAM.
	MaxPayloadSize = 180048

	// SRAMBase and SRAMSize bound the window the SPL is loaded into.
	SRAMBase = 0x08000000
	SRAMSize = 0x00200000
	SRAMEnd  = SRAMBase + SRAMSize

	AddressAlign = 4
)

const (
	OffsetMagic        = 0
	OffsetVersion      = 4
	OffsetHeaderSize   = 8
	OffsetPayloadSize  = 12
	OffsetLoadAddress  = 16
	OffsetEntryAddress = 20
	OffsetChecksum     = 24
	OffsetPayloadCRC   = 28
	OffsetReserved     = 32
	ReservedSize       = HeaderSize - OffsetReserved

	wordSize = 4
)

const (
	FieldNameMagic        = "magic"
	FieldNameVersion      = "version"
	FieldNameHeaderSize   = "header_size"
	FieldNamePayloadSize  = "payload_size"
	FieldNameLoadAddress  = "load_address"
	FieldNameEntryAddress = "entry_address"
	FieldNameChecksum     = "checksum"
	FieldNamePayloadCRC   = "payload_crc"
	FieldNameReserved     = "reserved"
)

// Layout returns the on-disk field table in file order.
func Layout() [9]FieldSpec {
	return [...]FieldSpec{
		{FieldNameMagic, OffsetMagic, wordSize},
		{FieldNameVersion, OffsetVersion, wordSize},
		{FieldNameHeaderSize, OffsetHeaderSize, wordSize},
		{FieldNamePayloadSize, OffsetPayloadSize, wordSize},
		{FieldNameLoadAddress, OffsetLoadAddress, wordSize},
		{FieldNameEntryAddress, OffsetEntryAddress, wordSize},
		{FieldNameChecksum, OffsetChecksum, wordSize},
		{FieldNamePayloadCRC, OffsetPayloadCRC, wordSize},
		{FieldNameReserved, OffsetReserved, ReservedSize},
	}
}
