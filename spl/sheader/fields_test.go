package sheader

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() Fields {
	fields := DefaultFields()
	fields.PayloadSize = 4096
	fields.PayloadCRC = 0xDEADBEEF
	return fields
}

func TestNew(t *testing.T) {
	header, err := New(validFields())
	require.NoError(t, err)

	assert.Equal(t, uint32(Magic), header.Magic())
	assert.Equal(t, uint32(DefaultVersion), header.Version())
	assert.Equal(t, uint32(HeaderSize), header.HeaderSize())
	assert.Equal(t, uint32(4096), header.PayloadSize())
	assert.Equal(t, uint32(SRAMBase), header.LoadAddress())
	assert.Equal(t, uint32(SRAMBase), header.EntryAddress())
	assert.Equal(t, uint32(0xDEADBEEF), header.PayloadCRC())
	assert.Equal(t, validFields(), header.Fields())

	bs := Encode(header)
	checksum, err := Checksum(bs[:])
	require.NoError(t, err)
	assert.Equal(t, checksum, header.Checksum())
	assert.NoError(t, Validate(header))
}

func TestNew_Boundaries(t *testing.T) {
	fields := validFields()
	fields.PayloadSize = MaxPayloadSize
	fields.EntryAddress = SRAMBase + MaxPayloadSize - AddressAlign
	_, err := New(fields)
	assert.NoError(t, err)

	fields = validFields()
	fields.PayloadSize = 1
	_, err = New(fields)
	assert.NoError(t, err)

	fields = validFields()
	fields.LoadAddress = SRAMEnd - 4096
	fields.EntryAddress = SRAMEnd - AddressAlign
	_, err = New(fields)
	assert.NoError(t, err)
}

func TestNew_InvalidField(t *testing.T) {
	tests := []struct {
		name   string
		modify func(fields *Fields)
		field  string
	}{
		{
			name:   "version overflows",
			modify: func(fields *Fields) { fields.Version = math.MaxUint32 + 1 },
			field:  FieldNameVersion,
		},
		{
			name:   "version zero",
			modify: func(fields *Fields) { fields.Version = 0 },
			field:  FieldNameVersion,
		},
		{
			name:   "payload size overflows",
			modify: func(fields *Fields) { fields.PayloadSize = 1 << 32 },
			field:  FieldNamePayloadSize,
		},
		{
			name:   "payload size zero",
			modify: func(fields *Fields) { fields.PayloadSize = 0 },
			field:  FieldNamePayloadSize,
		},
		{
			name:   "payload size above maximum",
			modify: func(fields *Fields) { fields.PayloadSize = MaxPayloadSize + 1 },
			field:  FieldNamePayloadSize,
		},
		{
			name:   "load address overflows",
			modify: func(fields *Fields) { fields.LoadAddress = 1 << 40 },
			field:  FieldNameLoadAddress,
		},
		{
			name:   "load address below SRAM",
			modify: func(fields *Fields) { fields.LoadAddress = SRAMBase - 4 },
			field:  FieldNameLoadAddress,
		},
		{
			name:   "load address past SRAM",
			modify: func(fields *Fields) { fields.LoadAddress = SRAMEnd },
			field:  FieldNameLoadAddress,
		},
		{
			name: "load address unaligned",
			modify: func(fields *Fields) {
				fields.LoadAddress = SRAMBase + 2
				fields.EntryAddress = SRAMBase + 4
			},
			field: FieldNameLoadAddress,
		},
		{
			name: "payload runs past SRAM",
			modify: func(fields *Fields) {
				fields.LoadAddress = SRAMEnd - 1024
				fields.EntryAddress = SRAMEnd - 1024
			},
			field: FieldNamePayloadSize,
		},
		{
			name:   "entry address overflows",
			modify: func(fields *Fields) { fields.EntryAddress = math.MaxUint64 },
			field:  FieldNameEntryAddress,
		},
		{
			name:   "entry address before load address",
			modify: func(fields *Fields) { fields.LoadAddress = SRAMBase + 16 },
			field:  FieldNameEntryAddress,
		},
		{
			name:   "entry address past payload",
			modify: func(fields *Fields) { fields.EntryAddress = SRAMBase + 4096 },
			field:  FieldNameEntryAddress,
		},
		{
			name:   "entry address unaligned",
			modify: func(fields *Fields) { fields.EntryAddress = SRAMBase + 6 },
			field:  FieldNameEntryAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.modify(&fields)
			header, err := New(fields)
			require.Error(t, err)
			assert.Equal(t, Header{}, header)

			var target ErrInvalidField
			require.True(t, errors.As(err, &target))
			assert.Equal(t, tt.field, target.Field)
			assert.Equal(t, "sheader.New", target.Caller)
			assert.NotEmpty(t, target.Reason)
		})
	}
}

func TestValidate(t *testing.T) {
	header, err := New(validFields())
	require.NoError(t, err)

	badSize := header
	badSize.headerSize = HeaderSize * 2
	var invalid ErrInvalidField
	require.True(t, errors.As(Validate(badSize), &invalid))
	assert.Equal(t, FieldNameHeaderSize, invalid.Field)

	badMagic := header
	badMagic.magic = 0
	var magic ErrBadMagic
	assert.True(t, errors.As(Validate(badMagic), &magic))
}

func TestHeader_String(t *testing.T) {
	header, err := New(validFields())
	require.NoError(t, err)
	assert.Contains(t, header.String(), "payload_size=4096")
	assert.Contains(t, header.String(), "load=0x08000000")
}

func TestErrors_HexRendering(t *testing.T) {
	assert.Equal(
		t,
		`invalid magic number: expected "0x484c5053", got "0x00000000"`,
		ErrBadMagic{Actual: 0}.Error(),
	)
	assert.Equal(
		t,
		`header checksum mismatch: stored "0x00000001", computed "0x0000abcd"`,
		ErrChecksumMismatch{Target: ChecksumTargetHeader, Stored: 1, Computed: 0xABCD}.Error(),
	)

	fields := validFields()
	fields.LoadAddress = 0x100
	_, err := New(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[0x08000000, 0x08200000)")
}
