package scopy

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spl-tool/ds"
	"spl-tool/spl/scrc"
	"spl-tool/spl/sheader"
)

func newHeader(t *testing.T, version uint64) sheader.Header {
	fields := sheader.DefaultFields()
	fields.Version = version
	fields.PayloadSize = 64
	fields.PayloadCRC = scrc.Checksum(make([]byte, 64))
	header, err := sheader.New(fields)
	require.NoError(t, err)
	return header
}

func newImage(t *testing.T, header sheader.Header) []byte {
	image := make([]byte, RegionEnd+64)
	require.NoError(t, WriteCopies(image, header))
	return image
}

func zero(image []byte, offset int) {
	copy(image[offset:offset+sheader.HeaderSize], make([]byte, sheader.HeaderSize))
}

func TestWriteCopies(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	image := newImage(t, header)
	encoded := sheader.Encode(header)

	assert.Equal(t, encoded[:], image[PrimaryOffset:PrimaryOffset+sheader.HeaderSize])
	assert.Equal(t, encoded[:], image[BackupOffset:BackupOffset+sheader.HeaderSize])
	assert.Equal(t, make([]byte, 64), image[RegionEnd:])

	err := WriteCopies(make([]byte, RegionEnd-1), header)
	var target sheader.ErrTooShort
	assert.True(t, errors.As(err, &target))
}

func TestDecodePrimaryOrBackup_Primary(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	image := newImage(t, header)

	decoded, source, err := DecodePrimaryOrBackup(image)
	require.NoError(t, err)
	assert.Equal(t, header, decoded)
	assert.Equal(t, SourcePrimary, source)
	assert.False(t, source.PrimaryInvalid())
}

func TestDecodePrimaryOrBackup_PrimaryZeroed(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	image := newImage(t, header)
	zero(image, PrimaryOffset)

	decoded, source, err := DecodePrimaryOrBackup(image)
	require.NoError(t, err)
	assert.Equal(t, header, decoded)
	assert.Equal(t, SourceBackup, source)
	assert.True(t, source.PrimaryInvalid())
}

func TestDecodePrimaryOrBackup_CopiesDiverge(t *testing.T) {
	primary := newHeader(t, 2)
	backup := newHeader(t, 3)
	image := newImage(t, backup)
	encoded := sheader.Encode(primary)
	copy(image[PrimaryOffset:], encoded[:])

	decoded, source, err := DecodePrimaryOrBackup(image)
	require.NoError(t, err)
	assert.Equal(t, primary, decoded)
	assert.Equal(t, SourcePrimary, source)

	report := Status(image)
	assert.True(t, report.Primary.Valid())
	assert.True(t, report.Backup.Valid())
	assert.False(t, report.Identical)
	assert.Equal(t, uint32(3), report.Backup.Header.Version())
}

func TestDecodePrimaryOrBackup_BothZeroed(t *testing.T) {
	image := newImage(t, newHeader(t, sheader.DefaultVersion))
	zero(image, PrimaryOffset)
	zero(image, BackupOffset)

	_, _, err := DecodePrimaryOrBackup(image)
	var target ErrCorruptImage
	require.True(t, errors.As(err, &target))
	var primaryErr, backupErr sheader.ErrBadMagic
	assert.True(t, errors.As(target.Primary, &primaryErr))
	assert.True(t, errors.As(target.Backup, &backupErr))
	assert.Contains(t, err.Error(), "primary")
}

func TestDecodePrimaryOrBackup_ShortImages(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	image := newImage(t, header)
	for _, n := range []int{0, 1, sheader.HeaderSize - 1, BackupOffset + 10, RegionEnd - 1} {
		assert.NotPanics(t, func() {
			_, _, err := DecodePrimaryOrBackup(ds.ShallowCopy(image[:n]))
			if n < sheader.HeaderSize {
				var target ErrCorruptImage
				assert.Truef(t, errors.As(err, &target), "length %d", n)
			} else {
				assert.NoErrorf(t, err, "length %d", n)
			}
		})
	}

	// primary damaged and backup cut off
	damaged := ds.ShallowCopy(image[:RegionEnd-1])
	zero(damaged, PrimaryOffset)
	_, _, err := DecodePrimaryOrBackup(damaged)
	var target ErrCorruptImage
	require.True(t, errors.As(err, &target))
	var short sheader.ErrTooShort
	assert.True(t, errors.As(target.Backup, &short))
}

func TestStatus(t *testing.T) {
	image := newImage(t, newHeader(t, sheader.DefaultVersion))
	report := Status(image)
	assert.True(t, report.Primary.Valid())
	assert.True(t, report.Backup.Valid())
	assert.True(t, report.Identical)
	assert.Equal(t, BackupOffset, report.Backup.Offset)

	image[BackupOffset+sheader.OffsetVersion] ^= 0x10
	report = Status(image)
	assert.True(t, report.Primary.Valid())
	assert.False(t, report.Backup.Valid())
	assert.False(t, report.Identical)
	var target sheader.ErrChecksumMismatch
	assert.True(t, errors.As(report.Backup.Err, &target))
}

func TestRepair(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	pristine := newImage(t, header)

	for _, damagedOffset := range []int{PrimaryOffset, BackupOffset} {
		image := ds.ShallowCopy(pristine)
		zero(image, damagedOffset)

		source, err := Repair(image)
		require.NoError(t, err)
		assert.Equal(t, damagedOffset == PrimaryOffset, source.PrimaryInvalid())
		assert.Equal(t, pristine, image)
	}

	image := ds.ShallowCopy(pristine)
	zero(image, PrimaryOffset)
	zero(image, BackupOffset)
	_, err := Repair(image)
	var target ErrCorruptImage
	assert.True(t, errors.As(err, &target))
}

func TestInvalidatePrimary(t *testing.T) {
	header := newHeader(t, sheader.DefaultVersion)
	image := newImage(t, header)

	require.NoError(t, InvalidatePrimary(image))
	_, err := DecodeCopy(image, SourcePrimary)
	var mismatch sheader.ErrChecksumMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint32(scrc.Failed), mismatch.Stored)

	decoded, source, err := DecodePrimaryOrBackup(image)
	require.NoError(t, err)
	assert.Equal(t, header, decoded)
	assert.Equal(t, SourceBackup, source)

	zero(image, BackupOffset)
	assert.Error(t, InvalidatePrimary(image))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "primary", SourcePrimary.String())
	assert.Equal(t, "backup", SourceBackup.String())
	assert.Equal(t, "source(7)", Source(7).String())
}
