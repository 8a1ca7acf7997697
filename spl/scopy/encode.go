package scopy

import (
	"github.com/pkg/errors"
	"spl-tool/spl/lbytes"
	"spl-tool/spl/scrc"
	"spl-tool/spl/sheader"
)

// WriteCopies places the same encoded header at both copy offsets.
func WriteCopies(image []byte, header sheader.Header) error {
	if len(image) < RegionEnd {
		return sheader.ErrTooShort{
			Caller:   "scopy.WriteCopies",
			Length:   len(image),
			Expected: RegionEnd,
		}
	}
	bs := sheader.Encode(header)
	copy(image[PrimaryOffset:PrimaryOffset+sheader.HeaderSize], bs[:])
	copy(image[BackupOffset:BackupOffset+sheader.HeaderSize], bs[:])
	return nil
}

// Repair rewrites both copies from the one DecodePrimaryOrBackup selects and
// returns where it came from.
func Repair(image []byte) (Source, error) {
	header, source, err := DecodePrimaryOrBackup(image)
	if err != nil {
		return source, errors.Wrap(err, "scopy.Repair error")
	}
	if err := WriteCopies(image, header); err != nil {
		return source, errors.Wrap(err, "scopy.Repair error")
	}
	return source, nil
}

// InvalidatePrimary overwrites the primary checksum with scrc.Failed so the
// boot ROM rejects the primary copy and loads the backup. Some boot media
// expose a partition table at offset 0 instead of the primary copy; this is
// the workaround for them. The backup copy has to be valid beforehand.
func InvalidatePrimary(image []byte) error {
	if _, err := DecodeCopy(image, SourceBackup); err != nil {
		return errors.Wrap(err, "scopy.InvalidatePrimary error: backup copy is not valid")
	}
	offset := PrimaryOffset + sheader.OffsetChecksum
	if err := lbytes.PutUint32At(image, offset, scrc.Failed); err != nil {
		return errors.Wrap(err, "scopy.InvalidatePrimary error")
	}
	return nil
}
