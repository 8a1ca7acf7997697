package scopy

import (
	"bytes"

	"spl-tool/spl/sheader"
)

// DecodeCopy decodes the header copy at the offset of source.
func DecodeCopy(image []byte, source Source) (sheader.Header, error) {
	offset := source.Offset()
	if len(image) < offset {
		return sheader.Header{}, sheader.ErrTooShort{
			Caller:   "scopy.DecodeCopy " + source.String(),
			Length:   len(image),
			Expected: offset + sheader.HeaderSize,
		}
	}
	return sheader.Decode(image[offset:])
}

// DecodePrimaryOrBackup returns the primary header if it is valid, else the
// backup header, else ErrCorruptImage carrying both failures. The copies are
// not required to agree.
func DecodePrimaryOrBackup(image []byte) (sheader.Header, Source, error) {
	primary, primaryErr := DecodeCopy(image, SourcePrimary)
	if primaryErr == nil {
		return primary, SourcePrimary, nil
	}

	backup, backupErr := DecodeCopy(image, SourceBackup)
	if backupErr == nil {
		return backup, SourceBackup, nil
	}

	return sheader.Header{}, SourcePrimary, ErrCorruptImage{
		Primary: primaryErr,
		Backup:  backupErr,
	}
}

// Status decodes both copies independently.
func Status(image []byte) Report {
	decode := func(source Source) CopyStatus {
		header, err := DecodeCopy(image, source)
		return CopyStatus{
			Source: source,
			Offset: source.Offset(),
			Header: header,
			Err:    err,
		}
	}
	report := Report{
		Primary: decode(SourcePrimary),
		Backup:  decode(SourceBackup),
	}
	if report.Primary.Valid() && report.Backup.Valid() {
		report.Identical = bytes.Equal(
			image[PrimaryOffset:PrimaryOffset+sheader.HeaderSize],
			image[BackupOffset:BackupOffset+sheader.HeaderSize],
		)
	}
	return report
}
