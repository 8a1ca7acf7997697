package scopy

import (
	"fmt"

	"spl-tool/spl/sheader"
)

type (
	// Source tells which header copy a decoded header came from.
	Source int
	// CopyStatus is the outcome of decoding one header copy.
	CopyStatus struct {
		Source Source
		Offset int
		Header sheader.Header
		Err    error
	}
	// Report holds the outcome of both copies. Unlike DecodePrimaryOrBackup it
	// always decodes both.
	Report struct {
		Primary   CopyStatus
		Backup    CopyStatus
		Identical bool
	}
)

const (
	SourcePrimary Source = iota
	SourceBackup
)

const (
	PrimaryOffset = 0
	BackupOffset  = sheader.HeaderSize
	// RegionEnd is the first byte after both header copies.
	RegionEnd = BackupOffset + sheader.HeaderSize
)

func (r Source) String() string {
	switch r {
	case SourcePrimary:
		return "primary"
	case SourceBackup:
		return "backup"
	default:
		return fmt.Sprintf("source(%d)", int(r))
	}
}

// PrimaryInvalid is true when the header had to be recovered from the backup
// copy. Callers should surface this as a warning.
func (r Source) PrimaryInvalid() bool {
	return r == SourceBackup
}

func (r Source) Offset() int {
	if r == SourceBackup {
		return BackupOffset
	}
	return PrimaryOffset
}

func (r CopyStatus) Valid() bool {
	return r.Err == nil
}
