package scopy

import (
	"fmt"
)

type ErrCorruptImage struct {
	Primary error
	Backup  error
}

func (r ErrCorruptImage) Error() string {
	msg := fmt.Sprintf(
		`no valid header copy: primary: %v; backup: %v`,
		r.Primary, r.Backup,
	)
	return msg
}
