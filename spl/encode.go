package spl

import (
	"github.com/pkg/errors"
	"spl-tool/spl/sheader"
	"spl-tool/spl/simage"
)

// Create builds a complete image for payload. Fields left at zero take their
// values from sheader.DefaultFields.
func Create(fields sheader.Fields, payload []byte) ([]byte, error) {
	defaults := sheader.DefaultFields()
	if fields.Version == 0 {
		fields.Version = defaults.Version
	}
	if fields.LoadAddress == 0 {
		fields.LoadAddress = defaults.LoadAddress
	}
	if fields.EntryAddress == 0 {
		fields.EntryAddress = fields.LoadAddress
	}
	image, err := simage.Build(fields, payload)
	if err != nil {
		return nil, errors.Wrap(err, "spl.Create error")
	}
	return image, nil
}
