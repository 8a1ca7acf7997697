package spl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"spl-tool/ds"
	"spl-tool/spl/scopy"
	"spl-tool/spl/sheader"
	"spl-tool/spl/simage"
)

func toHeaderReport(header sheader.Header) *HeaderReport {
	hex := func(value uint32) string {
		return fmt.Sprintf("0x%08x", value)
	}
	return &HeaderReport{
		Magic:        hex(header.Magic()),
		Version:      hex(header.Version()),
		HeaderSize:   header.HeaderSize(),
		PayloadSize:  header.PayloadSize(),
		LoadAddress:  hex(header.LoadAddress()),
		EntryAddress: hex(header.EntryAddress()),
		Checksum:     hex(header.Checksum()),
		PayloadCRC:   hex(header.PayloadCRC()),
	}
}

func toCopyReport(status scopy.CopyStatus) CopyReport {
	report := CopyReport{
		Source: status.Source.String(),
		Offset: status.Offset,
		Valid:  status.Valid(),
	}
	if status.Valid() {
		report.Header = toHeaderReport(status.Header)
	} else {
		report.Error = status.Err.Error()
	}
	return report
}

// Inspect reports on both header copies and the payload. The returned error
// is the one simage.Verify gives, and the report is filled in either way.
func Inspect(image []byte) (*Report, error) {
	status := scopy.Status(image)
	report := Report{
		Size:      len(image),
		Primary:   toCopyReport(status.Primary),
		Backup:    toCopyReport(status.Backup),
		Identical: status.Identical,
		Selected:  SelectedNone,
	}

	result, err := simage.Verify(image)
	if result.Header != (sheader.Header{}) {
		report.Selected = result.Source.String()
		report.PrimaryInvalid = result.Source.PrimaryInvalid()
		report.Header = toHeaderReport(result.Header)
	}
	if err != nil {
		report.Error = err.Error()
		return &report, err
	}
	report.PayloadValid = true

	return &report, nil
}

// ToLinkedHashMap flattens a report into the summary printed by default.
func ToLinkedHashMap(report Report) *ds.LinkedHashMap[string, any] {
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put("selected", report.Selected)
	lhm.Put("primary_invalid", report.PrimaryInvalid)
	lhm.Put("identical", report.Identical)
	if report.Header != nil {
		lhm.Put(sheader.FieldNameVersion, report.Header.Version)
		lhm.Put(sheader.FieldNamePayloadSize, report.Header.PayloadSize)
		lhm.Put(sheader.FieldNameLoadAddress, report.Header.LoadAddress)
		lhm.Put(sheader.FieldNameEntryAddress, report.Header.EntryAddress)
		lhm.Put(sheader.FieldNameChecksum, report.Header.Checksum)
		lhm.Put(sheader.FieldNamePayloadCRC, report.Header.PayloadCRC)
	}
	lhm.Put("payload_valid", report.PayloadValid)
	lo.ForEach(
		[]CopyReport{report.Primary, report.Backup},
		func(copyReport CopyReport, _ int) {
			if !copyReport.Valid {
				lhm.Put(copyReport.Source+"_error", copyReport.Error)
			}
		},
	)
	if report.Error != "" {
		lhm.Put("error", report.Error)
	}
	return lhm
}

// RenderJSON renders a report. The debug form is the whole report; the
// default form is the ToLinkedHashMap summary.
func RenderJSON(report *Report, debug bool) ([]byte, error) {
	if debug {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.MarshalIndent(ToLinkedHashMap(*report), "", "  ")
}

// InspectJSON is Inspect followed by RenderJSON. The inspection error is
// returned next to the rendered bytes.
func InspectJSON(image []byte, debug bool) ([]byte, error) {
	report, inspectErr := Inspect(image)
	bs, err := RenderJSON(report, debug)
	if err != nil {
		return nil, err
	}
	return bs, inspectErr
}

// HexDump renders bs as offset / hex / ASCII rows, numbering offsets from
// base.
func HexDump(bs []byte, base int) []string {
	rows := lo.Zip2(
		ds.MakeRange(base, base+len(bs), HexDumpWidth),
		ds.MakeChunks(bs, HexDumpWidth),
	)
	return lo.Map(
		rows,
		func(row lo.Tuple2[int, []byte], _ int) string {
			hexes := lo.Map(
				row.B,
				func(b byte, _ int) string { return fmt.Sprintf("%02x", b) },
			)
			ascii := lo.Map(
				row.B,
				func(b byte, _ int) string {
					if b < 0x20 || b > 0x7E {
						return "."
					}
					return string(rune(b))
				},
			)
			return fmt.Sprintf(
				"%08x  %-47s  |%s|",
				row.A,
				strings.Join(hexes, " "),
				strings.Join(ascii, ""),
			)
		},
	)
}
