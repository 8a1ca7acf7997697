package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"spl-tool/logging"
	"spl-tool/spl"
	"spl-tool/spl/scopy"
	"spl-tool/spl/sheader"
)

// exitCodeFor maps an inspection outcome to the process exit code.
func exitCodeFor(report *spl.Report, err error) int {
	switch {
	case err != nil:
		return ExitInvalid
	case report.PrimaryInvalid:
		return ExitRecovered
	default:
		return ExitOK
	}
}

func writeCopyReport(w io.Writer, copyReport spl.CopyReport) {
	if !copyReport.Valid {
		fmt.Fprintf(w, "%-8s @0x%04x  INVALID: %s\n", copyReport.Source, copyReport.Offset, copyReport.Error)
		return
	}
	header := copyReport.Header
	fmt.Fprintf(w, "%-8s @0x%04x  ok\n", copyReport.Source, copyReport.Offset)
	fmt.Fprintf(w, "  version        %s\n", header.Version)
	fmt.Fprintf(w, "  payload size   %d\n", header.PayloadSize)
	fmt.Fprintf(w, "  load address   %s\n", header.LoadAddress)
	fmt.Fprintf(w, "  entry address  %s\n", header.EntryAddress)
	fmt.Fprintf(w, "  checksum       %s\n", header.Checksum)
	fmt.Fprintf(w, "  payload crc    %s\n", header.PayloadCRC)
}

func writeDump(w io.Writer, image []byte) {
	for _, source := range []scopy.Source{scopy.SourcePrimary, scopy.SourceBackup} {
		offset := source.Offset()
		if len(image) <= offset {
			continue
		}
		end := offset + sheader.OffsetReserved
		if end > len(image) {
			end = len(image)
		}
		fmt.Fprintf(w, "%s:\n", source)
		for _, line := range spl.HexDump(image[offset:end], offset) {
			fmt.Fprintln(w, line)
		}
	}
}

func StartInspecting(cmd InspectCmd, stdout io.Writer) int {
	log := logging.WithFile(cmd.File)

	image, err := os.ReadFile(cmd.File)
	if err != nil {
		log.Error().Err(err).Msg("error reading image")
		return ExitFailure
	}

	report, err := spl.Inspect(image)
	if cmd.JSON || cmd.Debug {
		bs, renderErr := spl.RenderJSON(report, cmd.Debug)
		if renderErr != nil {
			log.Error().Err(renderErr).Msg("error rendering report")
			return ExitFailure
		}
		fmt.Fprintln(stdout, string(bs))
		return exitCodeFor(report, err)
	}

	writeCopyReport(stdout, report.Primary)
	writeCopyReport(stdout, report.Backup)
	if cmd.Dump {
		writeDump(stdout, image)
	}

	var corrupt scopy.ErrCorruptImage
	var mismatch sheader.ErrChecksumMismatch
	switch {
	case errors.As(err, &corrupt):
		log.Error().Msg("no valid header copy, the boot ROM will not load this image")
	case errors.As(err, &mismatch):
		log.Error().Err(err).Str("selected", report.Selected).Msg("payload does not match its header")
	case err != nil:
		log.Error().Err(err).Msg("image is invalid")
	case report.PrimaryInvalid:
		log.Warn().Msg("primary header is invalid, the boot ROM will fall back to the backup copy")
	case !report.Identical:
		log.Warn().Msg("header copies differ")
	default:
		log.Info().Msg("image is valid")
	}
	return exitCodeFor(report, err)
}
