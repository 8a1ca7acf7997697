package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"spl-tool/logging"
	"spl-tool/spl/scopy"
	"spl-tool/spl/sheader"
)

// readHeaderRegion opens path for writing and reads both header copies. Disk
// images can be large, so only the header region is read and written back.
func readHeaderRegion(path string) (*os.File, []byte, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, errors.Wrap(err, "readHeaderRegion error opening image")
	}
	region := make([]byte, scopy.RegionEnd)
	n, err := io.ReadFull(f, region)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, nil, errors.Wrap(err, "readHeaderRegion error reading image")
	}
	return f, region[:n], nil
}

func writeHeaderRegion(f *os.File, region []byte) error {
	if _, err := f.WriteAt(region, 0); err != nil {
		return errors.Wrap(err, "writeHeaderRegion error")
	}
	return f.Sync()
}

func StartFixing(cmd FixCmd, stdout io.Writer) int {
	log := logging.WithFile(cmd.File)

	f, region, err := readHeaderRegion(cmd.File)
	if err != nil {
		log.Error().Err(err).Send()
		return ExitFailure
	}
	defer f.Close()

	if err := scopy.InvalidatePrimary(region); err != nil {
		log.Error().Err(err).Msg("refusing to invalidate the primary header")
		return ExitInvalid
	}
	if err := writeHeaderRegion(f, region); err != nil {
		log.Error().Err(err).Send()
		return ExitFailure
	}

	log.Info().Msg("primary header invalidated, the boot ROM will load the backup copy")
	fmt.Fprintln(stdout, "Done fixing image header: "+cmd.File)
	return ExitOK
}

// repairFailure names why scopy.Repair gave up on an image.
func repairFailure(err error) string {
	var tooShort sheader.ErrTooShort
	if errors.As(err, &tooShort) {
		return "image is truncated before the end of the backup copy, nothing was written"
	}
	return "no valid header copy to repair from"
}

func StartRepairing(cmd RepairCmd, stdout io.Writer) int {
	log := logging.WithFile(cmd.File)

	f, region, err := readHeaderRegion(cmd.File)
	if err != nil {
		log.Error().Err(err).Send()
		return ExitFailure
	}
	defer f.Close()

	report := scopy.Status(region)
	if report.Identical {
		log.Info().Msg("both header copies are valid and identical, nothing to repair")
		fmt.Fprintln(stdout, "Nothing to repair: "+cmd.File)
		return ExitOK
	}

	source, err := scopy.Repair(region)
	if err != nil {
		log.Error().Err(err).Msg(repairFailure(err))
		return ExitInvalid
	}
	if err := writeHeaderRegion(f, region); err != nil {
		log.Error().Err(err).Send()
		return ExitFailure
	}

	log.Info().Stringer("source", source).Msg("header copies rewritten")
	fmt.Fprintf(stdout, "Done repairing from the %s copy: %s\n", source, cmd.File)
	return ExitOK
}
