package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"spl-tool/logging"
	"spl-tool/spl"
	"spl-tool/spl/sheader"
	"spl-tool/spl/simage"
)

func (r CreateCmd) Fields() sheader.Fields {
	return sheader.Fields{
		Version:      uint64(r.SPLVersion),
		LoadAddress:  uint64(r.Load),
		EntryAddress: uint64(r.Entry),
	}
}

func (r CreateCmd) OutPath() string {
	if r.Out != "" {
		return r.Out
	}
	return r.File + ".normal.out"
}

func StartCreating(cmd CreateCmd, stdout io.Writer) int {
	log := logging.WithFile(cmd.File)
	outPath := cmd.OutPath()

	info, err := os.Stat(cmd.File)
	if err != nil {
		log.Error().Err(err).Msg("error opening SPL file")
		return ExitFailure
	}
	if info.Size() > simage.MaxPayloadSize {
		log.Error().
			Int64("size", info.Size()).
			Int("max", simage.MaxPayloadSize).
			Msg("SPL file too large, rebuild the SPL with -Os")
		return ExitInvalid
	}
	if CheckExistence(outPath) && !cmd.Force {
		log.Error().
			Str("out", outPath).
			Msg("output image exists, run the command again with --force to overwrite it")
		return ExitFailure
	}

	payload, err := os.ReadFile(cmd.File)
	if err != nil {
		log.Error().Err(err).Msg("error reading SPL file")
		return ExitFailure
	}

	image, err := spl.Create(cmd.Fields(), payload)
	var tooLarge simage.ErrPayloadTooLarge
	var invalid sheader.ErrInvalidField
	switch {
	case errors.As(err, &tooLarge):
		log.Error().Err(err).Msg("SPL file too large, rebuild the SPL with -Os")
		return ExitInvalid
	case errors.As(err, &invalid):
		log.Error().Err(err).Str("field", invalid.Field).Msg("invalid header field")
		return ExitInvalid
	case err != nil:
		log.Error().Err(err).Msg("error creating image")
		return ExitFailure
	}

	if err := os.WriteFile(outPath, image, 0644); err != nil {
		log.Error().Err(err).Str("out", outPath).Msg("error writing image")
		return ExitFailure
	}

	log.Info().
		Int("payload_size", len(payload)).
		Int("image_size", len(image)).
		Str("out", outPath).
		Msg("image written")
	fmt.Fprintln(stdout, "Done creating. Please check your image at: "+outPath)
	return ExitOK
}
