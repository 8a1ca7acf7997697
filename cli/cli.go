package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"spl-tool/ds"
	"spl-tool/logging"
	"spl-tool/ui"
)

type (
	Args struct {
		Create      *CreateCmd      `arg:"subcommand:create" help:"prepend primary and backup headers to an SPL binary"`
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"decode and verify the headers of an image"`
		Fix         *FixCmd         `arg:"subcommand:fix" help:"invalidate the primary header so the boot ROM uses the backup"`
		Repair      *RepairCmd      `arg:"subcommand:repair" help:"rewrite a damaged header copy from the valid one"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse and inspect images in a terminal UI"`
		Verbose     bool            `arg:"-v,--verbose,env:SPL_VERBOSE" help:"log debug messages"`
		JSONLogs    bool            `arg:"--json-logs,env:SPL_JSON_LOGS" help:"log JSON lines instead of console output"`
	}
	CreateCmd struct {
		File       string `arg:"-f,--file" default:"u-boot-spl.bin" help:"path to the SPL binary" placeholder:"SPL"`
		Out        string `arg:"-o,--out" help:"path to the output image [default: <SPL>.normal.out]" placeholder:"IMAGE"`
		SPLVersion Number `arg:"--spl-version,env:SPL_VERSION" help:"SPL version ID [default: 0x01010101]" placeholder:"ID"`
		Load       Number `arg:"--load,env:SPL_LOAD_ADDR" help:"load address [default: 0x08000000]" placeholder:"ADDR"`
		Entry      Number `arg:"--entry,env:SPL_ENTRY_ADDR" help:"entry address [default: load address]" placeholder:"ADDR"`
		Force      bool   `help:"overwrite the output image"`
	}
	InspectCmd struct {
		File  string `arg:"positional,required" help:"path to the image" placeholder:"IMAGE"`
		JSON  bool   `arg:"--json" help:"print the summary as JSON"`
		Debug bool   `help:"print the full report as JSON"`
		Dump  bool   `help:"hex dump both header copies"`
	}
	FixCmd struct {
		File string `arg:"positional,required" help:"path to the image, modified in place" placeholder:"IMAGE"`
	}
	RepairCmd struct {
		File string `arg:"positional,required" help:"path to the image, modified in place" placeholder:"IMAGE"`
	}
	InteractiveCmd struct {
		Dir string `arg:"positional" help:"directory to browse [default: current directory]" placeholder:"DIR"`
	}
)

const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitInvalid   = 2
	ExitRecovered = 3
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Create and verify the SPL header the boot ROM reads before loading U-Boot SPL.\n",
			"Images carry a primary and a backup header copy followed by the SPL payload.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// Run parses argv (without the program name) and executes the chosen
// subcommand, returning the process exit code.
func Run(argv []string, stdout io.Writer) int {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "spl-tool"}, &args)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return ExitFailure
	}
	err = parser.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return ExitOK
	case err != nil:
		parser.WriteUsage(stdout)
		fmt.Fprintln(stdout, "error:", err)
		return ExitFailure
	}

	logging.Init(args.Verbose, !args.JSONLogs)
	logging.L().Debug().Str("args", ds.DumpJSON(args, false)).Msg("parsed arguments")

	switch {
	case args.Create != nil:
		return StartCreating(*args.Create, stdout)
	case args.Inspect != nil:
		return StartInspecting(*args.Inspect, stdout)
	case args.Fix != nil:
		return StartFixing(*args.Fix, stdout)
	case args.Repair != nil:
		return StartRepairing(*args.Repair, stdout)
	case args.Interactive != nil:
		dir := args.Interactive.Dir
		if dir == "" {
			dir = "."
		}
		if err := ui.Start(dir); err != nil {
			logging.L().Error().Err(err).Msg("interactive mode failed")
			return ExitFailure
		}
		return ExitOK
	case parser.Subcommand() == nil:
		parser.WriteHelp(stdout)
		return ExitFailure
	}

	err = ds.ErrUnreachableCode{Caller: "cli.Run", Detail: "unhandled subcommand"}
	logging.L().Error().Err(err).Send()
	return ExitFailure
}

func Start() {
	os.Exit(Run(os.Args[1:], os.Stdout))
}
