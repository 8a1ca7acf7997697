package ui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"spl-tool/logging"
	"spl-tool/spl"
	"spl-tool/spl/scopy"
	"spl-tool/spl/sheader"
)

type FileName string

// FileSelector lists the regular files of a directory and inspects the one
// under the cursor on enter.
type FileSelector struct {
	dir     string
	files   []FileName
	cursor  int
	report  *spl.Report
	dump    []string
	readErr error
	inspErr error
}

func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadDirectory error")
	}
	regular := lo.Filter(
		entries,
		func(entry fs.DirEntry, _ int) bool {
			return entry.Type().IsRegular()
		},
	)
	return lo.Map(
		regular,
		func(entry fs.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	), nil
}

func CreateFileSelector(dir string) (FileSelector, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return FileSelector{}, errors.Wrap(err, "CreateFileSelector error")
	}
	return FileSelector{
		dir:   dir,
		files: files,
	}, nil
}

func (s FileSelector) Selected() (FileName, bool) {
	if len(s.files) == 0 {
		return "", false
	}
	return s.files[s.cursor], true
}

func (s FileSelector) inspect() FileSelector {
	s.report, s.dump, s.readErr, s.inspErr = nil, nil, nil, nil
	name, ok := s.Selected()
	if !ok {
		return s
	}
	path := filepath.Join(s.dir, string(name))
	image, err := os.ReadFile(path)
	if err != nil {
		s.readErr = err
		log := logging.WithFile(path)
		log.Debug().Err(err).Msg("error reading image")
		return s
	}
	s.report, s.inspErr = spl.Inspect(image)
	end := lo.Min([]int{len(image), scopy.PrimaryOffset + sheader.OffsetReserved})
	s.dump = spl.HexDump(image[:end], scopy.PrimaryOffset)
	return s
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		return s.inspect(), nil
	}
	return s, nil
}

func viewCopy(copyReport spl.CopyReport) string {
	if !copyReport.Valid {
		return fmt.Sprintf("%-8s INVALID: %s\n", copyReport.Source, copyReport.Error)
	}
	header := copyReport.Header
	return fmt.Sprintf(
		"%-8s ok  version %s  size %d  load %s  entry %s\n",
		copyReport.Source,
		header.Version,
		header.PayloadSize,
		header.LoadAddress,
		header.EntryAddress,
	)
}

func (s FileSelector) viewReport() string {
	switch {
	case s.readErr != nil:
		return "Error reading file: " + s.readErr.Error() + "\n"
	case s.report == nil:
		return "Press enter to inspect the selected file\n"
	}
	output := viewCopy(s.report.Primary) + viewCopy(s.report.Backup)
	switch {
	case s.inspErr != nil:
		output += "Image is invalid: " + s.inspErr.Error() + "\n"
	case s.report.PrimaryInvalid:
		output += "Boot ROM will use the backup header\n"
	default:
		output += "Image is valid\n"
	}
	return output + "\n" + strings.Join(s.dump, "\n") + "\n"
}

func (s FileSelector) View() string {
	output := "SPL TOOL\n\n"
	output += "Directory: " + s.dir + "\n\n"
	if len(s.files) == 0 {
		output += "No files found\n"
	}
	lo.ForEach(
		s.files,
		func(name FileName, index int) {
			cursor := " "
			if index == s.cursor {
				cursor = ">"
			}
			output += fmt.Sprintf("%s %s\n", cursor, name)
		},
	)
	output += "\n" + s.viewReport()
	output += "\nup/down: move  enter: inspect  q: quit\n"
	return output
}
