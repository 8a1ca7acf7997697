package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(dir string) error {
	fileSelector, err := CreateFileSelector(dir)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(fileSelector).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
