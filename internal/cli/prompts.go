package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mydehq/annictl/internal/annict"
	"github.com/mydehq/annictl/internal/ui"
)

// errCancelled marks a prompt the user backed out of; callers treat it as a
// clean cancel, not a failure.
var errCancelled = errors.New("cancelled")

// handleAbort maps huh's abort sentinel to errCancelled.
func handleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errCancelled
	}
	return err
}

// selectWork shows a picker over the search candidates.
func selectWork(works []annict.Work) (annict.Work, error) {
	options := make([]huh.Option[int], 0, len(works))
	for i, w := range works {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (ID %d)", w.Title, w.ID), i))
	}

	var picked int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a work").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(ui.Theme()).Run()
	if err != nil {
		return annict.Work{}, handleAbort(err)
	}
	return works[picked], nil
}

// promptDir asks for the directory holding the files to rename.
func promptDir() (string, error) {
	var dir string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target directory").
				Description("\nFolder containing the video files to rename\n").
				Value(&dir).
				Validate(validateDir),
		),
	).WithTheme(ui.Theme()).Run()
	if err != nil {
		return "", handleAbort(err)
	}
	return strings.TrimSpace(dir), nil
}

// promptOffset asks which file the plan should start at (1-based).
func promptOffset(fileCount int) (int, error) {
	offsetStr := "1"
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start at file").
				Description(fmt.Sprintf("\n1-based index into the sorted list (1-%d)\n", fileCount)).
				Value(&offsetStr).
				Validate(validateInt),
		),
	).WithTheme(ui.Theme()).Run()
	if err != nil {
		return 0, handleAbort(err)
	}

	offsetStr = strings.TrimSpace(offsetStr)
	if offsetStr == "" {
		return 1, nil
	}
	offset, _ := strconv.Atoi(offsetStr)
	return offset, nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(title, description string) (bool, error) {
	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed),
		),
	).WithTheme(ui.Theme()).Run()
	if err != nil {
		return false, handleAbort(err)
	}
	return confirmed, nil
}

func validateInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateDir(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("required")
	}
	info, err := os.Stat(s)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}
