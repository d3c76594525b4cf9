package cli

import (
	"errors"
	"fmt"

	"github.com/mydehq/annictl/internal/config"
	"github.com/mydehq/annictl/internal/episode"
	"github.com/mydehq/annictl/internal/planner"
	"github.com/mydehq/annictl/internal/renamer"
)

// renameOptions carries the non-interactive knobs of the rename flow.
type renameOptions struct {
	Offset    int
	HasOffset bool
	AssumeYes bool
	DryRun    bool
}

// runRenameFlow scans dir, builds the plan against records, and executes it
// after the user confirms. Validation failures abort the flow with a message
// but never bubble up as command errors.
func runRenameFlow(cfg *config.Config, records []episode.Record, dir string, opts renameOptions) error {
	files, err := planner.Scan(dir, cfg.Formats)
	if err != nil {
		var nmf planner.NoMatchingFilesError
		if errors.As(err, &nmf) {
			logger.Error(nmf.Error())
			return nil
		}
		return err
	}
	printFiles(files)

	if !opts.AssumeYes && !interactive() {
		logger.Error("stdout is not a terminal; re-run with --yes to confirm non-interactively")
		return nil
	}

	offset := 1
	if opts.HasOffset {
		offset = opts.Offset
	} else if !opts.AssumeYes {
		offset, err = promptOffset(len(files))
		if err != nil {
			return cancelOrErr(err)
		}
	}

	plan, err := planner.Build(files, records, offset)
	if err != nil {
		var ioe planner.InvalidOffsetError
		if errors.As(err, &ioe) {
			logger.Error(ioe.Error())
			return nil
		}
		return err
	}

	if len(plan.Unplanned) > 0 {
		logger.Warn("More files than fetched episodes; the excess stays unrenamed",
			"files", len(plan.Entries)+len(plan.Unplanned),
			"episodes", len(records),
		)
		if !opts.AssumeYes {
			ok, err := confirm("Continue anyway?",
				fmt.Sprintf("%d file(s) will be left without a new name.", len(plan.Unplanned)))
			if err != nil {
				return cancelOrErr(err)
			}
			if !ok {
				logger.Info("Rename cancelled")
				return nil
			}
		}
	}

	printPlan(plan)

	if opts.DryRun {
		logger.Info("Dry run, nothing renamed")
		return nil
	}

	if !opts.AssumeYes {
		ok, err := confirm("Apply this rename plan?", "")
		if err != nil {
			return cancelOrErr(err)
		}
		if !ok {
			logger.Info("Rename cancelled")
			return nil
		}
	}

	reportResults(renamer.Execute(dir, plan.Entries))
	return nil
}

// cancelOrErr turns a user cancel into a clean no-op.
func cancelOrErr(err error) error {
	if errors.Is(err, errCancelled) {
		logger.Info("Cancelled")
		return nil
	}
	return err
}
