// Package renamer applies a confirmed rename plan to the filesystem.
package renamer

import (
	"os"
	"path/filepath"

	"github.com/mydehq/annictl/internal/planner"
)

// Result records the outcome of a single rename attempt.
type Result struct {
	OldName string
	NewName string
	Err     error
}

// Renamed reports whether the attempt succeeded.
func (r Result) Renamed() bool {
	return r.Err == nil
}

// Execute renames each plan entry inside dir, in plan order. Every attempt is
// independent: a failure is recorded in its Result and the remaining entries
// are still attempted. Nothing already renamed is rolled back.
func Execute(dir string, entries []planner.Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		err := os.Rename(filepath.Join(dir, e.OldName), filepath.Join(dir, e.NewName))
		results = append(results, Result{OldName: e.OldName, NewName: e.NewName, Err: err})
	}
	return results
}
