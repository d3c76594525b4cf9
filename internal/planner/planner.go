// Package planner builds the old-name to new-name mapping for a directory.
package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/mydehq/annictl/internal/episode"
)

// Entry pairs one local file with its planned new name. Both names are base
// names relative to the scanned directory.
type Entry struct {
	OldName string
	NewName string
}

// Plan is the proposed rename mapping for a directory. Unplanned holds files
// past the end of the episode list; they are surfaced as a warning and left
// untouched.
type Plan struct {
	Entries   []Entry
	Unplanned []string
}

// NoMatchingFilesError reports a directory with no allow-listed video files.
type NoMatchingFilesError struct {
	Dir string
}

func (e NoMatchingFilesError) Error() string {
	return fmt.Sprintf("no video files found in %s", e.Dir)
}

// InvalidOffsetError reports a 1-based start offset outside the file list.
type InvalidOffsetError struct {
	Offset int
	Count  int
}

func (e InvalidOffsetError) Error() string {
	return fmt.Sprintf("start offset %d is outside the file list (1-%d)", e.Offset, e.Count)
}

// Scan lists the files directly inside dir whose extension is in formats
// (case-insensitive, with or without a leading dot) and returns their base
// names in natural order, so "ep2" sorts before "ep10". Subdirectories are
// not descended into.
func Scan(dir string, formats []string) ([]string, error) {
	allowed := make(map[string]bool, len(formats))
	for _, f := range formats {
		allowed["."+strings.ToLower(strings.TrimPrefix(f, "."))] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 {
		return nil, NoMatchingFilesError{Dir: dir}
	}

	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i], files[j])
	})
	return files, nil
}

// Build pairs the sorted files, starting at the 1-based offset, with the
// usable episode records. Pairing is strictly positional: the i-th file after
// the offset gets the i-th record. Files beyond the episode count end up in
// Plan.Unplanned; episodes beyond the file count are simply unused.
func Build(files []string, episodes []episode.Record, offset int) (*Plan, error) {
	if offset < 1 || offset > len(files) {
		return nil, InvalidOffsetError{Offset: offset, Count: len(files)}
	}

	window := files[offset-1:]
	n := min(len(window), len(episodes))

	plan := &Plan{}
	for i := 0; i < n; i++ {
		old := window[i]
		rec := episodes[i]
		plan.Entries = append(plan.Entries, Entry{
			OldName: old,
			NewName: fmt.Sprintf("%02d - %s%s", rec.Number, rec.Title, filepath.Ext(old)),
		})
	}
	plan.Unplanned = append(plan.Unplanned, window[n:]...)
	return plan, nil
}
