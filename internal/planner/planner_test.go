package planner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mydehq/annictl/internal/episode"
)

var testFormats = []string{"mp4", "mkv"}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ep2.mp4", "ep10.mp4", "ep1.mp4", "notes.txt"} {
		touch(t, dir, name)
	}
	if err := os.Mkdir(filepath.Join(dir, "extras.mp4"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Scan(dir, testFormats)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []string{"ep1.mp4", "ep2.mp4", "ep10.mp4"}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("Scan order mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "movie.MKV")
	touch(t, dir, "clip.Mp4")

	files, err := Scan(dir, testFormats)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files; want 2", len(files))
	}
}

func TestScanNoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.txt")

	_, err := Scan(dir, testFormats)
	var nmf NoMatchingFilesError
	if !errors.As(err, &nmf) {
		t.Fatalf("expected NoMatchingFilesError, got %v", err)
	}
	if nmf.Dir != dir {
		t.Errorf("error dir = %q; want %q", nmf.Dir, dir)
	}
}

func TestBuildPositionalPairing(t *testing.T) {
	files := []string{"ep01.mp4", "ep02.mp4", "ep03.mp4"}
	episodes := []episode.Record{
		{Number: 1, Title: "Pilot"},
		{Number: 2, Title: "The Chase"},
	}

	plan, err := Build(files, episodes, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := &Plan{
		Entries: []Entry{
			{OldName: "ep01.mp4", NewName: "01 - Pilot.mp4"},
			{OldName: "ep02.mp4", NewName: "02 - The Chase.mp4"},
		},
		Unplanned: []string{"ep03.mp4"},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLengthBound(t *testing.T) {
	tests := []struct {
		name     string
		files    int
		episodes int
		offset   int
		want     int
	}{
		{"more files than episodes", 5, 3, 1, 3},
		{"more episodes than files", 2, 6, 1, 2},
		{"offset shrinks window", 5, 5, 3, 3},
		{"offset at last file", 4, 2, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var files []string
			for i := 1; i <= tt.files; i++ {
				files = append(files, fmt.Sprintf("file%d.mp4", i))
			}
			var eps []episode.Record
			for i := 1; i <= tt.episodes; i++ {
				eps = append(eps, episode.Record{Number: i, Title: "T"})
			}

			plan, err := Build(files, eps, tt.offset)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if len(plan.Entries) != tt.want {
				t.Errorf("len(plan.Entries) = %d; want %d", len(plan.Entries), tt.want)
			}
			if got := len(plan.Entries) + len(plan.Unplanned); got != tt.files-tt.offset+1 {
				t.Errorf("entries+unplanned = %d; want full window %d", got, tt.files-tt.offset+1)
			}
		})
	}
}

func TestBuildOffsetValidation(t *testing.T) {
	files := []string{"a.mp4", "b.mp4"}
	eps := []episode.Record{{Number: 1, Title: "x"}}

	for _, offset := range []int{0, -1, 3} {
		if _, err := Build(files, eps, offset); err == nil {
			t.Errorf("offset %d: expected InvalidOffsetError, got nil", offset)
		} else {
			var ioe InvalidOffsetError
			if !errors.As(err, &ioe) {
				t.Errorf("offset %d: got %v; want InvalidOffsetError", offset, err)
			}
		}
	}

	if _, err := Build(files, eps, 1); err != nil {
		t.Errorf("offset 1 with non-empty files must succeed, got %v", err)
	}
}

func TestBuildZeroPadding(t *testing.T) {
	plan, err := Build([]string{"a.mkv", "b.mkv"}, []episode.Record{
		{Number: 7, Title: "Seven"},
		{Number: 107, Title: "Beyond Two Digits"},
	}, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if plan.Entries[0].NewName != "07 - Seven.mkv" {
		t.Errorf("NewName = %q; want two-digit padding", plan.Entries[0].NewName)
	}
	if plan.Entries[1].NewName != "107 - Beyond Two Digits.mkv" {
		t.Errorf("NewName = %q; want natural width past 99", plan.Entries[1].NewName)
	}
}
