// Package episode defines the usable episode record and the helpers that
// turn loose episode data from the API into filename-safe components.
package episode

import (
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderTitle stands in for episodes the API returns without a title.
const PlaceholderTitle = "(no title)"

// Record is one usable episode: a resolved sequence number and a title that
// is safe to use as a filename component.
type Record struct {
	Number int
	Title  string
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractNumber returns the integer value of the first maximal decimal digit
// run in text. A fractional suffix is ignored, so "3.5" yields 3. The second
// return value is false when text contains no digits.
func ExtractNumber(text string) (int, bool) {
	run := digitRun.FindString(text)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

// reservedChars are characters that are invalid in filenames on at least one
// supported platform.
var reservedChars = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeTitle replaces every reserved filename character in title with an
// underscore. The replacement is idempotent.
func SanitizeTitle(title string) string {
	return reservedChars.Replace(title)
}
