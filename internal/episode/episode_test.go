package episode

import "testing"

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"plain number", "12", 12, true},
		{"fractional suffix ignored", "3.5", 3, true},
		{"leading hash", "#04", 4, true},
		{"number inside label", "第7話", 7, true},
		{"first run wins", "2nd Season Episode 5", 2, true},
		{"zero", "0", 0, true},
		{"no digits", "no number", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumber(tt.text)
			if ok != tt.ok {
				t.Fatalf("ExtractNumber(%q) ok = %v; want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractNumber(%q) = %d; want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"clean title untouched", "The Day I Became a Shinigami", "The Day I Became a Shinigami"},
		{"slash", "Life/Death", "Life_Death"},
		{"all reserved characters", `a\b/c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"question mark only", "Really?", "Really_"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q; want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		`a\b/c:d*e?f"g<h>i|j`,
		"already_clean",
		"mixed: case? here",
	}
	for _, in := range inputs {
		once := SanitizeTitle(in)
		twice := SanitizeTitle(once)
		if once != twice {
			t.Errorf("SanitizeTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
