package render

import (
	"testing"

	"github.com/fatih/color"

	"github.com/ratiorepl/ratiorepl/ratio"
)

// emphCorrectCases mirrors the reference table of approx/truth pairs and
// their expected bold/dim split, covering the bold+dim-divergence branch,
// the integer zero-padding branch, and the fractional zero-padding branch.
var emphCorrectCases = []struct {
	approx, truth string
	bold, dim     string
}{
	{"1.23", "1.24", "1.2", "3"},
	{"1.2", "1.3", "1.", "2"},
	{"-10", "-2", "-", "10"},
	{"1", "1.(001)", "1.00", "(0...)"},
	{"1.1", "1.(100)", "1.100", "(0...)"},
}

func TestEmphCorrectTable(t *testing.T) {
	color.NoColor = true
	pal := DefaultPalette()

	for _, c := range emphCorrectCases {
		approx, err := ratio.Parse(c.approx)
		if err != nil {
			t.Fatalf("parsing approx %q: %v", c.approx, err)
		}
		truth, err := ratio.Parse(c.truth)
		if err != nil {
			t.Fatalf("parsing truth %q: %v", c.truth, err)
		}

		got := pal.emphCorrect(approx, truth)
		want := c.bold + c.dim
		if got != want {
			t.Errorf("emphCorrect(%q, %q) = %q, want %q", c.approx, c.truth, got, want)
		}
	}
}

func TestEmphCorrectExactMatchUsesEmphNotDim(t *testing.T) {
	color.NoColor = true
	pal := DefaultPalette()

	v, err := ratio.Parse("1.5")
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	got := pal.emphCorrect(v, v)
	if got != "1.5" {
		t.Errorf("emphCorrect(v, v) = %q, want %q (the !ok fallback just emphasizes the whole string)", got, "1.5")
	}
}
