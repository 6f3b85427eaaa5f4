// Package render formats the three user-visible frames the driver
// emits per input line: frontmatter, an estimate or error body, and
// backmatter, styled with the colors the original tool reserved for
// each role.
package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/ratiorepl/ratiorepl/ratio"
)

// Palette holds the role-based colors the renderer paints with: emphasis
// (the reported source range and the float value), auxiliary (the
// prompt), dark/neutral (frame margins and divergent digits), and error.
type Palette struct {
	Emph color.Attribute
	Aux  *color.Color
	Dark *color.Color
	Err  color.Attribute
}

// DefaultPalette returns the standard role coloring.
func DefaultPalette() Palette {
	return Palette{
		Emph: color.FgMagenta,
		Aux:  color.New(color.FgYellow),
		Dark: color.New(color.FgWhite, color.Faint),
		Err:  color.FgRed,
	}
}

func (p Palette) emphBold(s string) string {
	return color.New(p.Emph, color.Bold).Sprint(s)
}

func (p Palette) dark(s string) string {
	return p.Dark.Sprint(s)
}

func (p Palette) darkDim(s string) string {
	return p.Dark.Sprint(s)
}

func (p Palette) errBold(s string) string {
	return color.New(p.Err, color.Bold).Sprint(s)
}

func (p Palette) errDim(s string) string {
	return color.New(p.Err, color.Faint).Sprint(s)
}

func (p Palette) bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// emphCorrect renders approx's canonical decimal string with the
// portion shared with truth (its longest common prefix) in bold and
// the diverging remainder dimmed. When approx and truth render
// identically, the whole string is shown in emphasis-bold instead.
func (p Palette) emphCorrect(approx, truth ratio.DecimalTuple) string {
	s := approx.String()
	lcp, ok := approx.LCPLen(truth)
	if !ok {
		return p.emphBold(s)
	}
	if lcp < len(s) {
		return p.bold(s[:lcp]) + p.darkDim(s[lcp:])
	}
	if approx.IsInteger() {
		s0 := padRightZero(s+".", lcp)
		return p.bold(s0) + p.darkDim("(0...)")
	}
	s0 := padRightZero(s, lcp)
	return p.bold(s0) + p.darkDim("(0...)")
}

func padRightZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("0", width-len(s))
}
