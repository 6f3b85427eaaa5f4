package render

import (
	"strings"
	"testing"

	"github.com/ratiorepl/ratiorepl/expr"
)

func TestConnectorWidth(t *testing.T) {
	c := connector(expr.Range{Start: 2, End: 3})
	if !strings.HasPrefix(c, "  ") {
		t.Errorf("connector(%+v) = %q, want 2 leading spaces", expr.Range{Start: 2, End: 3}, c)
	}
	short := connector(expr.Range{Start: 0, End: 1})
	long := connector(expr.Range{Start: 0, End: 5})
	if len(long) <= len(short) {
		t.Errorf("connector for a longer range should be longer: short=%q long=%q", short, long)
	}
}

func TestPaintRangeBounds(t *testing.T) {
	src := "1 + 2"
	out := paintRange(src, expr.Range{Start: 0, End: 1}, func(s string) string { return "[" + s + "]" })
	if out != "[1] + 2" {
		t.Errorf("paintRange = %q, want %q", out, "[1] + 2")
	}
}

func TestPaintRangeClampsOutOfBounds(t *testing.T) {
	src := "1"
	out := paintRange(src, expr.Range{Start: 0, End: 10}, func(s string) string { return "<" + s + ">" })
	if out != "<1>" {
		t.Errorf("paintRange with out-of-range end = %q, want %q", out, "<1>")
	}
}
