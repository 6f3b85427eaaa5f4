package render

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ratiorepl/ratiorepl/expr"
	"github.com/ratiorepl/ratiorepl/ratio"
)

// Renderer writes the three user-visible frames (frontmatter, body,
// backmatter) for one driver-loop iteration to an underlying stream,
// normally stderr, the way the frame writers in the original tool do.
type Renderer struct {
	W   io.Writer
	Pal Palette
}

// New returns a Renderer with the default palette writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{W: w, Pal: DefaultPalette()}
}

// Frontmatter emits " ╭─[<filename>:<lineno>]" in the neutral-dim color.
func (r *Renderer) Frontmatter(filename string, lineno int) {
	fmt.Fprintln(r.W, " "+r.Pal.dark(fmt.Sprintf("╭─[%s:%d]", filename, lineno)))
}

// paintRange returns src with the bytes in [rng.Start, rng.End) passed
// through paint, leaving the rest of the line untouched.
func paintRange(src string, rng expr.Range, paint func(string) string) string {
	start, end := rng.Start, rng.End
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start > end {
		start = end
	}
	return src[:start] + paint(src[start:end]) + src[end:]
}

// connector builds the tee-and-dashes underline, with the tee aligned
// directly under the range's first character (matching the tee placement
// in ParseErrorFrame) and the dashes extended to the range's width when
// it exceeds two characters.
func connector(rng expr.Range) string {
	width := rng.End - rng.Start
	trailing := width - 1
	if trailing < 1 {
		trailing = 1
	}
	return strings.Repeat(" ", rng.Start) + "┬" + strings.Repeat("─", trailing)
}

func underline(start int, msg string) string {
	return strings.Repeat(" ", start) + "╰── " + msg
}

// EstimateFrame renders one reported node's estimate body: the source
// line with its range emphasized, the truth rational and DecimalTuple,
// the float's divergence-annotated DecimalTuple, and (when applicable)
// the relative-error decomposition.
func (r *Renderer) EstimateFrame(src string, n expr.Node, kind expr.ExprKind, val expr.Value) {
	rng := n.Range()
	fmt.Fprintln(r.W)
	fmt.Fprintln(r.W, " "+paintRange(src, rng, r.Pal.emphBold))
	fmt.Fprintln(r.W, " "+r.Pal.dark(connector(rng)))
	floatMsg := fmt.Sprintf("%s: %s", kindLabel(kind), r.Pal.emphBold(formatFloatRaw(val.Float)))
	fmt.Fprintln(r.W, " "+r.Pal.dark(underline(rng.Start, floatMsg)))

	truthTuple := ratio.FromRational(val.Rat)
	fmt.Fprintf(r.W, " truth: %s\n", val.Rat.RatString())
	if !truthTuple.IsInteger() {
		fmt.Fprintf(r.W, "     = %s\n", truthTuple.String())
	}

	fmt.Fprintf(r.W, " float: %s\n", r.renderFloat(val.Float, truthTuple))

	if val.Rat.Sign() != 0 && !math.IsInf(val.Float, 0) && !math.IsNaN(val.Float) {
		a := new(big.Rat).SetFloat64(val.Float)
		if a != nil {
			fmt.Fprintf(r.W, "     = %s\n", RelativeErrorDecomposition(a, val.Rat))
		}
	}
}

func kindLabel(k expr.ExprKind) string {
	return k.String()
}

func formatFloatRaw(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "infinity"
	case math.IsInf(f, -1):
		return "-infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// renderFloat renders the f64 as a divergence-bolded DecimalTuple
// against truth, or the special-value tokens for NaN/±Inf/-0.
func (r *Renderer) renderFloat(f float64, truth ratio.DecimalTuple) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "infinity"
	case math.IsInf(f, -1):
		return "-infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	}
	a := new(big.Rat).SetFloat64(f)
	dFlt := ratio.FromRational(a)
	return r.Pal.emphCorrect(dFlt, truth)
}

// Backmatter emits the closing frame: " ─╯" in dim for a successful
// evaluation, or the zero-division error body for an EvalError.
func (r *Renderer) Backmatter(src string, err error) {
	if err == nil {
		fmt.Fprintln(r.W, " "+r.Pal.dark("─╯"))
		return
	}
	ee, ok := err.(*expr.EvalError)
	if !ok {
		fmt.Fprintln(r.W, " "+r.Pal.errDim("─╯"))
		return
	}
	fmt.Fprintln(r.W, r.Pal.dark("│"))
	fmt.Fprintln(r.W, r.Pal.dark("│")+" "+paintRange(src, ee.Rng, r.Pal.errBold))
	fmt.Fprintln(r.W, r.Pal.errDim("│")+" "+r.Pal.errDim(connector(ee.Rng)))
	fmt.Fprintln(r.W, r.Pal.errDim("│")+" "+r.Pal.errDim(underline(ee.Rng.Start, "divide by zero")))
	fmt.Fprintln(r.W, " "+r.Pal.errDim("─╯"))
}

// ParseErrorFrame renders a grammar failure: the source line with the
// offending byte painted, a pointer beneath it, and the accumulated
// list of expectation messages.
func (r *Renderer) ParseErrorFrame(src string, pe *expr.ParseError) {
	line := src
	if pe.Position >= len(src) {
		line += r.Pal.darkDim("$")
	} else {
		line = paintRange(src, expr.Range{Start: pe.Position, End: pe.Position + 1}, r.Pal.errBold)
	}
	fmt.Fprintln(r.W, r.Pal.dark("│")+" "+line)
	fmt.Fprintln(r.W, r.Pal.errBold("│")+" "+strings.Repeat(" ", pe.Position)+"┬")
	fmt.Fprintln(r.W, r.Pal.errDim("│")+" "+strings.Repeat(" ", pe.Position)+"╰── parse error")
	fmt.Fprintln(r.W, r.Pal.errDim("│"))
	fmt.Fprintln(r.W, r.Pal.errDim("│")+" "+r.Pal.darkDim("errors:"))
	for _, msg := range pe.Messages {
		fmt.Fprintln(r.W, r.Pal.errDim("│")+" "+r.Pal.darkDim(" *  "+msg))
	}
	fmt.Fprintln(r.W, " "+r.Pal.errDim("─╯"))
}
