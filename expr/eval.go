package expr

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Value is the dual representation carried by every evaluated
// subexpression: an exact rational and an independently-computed
// float64. Float is never derived from Rat; it is produced by handing
// the literal's own digit string to strconv.ParseFloat (or by applying
// float64 arithmetic directly for composite nodes), so that it tracks
// what a native float64 pipeline would actually produce, divergence
// included.
type Value struct {
	Rat   *big.Rat
	Float float64
}

// EvalError reports a runtime evaluation failure (currently: division
// by zero) anchored to the byte range of the offending node.
type EvalError struct {
	Rng Range
	Msg string
}

func (e *EvalError) Error() string {
	return errors.Errorf("%s", e.Msg).Error()
}

// Emitter receives a warning string for a non-fatal condition
// encountered during evaluation (e.g. float division by zero producing
// +Inf/-Inf/NaN, which is not an error but is worth surfacing).
type Emitter func(warning string)

// ExprKind classifies a node for the purposes of EstimateFilter (C5).
// NegParen is classified as KindParen: it is, syntactically, a
// parenthesized group with a sign folded in, and no separate option
// exists to distinguish it from a bare Paren.
type ExprKind int

// The three expression kinds the estimate-report option flags select on.
const (
	KindLiteral ExprKind = iota
	KindParen
	KindBinary
)

func (k ExprKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParen:
		return "paren"
	case KindBinary:
		return "binary"
	default:
		return "?"
	}
}

// EvalOptions configures Eval: the three independent estimate-report
// flags consulted by DoEstimate, plus a Warn sink for non-fatal
// conditions. Warn may be nil, in which case warnings are dropped.
type EvalOptions struct {
	EstimateLiteral bool
	EstimateParen   bool
	EstimateBinary  bool
	Warn            Emitter
}

// Reporter is invoked once per node for which DoEstimate returns true,
// after that node's value has been computed, in the same bottom-up
// order evaluation visits them.
type Reporter func(n Node, kind ExprKind, depth int, val Value)

// EvalContext threads EvalOptions, a Reporter, and a running node count
// through one evaluation, the way cockroachdb/apd.Context threads
// precision and rounding through one operation.
type EvalContext struct {
	Opts   EvalOptions
	Report Reporter
	Nodes  int
}

// NewEvalContext returns a ready-to-use EvalContext. report may be nil.
func NewEvalContext(opts EvalOptions, report Reporter) *EvalContext {
	return &EvalContext{Opts: opts, Report: report}
}

func (c *EvalContext) warn(msg string) {
	if c.Opts.Warn != nil {
		c.Opts.Warn(msg)
	}
}

// Eval evaluates the full tree rooted at n and returns the dual Value,
// or an *EvalError on division by zero in the exact-rational channel.
// report, if non-nil, is invoked for every node DoEstimate selects.
func Eval(n Node, opts EvalOptions, report Reporter) (Value, error) {
	ctx := NewEvalContext(opts, report)
	return ctx.evalNode(n, 0)
}

func (c *EvalContext) evalNode(n Node, depth int) (Value, error) {
	c.Nodes++
	var val Value
	var kind ExprKind
	var err error

	switch t := n.(type) {
	case *Literal:
		kind = KindLiteral
		val, err = c.evalLiteral(t)
	case *Binary:
		kind = KindBinary
		val, err = c.evalBinary(t, depth)
	case *Paren:
		kind = KindParen
		val, err = c.evalNode(t.Inner, depth+1)
	case *NegParen:
		kind = KindParen
		var inner Value
		inner, err = c.evalNode(t.Inner, depth+1)
		if err == nil {
			r := new(big.Rat).Neg(inner.Rat)
			val = Value{Rat: r, Float: -inner.Float}
		}
	default:
		return Value{}, errors.Errorf("unknown node type %T", n)
	}
	if err != nil {
		return Value{}, err
	}

	if c.Report != nil && DoEstimate(c.Opts, EstimateContext{Depth: depth, Kind: kind}) {
		c.Report(n, kind, depth, val)
	}
	return val, nil
}

// evalLiteral builds the exact rational from the literal's digit
// string and exponent directly (no float intermediate), and separately
// builds the float64 by handing strconv.ParseFloat a "<digits>E<exp>"
// string, so that the float channel exhibits whatever correctly-rounded
// or not-quite-decimal behavior the platform's float parser has, rather
// than one derived by converting the exact rational down to float64.
func (c *EvalContext) evalLiteral(l *Literal) (Value, error) {
	rat, ok := parseLiteralRat(l.Digits, l.Exponent)
	if !ok {
		return Value{}, errors.Errorf("malformed literal %q", l.Digits)
	}
	floatStr := l.Digits + "E" + strconv.FormatInt(int64(l.Exponent), 10)
	f, err := strconv.ParseFloat(floatStr, 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		// An out-of-range literal parses to ±Inf, which is a float value,
		// not an evaluation error.
		err = nil
	}
	if err != nil {
		return Value{}, errors.Wrapf(err, "parsing %q as float", floatStr)
	}
	return Value{Rat: rat, Float: f}, nil
}

// parseLiteralRat parses a "-?digits(.digits)?" string with an applied
// base-10 exponent into an exact rational.
func parseLiteralRat(digits string, exponent int32) (*big.Rat, bool) {
	neg := false
	i := 0
	if i < len(digits) && digits[i] == '-' {
		neg = true
		i++
	}
	intPart := ""
	fracPart := ""
	dotSeen := false
	for ; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c == '.' && !dotSeen:
			dotSeen = true
		case c >= '0' && c <= '9':
			if dotSeen {
				fracPart += string(c)
			} else {
				intPart += string(c)
			}
		default:
			return nil, false
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	num := new(big.Int)
	if _, ok := num.SetString(intPart+fracPart, 10); !ok {
		return nil, false
	}
	denomExp := int32(len(fracPart)) - exponent
	r := new(big.Rat).SetInt(num)
	scale := new(big.Rat).SetInt(pow10Rat(absInt32(denomExp)))
	if denomExp >= 0 {
		r.Quo(r, scale)
	} else {
		r.Mul(r, scale)
	}
	if neg {
		r.Neg(r)
	}
	return r, true
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func pow10Rat(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (c *EvalContext) evalBinary(b *Binary, depth int) (Value, error) {
	left, err := c.evalNode(b.Left, depth+1)
	if err != nil {
		return Value{}, err
	}
	right, err := c.evalNode(b.Right, depth+1)
	if err != nil {
		return Value{}, err
	}

	var rat *big.Rat
	var f float64

	switch b.Op {
	case OpAdd:
		rat = new(big.Rat).Add(left.Rat, right.Rat)
		f = left.Float + right.Float
	case OpSub:
		rat = new(big.Rat).Sub(left.Rat, right.Rat)
		f = left.Float - right.Float
	case OpMul:
		rat = new(big.Rat).Mul(left.Rat, right.Rat)
		f = left.Float * right.Float
	case OpDiv:
		if right.Rat.Sign() == 0 {
			return Value{}, &EvalError{Rng: b.Rng, Msg: "division by zero"}
		}
		rat = new(big.Rat).Quo(left.Rat, right.Rat)
		f = left.Float / right.Float
		if right.Float == 0 {
			c.warn("division by zero in floating-point channel produced " + strconv.FormatFloat(f, 'g', -1, 64))
		}
	default:
		return Value{}, errors.Errorf("unknown operator %v", b.Op)
	}

	return Value{Rat: rat, Float: f}, nil
}
