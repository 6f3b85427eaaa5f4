// Package repl implements the read-eval-render loop: one line in,
// parse, evaluate, render, repeat, with colon-commands mutating the
// evaluator's estimate-report options between lines.
package repl

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/ratiorepl/ratiorepl/expr"
	"github.com/ratiorepl/ratiorepl/ratio"
	"github.com/ratiorepl/ratiorepl/render"
)

const historyFileName = ".ratiorepl_history"

const prologue = `Welcome to ratiorepl. Type an expression, or :estimate=..., :history, :clear.`

// Options configures one REPL session.
type Options struct {
	// InitialEstimate is applied, in order, before the first line is
	// read; it mirrors one or more repeated "-e/--estimate" flags.
	InitialEstimate []string

	// RecordPath, if non-empty, archives every successfully evaluated
	// root value as a BSON record.
	RecordPath string

	Stderr io.Writer
}

// Repl owns the mutable state of one session: the evaluator options,
// the line editor, the renderer, and (optionally) the session recorder.
type Repl struct {
	opts     expr.EvalOptions
	rl       *readline.Instance
	out      *render.Renderer
	stderr   io.Writer
	histfile string
	lineNo   int
	history  []string
	recorder *RecordWriter
}

// New constructs a Repl ready to Run. It opens (best-effort) the
// persisted history file and, if RecordPath is set, the session
// recorder.
func New(o Options) (*Repl, error) {
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}
	histfile := filepath.Join(home, historyFileName)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptString(),
		HistoryFile:     histfile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		if _, statErr := os.Stat(histfile); statErr != nil {
			fmt.Fprintln(o.Stderr, "No previous history.")
		}
		return nil, errors.Wrap(err, "initializing line editor")
	}

	r := &Repl{
		rl:       rl,
		out:      render.New(o.Stderr),
		stderr:   o.Stderr,
		histfile: histfile,
	}

	for _, tok := range o.InitialEstimate {
		expr.ApplyTokens(&r.opts, tok, r.warn)
	}

	if o.RecordPath != "" {
		rec, err := OpenRecordWriter(o.RecordPath)
		if err != nil {
			return nil, err
		}
		r.recorder = rec
	}

	fmt.Fprintln(o.Stderr, prologue)
	return r, nil
}

func promptString() string {
	return render.DefaultPalette().Aux.Sprint(">> ")
}

func (r *Repl) warn(msg string) {
	fmt.Fprintln(r.stderr, "warning:", msg)
}

// Close flushes the line editor (which maintains the history file
// incrementally as entries are added) and closes the recorder, if any.
// It returns a non-nil error if the history file is not writable, per
// the documented nonzero-exit-on-save-failure contract.
func (r *Repl) Close() error {
	var saveErr error
	if f, err := os.OpenFile(r.histfile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600); err != nil {
		saveErr = errors.Wrap(err, "saving history")
	} else {
		f.Close()
	}
	if err := r.rl.Close(); err != nil && saveErr == nil {
		saveErr = errors.Wrap(err, "closing line editor")
	}
	if r.recorder != nil {
		if err := r.recorder.Close(); err != nil && saveErr == nil {
			saveErr = err
		}
	}
	return saveErr
}

// Run executes the loop until EOF; any other read error is printed and
// the loop continues. It returns the error Close() reported, if any, matching the documented
// exit-code contract (0 on clean EOF, nonzero if history could not be
// saved).
func (r *Repl) Run() error {
	for {
		r.lineNo++
		line, err := r.rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			fmt.Fprintln(r.stderr, "^C")
			r.lineNo--
			continue
		case err == io.EOF:
			fmt.Fprintln(r.stderr, "^D")
			return r.Close()
		case err != nil:
			fmt.Fprintln(r.stderr, "Error:", err)
			r.lineNo--
			continue
		}

		if strings.TrimSpace(line) == "" {
			r.lineNo--
			continue
		}

		r.history = append(r.history, line)

		if strings.HasPrefix(line, ":") {
			r.runColonCommand(line[1:])
			r.lineNo--
			continue
		}

		r.evalLine(line)
	}
}

func (r *Repl) runColonCommand(body string) {
	switch {
	case body == "history":
		for i, l := range r.history {
			fmt.Fprintf(r.stderr, "%5d  %s\n", i+1, l)
		}
	case body == "clear":
		r.history = nil
	default:
		expr.ApplyColonCommand(&r.opts, body, r.warn)
	}
}

func (r *Repl) evalLine(line string) {
	r.out.Frontmatter("stdin", r.lineNo)

	n, err := expr.ParseLine(line)
	if err != nil {
		if pe, ok := err.(*expr.ParseError); ok {
			r.out.ParseErrorFrame(line, pe)
		} else {
			fmt.Fprintln(r.stderr, err)
		}
		return
	}

	var rootVal expr.Value
	var haveRoot bool
	report := func(node expr.Node, kind expr.ExprKind, depth int, val expr.Value) {
		r.out.EstimateFrame(line, node, kind, val)
		if depth == 0 {
			rootVal = val
			haveRoot = true
		}
	}

	_, evalErr := expr.Eval(n, r.opts, report)

	r.out.Backmatter(line, evalErr)

	if evalErr == nil && haveRoot && r.recorder != nil {
		lcp := -1
		if idx, ok := estimateLCP(rootVal); ok {
			lcp = idx
		}
		if err := r.recorder.Write(NewSessionRecord(line, rootVal, lcp)); err != nil {
			fmt.Fprintln(r.stderr, "warning: session record:", err)
		}
	}
}

// estimateLCP returns the LCP index between the root value's float and
// truth DecimalTuple renderings, for archiving in a SessionRecord.
func estimateLCP(val expr.Value) (int, bool) {
	truth := ratio.FromRational(val.Rat)
	a := new(big.Rat).SetFloat64(val.Float)
	if a == nil {
		return 0, false
	}
	flt := ratio.FromRational(a)
	return flt.LCPLen(truth)
}
