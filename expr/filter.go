package expr

import "strings"

// EstimateContext is the per-node context DoEstimate consults: the
// node's depth from the root (root is 0) and its expression kind.
type EstimateContext struct {
	Depth int
	Kind  ExprKind
}

// DoEstimate decides whether a node's estimate frame should be
// reported. The root (depth 0) is always reported regardless of the
// option flags; every other node is gated by the flag matching its
// kind.
func DoEstimate(opts EvalOptions, ctx EstimateContext) bool {
	if ctx.Depth == 0 {
		return true
	}
	switch ctx.Kind {
	case KindLiteral:
		return opts.EstimateLiteral
	case KindParen:
		return opts.EstimateParen
	case KindBinary:
		return opts.EstimateBinary
	default:
		return false
	}
}

// ApplyTokens parses a comma-separated sequence of EstimateFilter DSL
// tokens (lit/+lit/-lit, par/+par/-par, bin/+bin/-bin) and applies them
// left to right to opts. Unknown tokens are reported to warn (which may
// be nil) and otherwise ignored; they never abort the remaining tokens.
func ApplyTokens(opts *EvalOptions, value string, warn Emitter) {
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch tok {
		case "lit", "+lit":
			opts.EstimateLiteral = true
		case "-lit":
			opts.EstimateLiteral = false
		case "par", "+par":
			opts.EstimateParen = true
		case "-par":
			opts.EstimateParen = false
		case "bin", "+bin":
			opts.EstimateBinary = true
		case "-bin":
			opts.EstimateBinary = false
		default:
			if warn != nil {
				warn("unknown estimate token: " + tok)
			}
		}
	}
}

// ApplyColonCommand parses a driver colon-command body of the form
// "key=value[;key=value]*". The only recognized key is "estimate",
// whose value is handed to ApplyTokens; any other key warns (via warn,
// which may be nil) and is otherwise ignored, without aborting the
// remaining key=value pairs.
func ApplyColonCommand(opts *EvalOptions, body string, warn Emitter) {
	for _, kv := range strings.Split(body, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			if warn != nil {
				warn("malformed colon-command entry: " + kv)
			}
			continue
		}
		key, value := strings.TrimSpace(kv[:eq]), kv[eq+1:]
		switch key {
		case "estimate":
			ApplyTokens(opts, value, warn)
		default:
			if warn != nil {
				warn("unknown colon-command key: " + key)
			}
		}
	}
}
