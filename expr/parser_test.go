package expr

import "testing"

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	n, err := ParseLine(src)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", src, err)
	}
	return n
}

func TestParseLiteralPrecedesNegParen(t *testing.T) {
	n := mustParse(t, "-5")
	lit, ok := n.(*Literal)
	if !ok {
		t.Fatalf("-5 parsed as %T, want *Literal", n)
	}
	if lit.Digits != "-5" {
		t.Errorf("Digits = %q, want %q", lit.Digits, "-5")
	}
}

func TestParseNegParenRequiresParen(t *testing.T) {
	n := mustParse(t, "-(1)")
	np, ok := n.(*NegParen)
	if !ok {
		t.Fatalf("-(1) parsed as %T, want *NegParen", n)
	}
	if np.Range().Start != 0 || np.Range().End != 4 {
		t.Errorf("range = %+v, want {0 4}", np.Range())
	}
}

func TestParseNegWithSpaceIsStillLiteral(t *testing.T) {
	n := mustParse(t, "- 1")
	lit, ok := n.(*Literal)
	if !ok {
		t.Fatalf("\"- 1\" parsed as %T, want *Literal", n)
	}
	if lit.Range().Start != 0 || lit.Range().End != 3 {
		t.Errorf("range = %+v, want {0 3}", lit.Range())
	}
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	n := mustParse(t, "1 * (2 - 3 + 4) / 5")
	root, ok := n.(*Binary)
	if !ok || root.Op != OpDiv {
		t.Fatalf("root = %+v, want top-level Div", n)
	}
	mul, ok := root.Left.(*Binary)
	if !ok || mul.Op != OpMul {
		t.Fatalf("root.Left = %+v, want Mul", root.Left)
	}
	if _, ok := mul.Left.(*Literal); !ok {
		t.Errorf("mul.Left = %T, want *Literal", mul.Left)
	}
	paren, ok := mul.Right.(*Paren)
	if !ok {
		t.Fatalf("mul.Right = %T, want *Paren", mul.Right)
	}
	inner, ok := paren.Inner.(*Binary)
	if !ok || inner.Op != OpAdd {
		t.Fatalf("paren.Inner top op = %+v, want Add (left-assoc (2-3)+4)", paren.Inner)
	}
	left, ok := inner.Left.(*Binary)
	if !ok || left.Op != OpSub {
		t.Fatalf("inner.Left = %+v, want Sub", inner.Left)
	}
}

func TestParseRangeWellFormed(t *testing.T) {
	src := "1 + 2 * 3"
	n := mustParse(t, src)
	var walk func(Node)
	walk = func(n Node) {
		r := n.Range()
		if r.Start < 0 || r.End > len(src) || r.Start > r.End {
			t.Errorf("malformed range %+v for %T", r, n)
		}
		switch nd := n.(type) {
		case *Binary:
			walk(nd.Left)
			walk(nd.Right)
			if nd.Rng.Start != nd.Left.Range().Start || nd.Rng.End != nd.Right.Range().End {
				t.Errorf("binary range %+v does not span children [%+v, %+v]", nd.Rng, nd.Left.Range(), nd.Right.Range())
			}
		case *Paren:
			walk(nd.Inner)
		case *NegParen:
			walk(nd.Inner)
		}
	}
	walk(n)
}

func TestParseExponent(t *testing.T) {
	n := mustParse(t, "1e3")
	lit := n.(*Literal)
	if lit.Exponent != 3 {
		t.Errorf("Exponent = %d, want 3", lit.Exponent)
	}
}

func TestParseExponentOverflow(t *testing.T) {
	_, err := ParseLine("1e99999999999")
	if err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{"1 +", "", "   ", "1 2", "(1", "1)", "-(1"}
	for _, c := range cases {
		if _, err := ParseLine(c); err == nil {
			t.Errorf("ParseLine(%q) succeeded, want error", c)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseLine("1 +")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err = %T, want *ParseError", err)
	}
	if pe.Position != 3 {
		t.Errorf("Position = %d, want 3", pe.Position)
	}
	if len(pe.Messages) == 0 {
		t.Error("Messages is empty, want at least one entry")
	}
}

func TestParseDepthGuard(t *testing.T) {
	src := ""
	for i := 0; i < MaxDepth+50; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < MaxDepth+50; i++ {
		src += ")"
	}
	if _, err := ParseLine(src); err == nil {
		t.Error("expected depth-guard error for deeply nested parens")
	}
}
