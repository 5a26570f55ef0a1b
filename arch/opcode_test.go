package arch

import "testing"

func TestOprKnownExpressions(t *testing.T) {
	cases := []struct {
		expr string
		want Word
	}{
		{"0", OprZX},
		{"1", OprU | OprOp0 | OprZX},
		{"-1", NEG1},
		{"A", OprU | OprZX},
		{"D", OprU | OprZX | OprSW},
		{"D+A", OprU},
		{"D&A", 0},
		{"*A", AA | OprU | OprZX},
		{"D&*A", AA},
	}

	for _, c := range cases {
		got, ok := Opr(c.expr)
		if !ok {
			t.Errorf("Opr(%q): not found", c.expr)
			continue
		}
		if got != c.want {
			t.Errorf("Opr(%q) = %#x, want %#x", c.expr, got, c.want)
		}
	}
}

func TestOprUnknown(t *testing.T) {
	if _, ok := Opr("A*D"); ok {
		t.Fatal("Opr(\"A*D\") should not be a recognized expression")
	}
}

func TestOprTableHas30Entries(t *testing.T) {
	if len(oprTable) != 30 {
		t.Fatalf("oprTable has %d entries, want 30", len(oprTable))
	}
}

func TestOprIsCaseSensitive(t *testing.T) {
	if _, ok := Opr("a"); ok {
		t.Fatal("Opr(\"a\") should not match the uppercase \"A\" entry")
	}
}

func TestJumpKnownMnemonics(t *testing.T) {
	cases := []struct {
		name string
		want Word
	}{
		{"JGT", JumpGT},
		{"JEQ", JumpEQ},
		{"JGE", JumpEQ | JumpGT},
		{"JLT", JumpLT},
		{"JNE", JumpLT | JumpGT},
		{"JLE", JumpLT | JumpEQ},
		{"JMP", JumpLT | JumpEQ | JumpGT},
	}
	for _, c := range cases {
		got, ok := Jump(c.name)
		if !ok || got != c.want {
			t.Errorf("Jump(%q) = %#x, %v; want %#x, true", c.name, got, ok, c.want)
		}
	}
}

func TestJumpUnknown(t *testing.T) {
	if _, ok := Jump("JXX"); ok {
		t.Fatal("Jump(\"JXX\") should not be recognized")
	}
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		tok  string
		want Word
	}{
		{"A", TargetA},
		{"D", TargetD},
		{"*A", TargetAA},
	}
	for _, c := range cases {
		got, ok := ParseTarget(c.tok)
		if !ok || got != c.want {
			t.Errorf("ParseTarget(%q) = %#x, %v; want %#x, true", c.tok, got, ok, c.want)
		}
	}
	if _, ok := ParseTarget("*D"); ok {
		t.Fatal("ParseTarget(\"*D\") should not be recognized")
	}
}

func TestAlwaysSetBits(t *testing.T) {
	if AlwaysSet != Word(1<<14|1<<13) {
		t.Fatalf("AlwaysSet = %#x, want %#x", AlwaysSet, Word(1<<14|1<<13))
	}
}
