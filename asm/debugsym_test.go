package asm

import (
	"strings"
	"testing"
)

func TestAssembleWithSymbolsBasic(t *testing.T) {
	f, err := ParseFile("test.asm", strings.NewReader("A = 5\nD = A\n"))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	syms, words, err := AssembleWithSymbols(f)
	if err != nil {
		t.Fatalf("AssembleWithSymbols failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if len(syms) != 2 {
		t.Fatalf("got %d symbols, want 2", len(syms))
	}
	for i, s := range syms {
		if s.Address != i {
			t.Errorf("symbol %d has address %d, want %d", i, s.Address, i)
		}
		if s.File != "test.asm" {
			t.Errorf("symbol %d has file %q, want test.asm", i, s.File)
		}
	}
}

func TestAssembleWithSymbolsFollowsMacroExpansion(t *testing.T) {
	const src = `%MACRO INC
A = A + 1
%END
INC
INC
`
	f, err := ParseFile("test.asm", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	syms, words, err := AssembleWithSymbols(f)
	if err != nil {
		t.Fatalf("AssembleWithSymbols failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if len(syms) != 2 {
		t.Fatalf("got %d symbols (one per macro-expanded word), want 2", len(syms))
	}
	if syms[0].Line != 2 || syms[1].Line != 2 {
		t.Fatalf("both expanded words should trace back to the macro body line, got %d and %d", syms[0].Line, syms[1].Line)
	}
}

func TestAssembleWithSymbolsRecursiveMacroFailsInsteadOfOverflowing(t *testing.T) {
	const src = `%MACRO LOOP
LOOP
%END
LOOP
`
	f, err := ParseFile("test.asm", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if _, _, err := AssembleWithSymbols(f); err == nil {
		t.Fatal("a self-referencing macro should fail with a bounded-depth Syntax error, not stack-overflow")
	}
}
