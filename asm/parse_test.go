package asm

import (
	"strings"
	"testing"

	"github.com/hexaflex/ngc/arch"
)

func mustParse(t *testing.T, src string) *ParsedFile {
	t.Helper()
	f, err := ParseFile("test.asm", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	return f
}

func TestParseDataLiteral(t *testing.T) {
	f := mustParse(t, "A = 5\n")
	if len(f.Base.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(f.Base.Lines))
	}
	inst, ok := f.Base.Lines[0].(InstLine)
	if !ok {
		t.Fatalf("line 0 is %T, want InstLine", f.Base.Lines[0])
	}
	if inst.Word != 5 {
		t.Fatalf("word = %#x, want 0x0005", inst.Word)
	}
}

func TestParseDataRefDeduplicates(t *testing.T) {
	f := mustParse(t, "DEFINE X 7\nA = X\nA = X\n")
	if len(f.Base.Refs) != 1 {
		t.Fatalf("got %d refs, want 1 (deduplicated)", len(f.Base.Refs))
	}
	for _, line := range f.Base.Lines {
		if _, ok := line.(DataRefLine); !ok {
			t.Fatalf("line %#v is not a DataRefLine", line)
		}
	}
}

func TestParseALUInstruction(t *testing.T) {
	f := mustParse(t, "D = A\n")
	inst, ok := f.Base.Lines[0].(InstLine)
	if !ok {
		t.Fatalf("line 0 is %T, want InstLine", f.Base.Lines[0])
	}

	bits, ok := arch.Opr("A")
	if !ok {
		t.Fatal("arch.Opr(\"A\") should be recognized")
	}
	want := arch.CI | arch.AlwaysSet | bits | arch.TargetD
	if inst.Word != want {
		t.Fatalf("word = %#x, want %#x", inst.Word, want)
	}
}

func TestParseBareJMP(t *testing.T) {
	f := mustParse(t, "JMP\n")
	inst, ok := f.Base.Lines[0].(InstLine)
	if !ok {
		t.Fatalf("line 0 is %T, want InstLine", f.Base.Lines[0])
	}
	want := arch.CI | arch.AlwaysSet | arch.NEG1 | arch.JumpLT | arch.JumpEQ | arch.JumpGT
	if inst.Word != want {
		t.Fatalf("word = %#x, want %#x", inst.Word, want)
	}
}

func TestParseJumpWithCondition(t *testing.T) {
	f := mustParse(t, "0;JEQ\n")
	inst, ok := f.Base.Lines[0].(InstLine)
	if !ok {
		t.Fatalf("line 0 is %T, want InstLine", f.Base.Lines[0])
	}
	opr, _ := arch.Opr("0")
	jmp, _ := arch.Jump("JEQ")
	want := arch.CI | arch.AlwaysSet | opr | jmp
	if inst.Word != want {
		t.Fatalf("word = %#x, want %#x", inst.Word, want)
	}
}

func TestParseDirectivesAreCaseInsensitive(t *testing.T) {
	f := mustParse(t, "define X 1\nlabel Y\nA = X\n")
	if len(f.Base.Defs) != 2 {
		t.Fatalf("got %d defs, want 2", len(f.Base.Defs))
	}
}

func TestParseALUOperandIsCaseSensitive(t *testing.T) {
	_, err := ParseFile("test.asm", strings.NewReader("D = a\n"))
	if err == nil {
		t.Fatal("lowercase \"a\" operand should not parse as an ALU operand or a valid data key")
	}
}

func TestParseBareJumpMnemonicIsSyntaxError(t *testing.T) {
	_, err := ParseFile("test.asm", strings.NewReader("JEQ\n"))
	if err == nil {
		t.Fatal("bare \"JEQ\" should be a syntax error, not a macro reference to a symbol named JEQ")
	}
}

func TestParseDataAssignedJumpMnemonicIsSyntaxError(t *testing.T) {
	_, err := ParseFile("test.asm", strings.NewReader("A = JEQ\n"))
	if err == nil {
		t.Fatal("\"A = JEQ\" should be a syntax error, not a data reference to a symbol named JEQ")
	}
}

func TestParseComment(t *testing.T) {
	f := mustParse(t, "# a comment\nA = 5\n")
	if len(f.Base.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (comment skipped)", len(f.Base.Lines))
	}
}

func TestParseMacroDefAndRef(t *testing.T) {
	f := mustParse(t, "%MACRO INC\nA = A + 1\n%END\nINC\n")
	if len(f.Macros) != 1 {
		t.Fatalf("got %d macros, want 1", len(f.Macros))
	}
	if f.Macros[0].Key != "INC" {
		t.Fatalf("macro key = %q, want INC", f.Macros[0].Key)
	}
	if len(f.Base.MacroRefs) != 1 {
		t.Fatalf("got %d macro refs, want 1", len(f.Base.MacroRefs))
	}
}

func TestParseUnterminatedMacroFails(t *testing.T) {
	_, err := ParseFile("test.asm", strings.NewReader("%MACRO M\nA = 1\n"))
	if err == nil {
		t.Fatal("an unterminated %MACRO block should fail to parse")
	}
}

func TestParseInvalidKeyRejected(t *testing.T) {
	_, err := ParseFile("test.asm", strings.NewReader("DEFINE A 1\n"))
	if err == nil {
		t.Fatal("DEFINE A should fail: \"A\" is a reserved key")
	}
}
