package asm

import (
	"strings"

	"github.com/hexaflex/ngc/arch"
)

// aluHint tells the caller what else a line could be, once it has
// failed to parse as a full ALU instruction.
type aluHint int

const (
	hintNone aluHint = iota
	hintData
	hintMacroRef
)

// parseALU attempts to parse stripped (whitespace already removed) as
// an ALU instruction. It returns a non-nil Line on success. On failure
// it returns a hint describing what else the line might be, or
// hintNone with a concrete syntax error if it can't be anything.
func parseALU(pos Position, stripped string) (Line, aluHint, error) {
	if stripped == "JMP" {
		word := arch.CI | arch.AlwaysSet | arch.NEG1 | arch.JumpLT | arch.JumpEQ | arch.JumpGT
		return InstLine{At: pos, Word: word}, hintNone, nil
	}

	eqIdx := strings.IndexByte(stripped, '=')
	semiIdx := strings.IndexByte(stripped, ';')

	var target arch.Word
	haveTarget := eqIdx >= 0

	if haveTarget {
		targetTok := stripped[:eqIdx]
		if targetTok == "" {
			return nil, hintNone, newError(Syntax, pos, "No target given")
		}
		t, err := parseTargets(pos, targetTok)
		if err != nil {
			return nil, hintNone, err
		}
		target = t
	}

	oprStart := 0
	if haveTarget {
		oprStart = eqIdx + 1
	}
	oprEnd := len(stripped)

	var jump arch.Word
	haveJump := semiIdx >= 0
	if haveJump {
		if semiIdx+1 >= len(stripped) {
			return nil, hintNone, newError(Syntax, pos, "No jump condition given")
		}
		jumpTok := stripped[semiIdx+1:]
		j, ok := arch.Jump(jumpTok)
		if !ok {
			return nil, hintNone, newError(Syntax, pos, "Invalid jump condition: '%s'", jumpTok)
		}
		jump = j
		oprEnd = semiIdx
	}

	oprTok := stripped[oprStart:oprEnd]

	if bits, ok := arch.Opr(oprTok); ok {
		word := arch.CI | arch.AlwaysSet | bits | target | jump
		return InstLine{At: pos, Word: word}, hintNone, nil
	}

	// The hint only applies when oprTok couldn't also be read as a
	// jump mnemonic -- otherwise a typo'd bare "JEQ" or "A = JEQ"
	// would silently become a data/macro reference to a symbol named
	// "JEQ" instead of the syntax error it actually is.
	if _, isJumpMnemonic := arch.Jump(oprTok); !haveJump && !isJumpMnemonic {
		if haveTarget && target == arch.TargetA {
			return nil, hintData, nil
		}
		if !haveTarget {
			return nil, hintMacroRef, nil
		}
	}

	return nil, hintNone, newError(Syntax, pos, "Invalid operation: '%s'", oprTok)
}

// parseTargets parses a comma-separated list of ALU targets ("A",
// "D", "*A"), rejecting duplicates and malformed separators.
func parseTargets(pos Position, tok string) (arch.Word, error) {
	parts := strings.Split(tok, ",")
	var result arch.Word

	for _, p := range parts {
		if p == "" {
			return 0, newError(Syntax, pos, "Invalid target: '%s'", tok)
		}
		bits, ok := arch.ParseTarget(p)
		if !ok {
			return 0, newError(Syntax, pos, "Invalid target: '%s'", p)
		}
		if result&bits != 0 {
			return 0, newError(Syntax, pos, "Invalid target: '%s'", tok)
		}
		result |= bits
	}

	return result, nil
}
