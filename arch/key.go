package arch

import "strings"

// MaxKeyLen is the maximum length of a DEFINE/LABEL name, macro name,
// or macro parameter name.
const MaxKeyLen = 63

// ValidKey reports whether tok can be used as a key (a DEFINE/LABEL
// name, macro name, or macro parameter name).
//
// A key must start with a letter or a period, consist only of letters,
// digits, underscores and periods thereafter, and must not exceed
// MaxKeyLen characters. The single-character names "A" and "D" are
// reserved for ALU targets/operands and cannot be used as keys; the
// lowercase "a" and "d" never collide with those (targets/operands are
// matched case-sensitively against the uppercase spellings only) and
// are valid keys.
func ValidKey(tok string) bool {
	if tok == "" {
		return false
	}

	first := tok[0]
	if !isAlpha(first) && first != '.' {
		return false
	}

	if len(tok) > MaxKeyLen {
		return false
	}

	if len(tok) == 1 && (tok[0] == 'A' || tok[0] == 'D') {
		return false
	}

	for i := 1; i < len(tok); i++ {
		c := tok[i]
		if !isAlpha(c) && !isDigit(c) && c != '_' && c != '.' {
			return false
		}
	}

	return true
}

// KeysEqual reports whether two keys refer to the same symbol. Keys
// are compared case-insensitively.
func KeysEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
