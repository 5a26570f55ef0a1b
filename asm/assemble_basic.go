package asm

import "github.com/hexaflex/ngc/arch"

// assembleBasic assembles a file that contains no macros at all: every
// line is either a literal instruction or a reference to a DEFINE/LABEL
// in the same, single scope.
func assembleBasic(base ParsedBase) ([]arch.Word, error) {
	var out []arch.Word

	for _, line := range base.Lines {
		switch l := line.(type) {
		case InstLine:
			out = append(out, l.Word)

		case DataRefLine:
			def, err := lookupDataRef(base.Defs, base.Refs, l.Ref, l.At)
			if err != nil {
				return nil, err
			}
			out = append(out, arch.Word(def.Val))

		case MacroRefLine:
			return nil, newError(Failure, l.At, "Macro reference found when none expected")

		default:
			return nil, newError(Failure, line.Pos(), "Unknown line type")
		}

		if len(out) > maxInstructions {
			return nil, newError(File, line.Pos(), "File contains too many instructions (max %d)", maxInstructions)
		}
	}

	return out, nil
}

// lookupDataRef resolves refs[ref] to its DataDef in defs, by
// case-insensitive key.
func lookupDataRef(defs []DataDef, refs []string, ref int, at Position) (*DataDef, error) {
	if ref < 0 || ref >= len(refs) {
		return nil, newError(Failure, at, "Data reference index not in list: %d", ref)
	}
	key := refs[ref]

	for i := range defs {
		if arch.KeysEqual(defs[i].Key, key) {
			return &defs[i], nil
		}
	}

	return nil, newError(Syntax, at, "Data reference not defined: '%s'", key)
}
