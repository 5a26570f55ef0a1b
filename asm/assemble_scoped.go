package asm

import "github.com/hexaflex/ngc/arch"

// maxMacroDepth bounds recursive macro expansion. The reference
// assembler performs no cycle detection at all and a self-referencing
// macro simply recurses until the process stack overflows; this is a
// defect worth fixing rather than replicating; a self-referencing
// macro is rejected with a Syntax error instead.
const maxMacroDepth = 256

// scope is the macro-expansion environment a run of lines is assembled
// under: the data definitions visible to it, the macro definitions it
// may call, and the running program-counter offset contributed by
// macro expansions assembled earlier in the enclosing scope.
type scope struct {
	defs     []DataDef
	macros   []MacroDef
	pcOffset int
	depth    int
}

// assembleScoped assembles a file that defines or references macros,
// recursively expanding each macro call in its own nested scope.
func assembleScoped(file *ParsedFile) ([]arch.Word, error) {
	sc := scope{defs: file.Base.Defs, macros: file.Macros, pcOffset: 0}
	var out []arch.Word
	if err := assembleParsed(&out, file.Base, sc); err != nil {
		return nil, err
	}
	return out, nil
}

// assembleParsed assembles one scope's lines (the file body, or a
// single macro body) into out, recursively expanding any macro calls
// it contains.
func assembleParsed(out *[]arch.Word, base ParsedBase, sc scope) error {
	for _, line := range base.Lines {
		switch l := line.(type) {
		case InstLine:
			*out = append(*out, l.Word)

		case DataRefLine:
			val, err := assembleDataRef(sc.pcOffset, sc.defs, base.Refs, l.Ref, l.At)
			if err != nil {
				return err
			}
			*out = append(*out, arch.Word(val))

		case MacroRefLine:
			if sc.depth >= maxMacroDepth {
				return newError(Syntax, l.At, "Macro expansion nested too deeply (max %d), possible recursive macro", maxMacroDepth)
			}

			ref := base.MacroRefs[l.Ref]

			def := findMacroDef(sc.macros, ref.Key)
			if def == nil {
				return newError(Syntax, l.At, "Macro reference not defined: '%s'", ref.Key)
			}

			macroDefs, err := assembleMacroDefsData(*def, ref, sc, base.Refs, l.At)
			if err != nil {
				return err
			}

			macroScope := scope{defs: macroDefs, macros: sc.macros, pcOffset: sc.pcOffset, depth: sc.depth + 1}

			before := len(*out)
			if err := assembleParsed(out, def.Base, macroScope); err != nil {
				return err
			}
			sc.pcOffset += len(*out) - before

		default:
			return newError(Failure, line.Pos(), "Unknown line type")
		}

		if len(*out) > maxInstructions {
			return newError(File, line.Pos(), "File contains too many instructions (max %d)", maxInstructions)
		}
	}

	return nil
}

// assembleDataRef resolves refs[ref] against the data definitions
// visible in the current scope, adjusting LABEL values by pcOffset.
func assembleDataRef(pcOffset int, defs []DataDef, refs []string, ref int, at Position) (int, error) {
	if ref < 0 || ref >= len(refs) {
		return 0, newError(Failure, at, "Data reference index not in list: %d", ref)
	}
	key := refs[ref]

	def := findDataDef(defs, key)
	if def == nil {
		return 0, newError(Syntax, at, "Data reference not defined: '%s'", key)
	}

	switch def.Type {
	case DataConst:
		return def.Val, nil
	case DataLabel:
		return def.Val + pcOffset, nil
	default:
		return 0, newError(Failure, at, "Unknown data definition type: %d", def.Type)
	}
}

// assembleMacroDefsData builds the list of data definitions visible
// inside one macro call: the call's own arguments (bound to the
// macro's parameter names), shadowing the macro body's own DEFINE/
// LABEL statements, shadowing the caller's scope. Lookups are a linear
// scan that stops at the first match, so this order is what
// implements the shadowing.
func assembleMacroDefsData(def MacroDef, ref MacroRef, sc scope, callerRefs []string, at Position) ([]DataDef, error) {
	if len(ref.Params) < len(def.Params) {
		return nil, newError(Syntax, at, "Macro reference has %d parameter(s) fewer than required: '%s'", len(def.Params)-len(ref.Params), def.Key)
	}
	if len(ref.Params) > len(def.Params) {
		return nil, newError(Syntax, at, "Macro reference has %d parameter(s) more than required: '%s'", len(ref.Params)-len(def.Params), def.Key)
	}

	var out []DataDef

	for i, param := range def.Params {
		p := ref.Params[i]
		d := DataDef{Key: param, Type: DataConst}

		switch p.Type {
		case ParamConst:
			d.Val = p.Val
		case ParamRefData:
			v, err := assembleDataRef(sc.pcOffset, sc.defs, callerRefs, p.Val, at)
			if err != nil {
				return nil, err
			}
			d.Val = v
		default:
			return nil, newError(Failure, at, "Unknown parameter reference type: %d", p.Type)
		}

		out = append(out, d)
	}

	out = append(out, def.Base.Defs...)
	out = append(out, sc.defs...)

	return out, nil
}

func findDataDef(defs []DataDef, key string) *DataDef {
	for i := range defs {
		if arch.KeysEqual(defs[i].Key, key) {
			return &defs[i]
		}
	}
	return nil
}

func findMacroDef(macros []MacroDef, key string) *MacroDef {
	for i := range macros {
		if arch.KeysEqual(macros[i].Key, key) {
			return &macros[i]
		}
	}
	return nil
}
