package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/hexaflex/ngc/arch"
)

// Limits mirrored from the reference assembler.
const (
	maxFileLines = 0x100000
	maxLineCols  = 0xFF - 2
)

type scope int

const (
	scopeFile scope = iota
	scopeMacro
)

// ParseFile parses a complete assembly source file read from r. name is
// used only to annotate error positions.
func ParseFile(name string, r io.Reader) (*ParsedFile, error) {
	file := &ParsedFile{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, maxLineCols+2), maxLineCols+2)

	cur := scopeFile
	lineNum := 0

	for sc.Scan() {
		lineNum++
		if lineNum > maxFileLines {
			return nil, newError(File, Position{name, lineNum}, "File contains too many lines (max %d)", maxFileLines)
		}

		raw := sc.Text()
		if len(raw) > maxLineCols {
			return nil, newError(File, Position{name, lineNum}, "File contains too many columns (max %d)", maxLineCols)
		}

		var target *ParsedBase
		if cur == scopeFile {
			target = &file.Base
		} else {
			target = &file.Macros[len(file.Macros)-1].Base
		}

		pos := Position{name, lineNum}
		if err := parseLine(pos, target, file, &cur, raw); err != nil {
			return nil, err
		}
	}

	if err := sc.Err(); err != nil {
		return nil, newError(File, Position{name, lineNum}, "Failed to read file: %v", err)
	}

	if cur != scopeFile {
		return nil, newError(Syntax, Position{name, lineNum}, "%%MACRO statement must have an accompanying %%END statement")
	}

	return file, nil
}

// parseLine parses a single source line into base, possibly appending
// a new macro definition to file and switching *cur into macro scope.
func parseLine(pos Position, base *ParsedBase, file *ParsedFile, cur *scope, raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed[0] == '#' {
		return nil
	}

	toks := strings.Fields(trimmed)
	first := strings.ToUpper(toks[0])

	switch first {
	case "DEFINE":
		return parseDefine(pos, base, toks)
	case "LABEL":
		return parseLabel(pos, base, toks, len(base.Lines)-len(base.MacroRefs))
	case "%MACRO":
		if *cur != scopeFile {
			return newError(Syntax, pos, "Nested %%MACRO statements not allowed")
		}
		def, err := parseMacroDef(pos, toks)
		if err != nil {
			return err
		}
		file.Macros = append(file.Macros, *def)
		*cur = scopeMacro
		return nil
	case "%END":
		if *cur != scopeMacro {
			return newError(Syntax, pos, "%%END statement must have an accompanying %%MACRO statement")
		}
		*cur = scopeFile
		return nil
	}

	// Not a directive: strip all whitespace and try the instruction
	// grammar (ALU instructions are matched on whitespace-free text).
	stripped := stripSpace(trimmed)

	line, hint, err := parseALU(pos, stripped)
	if err != nil {
		return err
	}
	if line != nil {
		base.Lines = append(base.Lines, line)
		return nil
	}

	switch hint {
	case hintData:
		return parseDataInst(pos, base, trimmed)
	case hintMacroRef:
		return parseMacroRef(pos, base, toks)
	}

	return newError(Syntax, pos, "Invalid instruction")
}

func parseKey(pos Position, tok, context string) (string, error) {
	if tok == "" {
		return "", newError(Syntax, pos, "No key given in %s", context)
	}
	if !arch.ValidKey(tok) {
		return "", newError(Syntax, pos, "Invalid key given in %s: '%s'", context, tok)
	}
	return tok, nil
}

func parseDefine(pos Position, base *ParsedBase, toks []string) error {
	if len(toks) < 2 {
		return newError(Syntax, pos, "No key given in DEFINE statement")
	}
	key, err := parseKey(pos, toks[1], "DEFINE statement")
	if err != nil {
		return err
	}

	if len(toks) < 3 {
		return newError(Syntax, pos, "No value given in DEFINE statement")
	}
	if len(toks) > 3 {
		return newError(Syntax, pos, "Invalid value given in DEFINE statement: '%s'", toks[3])
	}

	val, ok := arch.ParseNumber(toks[2])
	if !ok {
		return newError(Syntax, pos, "Invalid value given in DEFINE statement: '%s'", toks[2])
	}

	base.Defs = append(base.Defs, DataDef{Key: key, Type: DataConst, Val: int(val)})
	return nil
}

func parseLabel(pos Position, base *ParsedBase, toks []string, instNum int) error {
	if len(toks) < 2 {
		return newError(Syntax, pos, "No key given in LABEL statement")
	}
	key, err := parseKey(pos, toks[1], "LABEL statement")
	if err != nil {
		return err
	}
	if len(toks) > 2 {
		return newError(Syntax, pos, "Invalid value given in LABEL statement: '%s'", toks[2])
	}

	base.Defs = append(base.Defs, DataDef{Key: key, Type: DataLabel, Val: instNum})
	return nil
}

func parseMacroDef(pos Position, toks []string) (*MacroDef, error) {
	if len(toks) < 2 {
		return nil, newError(Syntax, pos, "No key given in %%MACRO statement")
	}
	key, err := parseKey(pos, toks[1], "%MACRO statement")
	if err != nil {
		return nil, err
	}

	def := &MacroDef{Key: key}
	for _, tok := range toks[2:] {
		param, err := parseKey(pos, tok, "%MACRO statement")
		if err != nil {
			return nil, err
		}
		for _, p := range def.Params {
			if arch.KeysEqual(p, param) {
				return nil, newError(Syntax, pos, "Duplicate parameters given in %%MACRO statement: '%s'", tok)
			}
		}
		def.Params = append(def.Params, param)
	}

	return def, nil
}

func parseMacroRef(pos Position, base *ParsedBase, toks []string) error {
	if len(toks) < 1 {
		return newError(Syntax, pos, "No key given in macro reference")
	}
	key, err := parseKey(pos, toks[0], "macro reference")
	if err != nil {
		return err
	}

	ref := MacroRef{Key: key}
	for _, tok := range toks[1:] {
		if v, ok := arch.ParseNumber(tok); ok {
			ref.Params = append(ref.Params, MacroParamRef{Type: ParamConst, Val: int(v)})
			continue
		}

		refKey, err := parseKey(pos, tok, "macro reference")
		if err != nil {
			return err
		}
		ref.Params = append(ref.Params, MacroParamRef{Type: ParamRefData, Val: pushDataRef(base, refKey)})
	}

	base.MacroRefs = append(base.MacroRefs, ref)
	base.Lines = append(base.Lines, MacroRefLine{At: pos, Ref: len(base.MacroRefs) - 1})
	return nil
}

func parseDataInst(pos Position, base *ParsedBase, trimmed string) error {
	eq := strings.IndexByte(trimmed, '=')
	if eq < 0 {
		return newError(Syntax, pos, "Invalid instruction")
	}

	data := strings.TrimSpace(trimmed[eq+1:])

	if v, ok := arch.ParseNumber(data); ok {
		base.Lines = append(base.Lines, InstLine{At: pos, Word: arch.Word(v)})
		return nil
	}

	if !arch.ValidKey(data) {
		return newError(Syntax, pos, "Invalid operation: '%s'", data)
	}

	base.Lines = append(base.Lines, DataRefLine{At: pos, Ref: pushDataRef(base, data)})
	return nil
}

// pushDataRef finds or appends a data-reference key, returning its index.
func pushDataRef(base *ParsedBase, key string) int {
	for i, k := range base.Refs {
		if arch.KeysEqual(k, key) {
			return i
		}
	}
	base.Refs = append(base.Refs, key)
	return len(base.Refs) - 1
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
