package asm

// DebugSymbol maps one emitted word back to the source line that
// produced it. It's purely diagnostic: nothing in the binary output
// format carries this information, and the emulator never sees it.
type DebugSymbol struct {
	Address int
	File    string
	Line    int
}

// AssembleWithSymbols behaves like Assemble, but additionally returns
// one DebugSymbol per emitted word. Intended for "ngc-asm -debug"'s
// listing-style report, not for anything the emulator consumes.
func AssembleWithSymbols(file *ParsedFile) ([]DebugSymbol, []int, error) {
	// Re-derive symbols from the parsed line positions in file order.
	// Since macro expansion can emit more than one word per source
	// line and the assemblers above don't thread position information
	// through recursion results, we walk the same structure a second
	// time purely to build the listing; this keeps Assemble itself
	// free of bookkeeping nothing else needs.
	var syms []DebugSymbol
	addr := 0

	var walk func(base ParsedBase, depth int) error
	walk = func(base ParsedBase, depth int) error {
		for _, line := range base.Lines {
			switch l := line.(type) {
			case InstLine, DataRefLine:
				syms = append(syms, DebugSymbol{Address: addr, File: line.Pos().File, Line: line.Pos().Line})
				addr++
			case MacroRefLine:
				if depth >= maxMacroDepth {
					return newError(Syntax, l.At, "Macro expansion nested too deeply (max %d), possible recursive macro", maxMacroDepth)
				}
				ref := base.MacroRefs[l.Ref]
				def := findMacroRefDef(file, ref.Key)
				if def != nil {
					if err := walk(def.Base, depth+1); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	if err := walk(file.Base, 0); err != nil {
		return nil, nil, err
	}

	words, err := Assemble(file)
	if err != nil {
		return nil, nil, err
	}

	out := make([]int, len(words))
	for i, w := range words {
		out[i] = int(w)
	}

	return syms, out, nil
}

func findMacroRefDef(file *ParsedFile, key string) *MacroDef {
	return findMacroDef(file.Macros, key)
}
