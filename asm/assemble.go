package asm

import "github.com/hexaflex/ngc/arch"

// maxInstructions is the largest number of words a single program may
// assemble to -- one word per address in the machine's 16-bit address
// space.
const maxInstructions = int(arch.UWordMax)

// Assemble assembles a parsed file into a flat sequence of instruction
// words. Files with no macro definitions and no macro references take
// the basic (macro-free) path; anything else goes through the scoped,
// macro-expanding assembler.
func Assemble(file *ParsedFile) ([]arch.Word, error) {
	if len(file.Macros) == 0 && len(file.Base.MacroRefs) == 0 {
		return assembleBasic(file.Base)
	}
	return assembleScoped(file)
}
