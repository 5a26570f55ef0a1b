// Package emu implements the NandGame Computer instruction-set
// emulator: its memory layout and the single-instruction Tick that
// drives execution.
package emu

import "github.com/hexaflex/ngc/arch"

// Memory is the full state of a running NandGame Computer: the A and
// D registers, the program counter, and the RAM and ROM banks.
type Memory struct {
	A      arch.Word
	D      arch.Word
	PC     arch.UWord
	RAM    [65536]arch.Word
	ROM    [65536]arch.Word
	RomLen int // Number of words actually loaded into ROM.
}

// NewMemory returns a freshly initialized Memory with ROM loaded from
// program.
func NewMemory(program []arch.Word) (*Memory, error) {
	if len(program) > int(arch.UWordMax) {
		return nil, newError(File, "", "program contains too many words (max %d)", arch.UWordMax)
	}
	m := &Memory{RomLen: len(program)}
	copy(m.ROM[:], program)
	return m, nil
}

// Halted reports whether the program counter has run off the end of
// the loaded program, the run-loop's termination condition.
func (m *Memory) Halted() bool {
	return int(m.PC) >= m.RomLen
}

// Reset zeroes the A/D registers, the program counter, and RAM. ROM
// (the loaded program) is left untouched.
func (m *Memory) Reset() {
	m.A = 0
	m.D = 0
	m.PC = 0
	for i := range m.RAM {
		m.RAM[i] = 0
	}
}

// AA returns the value of RAM at the address currently held in A.
func (m *Memory) AA() arch.Word {
	return m.RAM[arch.UWord(m.A)]
}
