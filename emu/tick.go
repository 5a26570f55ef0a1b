package emu

import "github.com/hexaflex/ngc/arch"

// TickDelta shows the difference in machine state caused by a single
// Tick: every input that fed the instruction and every output it
// produced.
type TickDelta struct {
	In  arch.Word
	ALU arch.Word

	AIn, AOut   arch.Word
	DIn, DOut   arch.Word
	AAIn, AAOut arch.Word
	PCIn, PCOut arch.UWord
}

// Tick executes a single instruction from ROM at the current program
// counter, updating mem in place, and returns the before/after state
// of the tick.
func Tick(mem *Memory) TickDelta {
	in := mem.ROM[mem.PC]

	var delta TickDelta
	delta.In = in
	delta.AIn = mem.A
	delta.DIn = mem.D
	delta.AAIn = mem.AA()
	delta.PCIn = mem.PC

	var alu arch.Word

	if in&arch.CI != 0 {
		alu = calcALU(in, mem.A, mem.D, mem.AA())

		// Target writes happen in a fixed order -- *A, then D, then A --
		// before the jump is evaluated; the condition is tested on the
		// ALU result and a taken jump goes to the new A.
		if in&arch.TargetAA != 0 {
			mem.RAM[arch.UWord(mem.A)] = alu
		}
		if in&arch.TargetD != 0 {
			mem.D = alu
		}
		if in&arch.TargetA != 0 {
			mem.A = alu
		}

		if calcJump(in, alu) {
			mem.PC = arch.UWord(mem.A)
		} else {
			mem.PC++
		}
	} else {
		alu = 0
		mem.A = in
		mem.PC++
	}

	delta.ALU = alu
	delta.AOut = mem.A
	delta.DOut = mem.D
	delta.AAOut = mem.RAM[arch.UWord(delta.AIn)]
	delta.PCOut = mem.PC

	return delta
}

// calcALU replicates the machine's ALU: X/Y are chosen from D and
// either A or RAM[A], optionally swapped, and combined per the
// operation bits.
func calcALU(in, a, d, aa arch.Word) arch.Word {
	var x arch.Word
	if in&arch.OprZX == 0 {
		x = d
	}

	var y arch.Word
	if in&arch.AA != 0 {
		y = aa
	} else {
		y = a
	}

	if in&arch.OprSW != 0 {
		x, y = y, x
	}

	switch in & (arch.OprU | arch.OprOp1 | arch.OprOp0) {
	case arch.OprOp0:
		return x | y
	case arch.OprOp1:
		return x ^ y
	case arch.OprOp1 | arch.OprOp0:
		return ^x
	case arch.OprU:
		return x + y
	case arch.OprU | arch.OprOp0:
		return x + 1
	case arch.OprU | arch.OprOp1:
		return x - y
	case arch.OprU | arch.OprOp1 | arch.OprOp0:
		return x - 1
	default:
		return x & y
	}
}

// calcJump replicates the machine's jump-condition check against the
// ALU output.
func calcJump(in, alu arch.Word) bool {
	switch in & (arch.JumpLT | arch.JumpEQ | arch.JumpGT) {
	case arch.JumpGT:
		return alu > 0
	case arch.JumpEQ:
		return alu == 0
	case arch.JumpEQ | arch.JumpGT:
		return alu >= 0
	case arch.JumpLT:
		return alu < 0
	case arch.JumpLT | arch.JumpGT:
		return alu != 0
	case arch.JumpLT | arch.JumpEQ:
		return alu <= 0
	case arch.JumpLT | arch.JumpEQ | arch.JumpGT:
		return true
	default:
		return false
	}
}
