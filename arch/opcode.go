package arch

// Instruction encoding bits. An instruction word is either a data
// instruction (bit 15 clear, bits 0-14 a 15-bit unsigned immediate)
// or an ALU instruction (bit 15 set).
const (
	CI       = Word(1 << 15) // Set: ALU instruction. Clear: data instruction.
	AA       = Word(1 << 12) // Use RAM[A] instead of A as the Y input.
	OprU     = Word(1 << 10)
	OprOp1   = Word(1 << 9)
	OprOp0   = Word(1 << 8)
	OprZX    = Word(1 << 7) // Zero the D input.
	OprSW    = Word(1 << 6) // Swap X and Y inputs.
	TargetA  = Word(1 << 5)
	TargetD  = Word(1 << 4)
	TargetAA = Word(1 << 3)
	JumpLT   = Word(1 << 2)
	JumpEQ   = Word(1 << 1)
	JumpGT   = Word(1 << 0)
)

// Bits 13 and 14 are always set on an ALU instruction; this reproduces
// a quirk of the hardware's instruction decoder that the assembler
// must OR into every ALU word it emits.
const AlwaysSet = Word(1<<14 | 1<<13)

// NEG1 is the operand encoding for the literal "-1", the only operand
// expression whose bits don't decompose cleanly from the others.
const NEG1 = OprU | OprOp1 | OprOp0 | OprZX

// opr maps an ALU operand expression to its encoded U/Op1/Op0/ZX/SW/AA
// bits. Order matches the reference assembler's dispatch table.
type opr struct {
	expr string
	bits Word
}

// oprTable holds the 30 ALU operand expressions the assembler accepts.
// Expression text is matched case-sensitively against the literal
// spellings below.
var oprTable = []opr{
	{"0", OprZX},
	{"1", OprU | OprOp0 | OprZX},
	{"-1", NEG1},
	{"A", OprU | OprZX},
	{"-A", OprU | OprOp1 | OprZX},
	{"~A", OprOp1 | OprOp0 | OprSW},
	{"A+1", OprU | OprOp0 | OprSW},
	{"A-1", OprU | OprOp1 | OprOp0 | OprSW},
	{"A-D", OprU | OprOp1 | OprSW},
	{"D", OprU | OprZX | OprSW},
	{"-D", OprU | OprOp1 | OprZX | OprSW},
	{"~D", OprOp1 | OprOp0},
	{"D+1", OprU | OprOp0},
	{"D-1", OprU | OprOp1 | OprOp0},
	{"D+A", OprU},
	{"D+*A", AA | OprU},
	{"D-A", OprU | OprOp1},
	{"D-*A", AA | OprU | OprOp1},
	{"D&A", 0},
	{"D&*A", AA},
	{"D|A", OprOp0},
	{"D|*A", AA | OprOp0},
	{"D^A", OprOp1},
	{"D^*A", AA | OprOp1},
	{"*A", AA | OprU | OprZX},
	{"-*A", AA | OprU | OprOp1 | OprZX},
	{"~*A", AA | OprOp1 | OprOp0 | OprSW},
	{"*A+1", AA | OprU | OprOp0 | OprSW},
	{"*A-1", AA | OprU | OprOp1 | OprOp0 | OprSW},
	{"*A-D", AA | OprU | OprOp1 | OprSW},
}

// Opr returns the encoded operand bits for the given ALU expression.
// Returns false if expr does not match one of the 30 known operand
// expressions.
func Opr(expr string) (Word, bool) {
	for _, o := range oprTable {
		if o.expr == expr {
			return o.bits, true
		}
	}
	return 0, false
}

// jmp maps a jump mnemonic to its encoded condition bits.
type jmp struct {
	name string
	bits Word
}

// jmpTable holds the 6 conditional jump mnemonics plus the
// unconditional JMP. JMP shares its bit pattern with the 3 condition
// flags all being set, but is also recognized as a bare, target-less
// whole-line instruction (see asm/parse.go).
var jmpTable = []jmp{
	{"JGT", JumpGT},
	{"JEQ", JumpEQ},
	{"JGE", JumpEQ | JumpGT},
	{"JLT", JumpLT},
	{"JNE", JumpLT | JumpGT},
	{"JLE", JumpLT | JumpEQ},
	{"JMP", JumpLT | JumpEQ | JumpGT},
}

// Jump returns the encoded jump-condition bits for the given mnemonic.
// Returns false if name is not one of the 7 known jump mnemonics.
func Jump(name string) (Word, bool) {
	for _, j := range jmpTable {
		if j.name == name {
			return j.bits, true
		}
	}
	return 0, false
}

// ParseTarget returns the encoded target bit for a single target token
// ("A", "D", or "*A"), matched case-sensitively.
func ParseTarget(tok string) (Word, bool) {
	switch tok {
	case "A":
		return TargetA, true
	case "D":
		return TargetD, true
	case "*A":
		return TargetAA, true
	}
	return 0, false
}
