package asm

import (
	"strconv"

	"github.com/hexaflex/ngc/arch"
)

// Position identifies a single line of an assembly source file.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return p.File + ":" + strconv.Itoa(p.Line)
}

// Line is a single parsed line of assembly. It is a tagged union over
// InstLine, DataRefLine and MacroRefLine: the first two each produce
// exactly one instruction word, a MacroRefLine produces the words of
// its macro's expansion.
type Line interface {
	line()
	Pos() Position
}

// InstLine is a line that was fully resolved to an instruction word
// at parse time (a literal ALU instruction, or a data instruction with
// a literal numeric value).
type InstLine struct {
	At   Position
	Word arch.Word
}

func (InstLine) line()          {}
func (l InstLine) Pos() Position { return l.At }

// DataRefLine is a data instruction ("A = someKey") whose value must be
// looked up from the enclosing scope's data definitions at assembly
// time. Ref indexes into ParsedBase.Refs.
type DataRefLine struct {
	At  Position
	Ref int
}

func (DataRefLine) line()          {}
func (l DataRefLine) Pos() Position { return l.At }

// MacroRefLine is a macro invocation. Ref indexes into
// ParsedBase.MacroRefs.
type MacroRefLine struct {
	At  Position
	Ref int
}

func (MacroRefLine) line()          {}
func (l MacroRefLine) Pos() Position { return l.At }

// DataDefType distinguishes a DEFINE constant from a LABEL address.
type DataDefType int

const (
	// DataConst is a DEFINE statement: a fixed, literal value.
	DataConst DataDefType = iota
	// DataLabel is a LABEL statement: an instruction offset, relative
	// to the scope it was defined in, that must be adjusted by the
	// macro-expansion program-counter offset at assembly time.
	DataLabel
)

// DataDef is a DEFINE or LABEL statement.
type DataDef struct {
	Key  string
	Type DataDefType
	Val  int // literal value (DataConst) or instruction offset (DataLabel)
}

// MacroParamType distinguishes a literal constant passed to a macro
// call from a reference to a data definition.
type MacroParamType int

const (
	ParamConst MacroParamType = iota
	ParamRefData
)

// MacroParamRef is a single argument in a macro call.
type MacroParamRef struct {
	Type MacroParamType
	Val  int // literal value (ParamConst) or index into Refs (ParamRefData)
}

// MacroRef is a single macro invocation, e.g. "mymacro 1 x".
type MacroRef struct {
	Key    string
	Params []MacroParamRef
}

// ParsedBase holds the parsed contents of one lexical scope: either
// the top-level file, or the body of a single macro definition.
type ParsedBase struct {
	Lines     []Line
	Refs      []string    // data-reference keys, referenced by DataRefLine.Ref
	MacroRefs []MacroRef  // macro invocations, referenced by MacroRefLine.Ref
	Defs      []DataDef   // DEFINE/LABEL statements local to this scope
}

// MacroDef is a %MACRO ... %END block.
type MacroDef struct {
	Key    string
	Params []string
	Base   ParsedBase
}

// ParsedFile is the full result of parsing one assembly source file.
type ParsedFile struct {
	Base   ParsedBase
	Macros []MacroDef
}
