package asm

import (
	"github.com/iridium-isa/iridium-asm/isa"
)

// Half tags which 16-bit half of a resolved 32-bit address a label
// reference names.
type Half int

const (
	HALF_NONE  = Half(iota) // whole address; split during expansion
	HALF_UPPER              // address bits 31..16
	HALF_LOWER              // address bits 15..0
)

// Ref is a label reference operand.
type Ref struct {
	Name string
	Half Half
}

// Instr is a tokenized instruction.
type Instr struct {
	LineNo int
	Label  string // declared label, "" if none
	Mn     string // mnemonic, a key of isa.Specs
	Regs   []isa.Register
	Imm    int64
	HasImm bool
	Ref    *Ref // nil if no label operand
}

func (t *Instr) TokenLabel() string { return t.Label }
func (t *Instr) TokenLine() int     { return t.LineNo }

// Words returns the encoded size; every instruction is one word.
func (t *Instr) Words() int { return 1 }

// DataType tags a data directive.
type DataType int

const (
	DATA_INT = DataType(iota)
	DATA_LONG
	DATA_HALF
	DATA_FLOAT
	DATA_CHAR
	DATA_TEXT
	DATA_SECTION
)

// Datum is a tokenized data directive. The literal is held in the field
// matching Type; Count is the declared word count for text and section.
type Datum struct {
	LineNo int
	Label  string
	Type   DataType
	Count  int
	Int    int64    // int, long
	Float  float64  // half, float
	Str    string   // char, text
	List   []uint16 // section
}

func (d *Datum) TokenLabel() string { return d.Label }
func (d *Datum) TokenLine() int     { return d.LineNo }

// Words returns the encoded size of the datum in 16-bit words.
func (d *Datum) Words() int {
	switch d.Type {
	case DATA_LONG, DATA_FLOAT:
		return 2
	case DATA_TEXT, DATA_SECTION:
		return d.Count
	}
	return 1
}

// Token is one statement of the program, an *Instr or a *Datum.
type Token interface {
	TokenLabel() string
	TokenLine() int
	Words() int
}
