package isa

import (
	"fmt"
	"strings"
)

// Format is the bit-field layout of an instruction word.
type Format int

const (
	FORMAT_NA  = Format(iota) // fixed word, no operand fields
	FORMAT_RRR                // opcode(4) rd(4) rs(4) rt(4)
	FORMAT_RRI                // opcode(4) rd(4) rs(4) imm(4)
	FORMAT_RII                // opcode(4) rd(4) imm(8)
	FORMAT_ORR                // opcode(8) rd(4) rs(4)
	FORMAT_ORI                // opcode(8) rd(4) imm(4), or opcode(8) imm(8) when Regs is 0
)

// Spec describes the operand shape and encoding of one mnemonic.
type Spec struct {
	Format   Format
	Opcode   uint16 // opcode bits, pre-shifted into the word
	Regs     int    // register operand count
	ImmBits  int    // immediate field width, 0 if no immediate operand
	RefLegal bool   // a @label operand is legal in the final position
}

// Specs is the closed mnemonic table. Mnemonics are case-sensitive;
// syscall is the only lowercase one.
var Specs = map[string]Spec{
	"NOP":     {Format: FORMAT_NA, Opcode: 0x0000},
	"ADD":     {Format: FORMAT_RRR, Opcode: 0x1000, Regs: 3},
	"SUB":     {Format: FORMAT_RRR, Opcode: 0x2000, Regs: 3},
	"ADDI":    {Format: FORMAT_RRI, Opcode: 0x3000, Regs: 2, ImmBits: 4},
	"SUBI":    {Format: FORMAT_RRI, Opcode: 0x4000, Regs: 2, ImmBits: 4},
	"SLL":     {Format: FORMAT_RRR, Opcode: 0x5000, Regs: 3},
	"SRL":     {Format: FORMAT_RRR, Opcode: 0x6000, Regs: 3},
	"SRA":     {Format: FORMAT_RRR, Opcode: 0x7000, Regs: 3},
	"NAND":    {Format: FORMAT_RRR, Opcode: 0x8000, Regs: 3},
	"OR":      {Format: FORMAT_RRR, Opcode: 0x9000, Regs: 3},
	"LOAD":    {Format: FORMAT_RRR, Opcode: 0xA000, Regs: 3, RefLegal: true},
	"STORE":   {Format: FORMAT_RRR, Opcode: 0xB000, Regs: 3, RefLegal: true},
	"MOVUI":   {Format: FORMAT_RII, Opcode: 0xC000, Regs: 1, ImmBits: 8, RefLegal: true},
	"MOVLI":   {Format: FORMAT_RII, Opcode: 0xD000, Regs: 1, ImmBits: 8, RefLegal: true},
	"ADDC":    {Format: FORMAT_ORR, Opcode: 0xF000, Regs: 2},
	"SUBC":    {Format: FORMAT_ORR, Opcode: 0xF100, Regs: 2},
	"JUMP":    {Format: FORMAT_ORR, Opcode: 0xF200, Regs: 2, RefLegal: true},
	"JAL":     {Format: FORMAT_ORR, Opcode: 0xF300, Regs: 2, RefLegal: true},
	"CMP":     {Format: FORMAT_ORR, Opcode: 0xF400, Regs: 2},
	"BEQ":     {Format: FORMAT_ORR, Opcode: 0xF500, Regs: 2, RefLegal: true},
	"BNE":     {Format: FORMAT_ORR, Opcode: 0xF600, Regs: 2, RefLegal: true},
	"BLT":     {Format: FORMAT_ORR, Opcode: 0xF700, Regs: 2, RefLegal: true},
	"BGT":     {Format: FORMAT_ORR, Opcode: 0xF800, Regs: 2, RefLegal: true},
	"IN":      {Format: FORMAT_ORI, Opcode: 0xF900, Regs: 1, ImmBits: 4},
	"OUT":     {Format: FORMAT_ORI, Opcode: 0xFA00, Regs: 1, ImmBits: 4},
	"syscall": {Format: FORMAT_ORI, Opcode: 0xFC00, Regs: 0, ImmBits: 8},
	"HALT":    {Format: FORMAT_NA, Opcode: 0xFFFF},
}

// Code is a single encoded instruction word.
type Code uint16

// MakeRRR packs an opcode(4) rd(4) rs(4) rt(4) word.
func MakeRRR(op uint16, rd, rs, rt Register) Code {
	return Code(op | uint16(rd)<<8 | uint16(rs)<<4 | uint16(rt))
}

// MakeRRI packs an opcode(4) rd(4) rs(4) imm(4) word.
func MakeRRI(op uint16, rd, rs Register, imm uint16) Code {
	return Code(op | uint16(rd)<<8 | uint16(rs)<<4 | imm&0xF)
}

// MakeRII packs an opcode(4) rd(4) imm(8) word.
func MakeRII(op uint16, rd Register, imm uint16) Code {
	return Code(op | uint16(rd)<<8 | imm&0xFF)
}

// MakeORR packs an opcode(8) rd(4) rs(4) word.
func MakeORR(op uint16, rd, rs Register) Code {
	return Code(op | uint16(rd)<<4 | uint16(rs))
}

// MakeORI packs an opcode(8) rd(4) imm(4) word.
func MakeORI(op uint16, rd Register, imm uint16) Code {
	return Code(op | uint16(rd)<<4 | imm&0xF)
}

// MakeSyscall packs the register-free opcode(8) imm(8) word.
func MakeSyscall(op uint16, imm uint16) Code {
	return Code(op | imm&0xFF)
}

// RRRDecode returns the three register fields.
func (c Code) RRRDecode() (rd, rs, rt Register) {
	rd = Register((c >> 8) & 0xF)
	rs = Register((c >> 4) & 0xF)
	rt = Register(c & 0xF)
	return
}

// RRIDecode returns the two register fields and the 4-bit immediate.
func (c Code) RRIDecode() (rd, rs Register, imm uint16) {
	rd = Register((c >> 8) & 0xF)
	rs = Register((c >> 4) & 0xF)
	imm = uint16(c & 0xF)
	return
}

// RIIDecode returns the register field and the 8-bit immediate.
func (c Code) RIIDecode() (rd Register, imm uint16) {
	rd = Register((c >> 8) & 0xF)
	imm = uint16(c & 0xFF)
	return
}

// ORRDecode returns the two register fields.
func (c Code) ORRDecode() (rd, rs Register) {
	rd = Register((c >> 4) & 0xF)
	rs = Register(c & 0xF)
	return
}

// ORIDecode returns the register field and the 4-bit immediate.
func (c Code) ORIDecode() (rd Register, imm uint16) {
	rd = Register((c >> 4) & 0xF)
	imm = uint16(c & 0xF)
	return
}

// SyscallDecode returns the 8-bit immediate of a register-free word.
func (c Code) SyscallDecode() (imm uint16) {
	imm = uint16(c & 0xFF)
	return
}

// MnemonicOf returns the mnemonic whose opcode bits match the word.
func MnemonicOf(c Code) (name string, spec Spec, ok bool) {
	for n, s := range Specs {
		switch {
		case s.Format == FORMAT_NA:
			ok = uint16(c) == s.Opcode
		case s.Opcode&0xF000 == 0xF000:
			ok = uint16(c)&0xFF00 == s.Opcode
		default:
			ok = uint16(c)&0xF000 == s.Opcode
		}
		if ok {
			name = n
			spec = s
			return
		}
	}
	return
}

// String returns the word in source form, or its hex value when the
// opcode bits match no mnemonic.
func (c Code) String() (out string) {
	name, spec, ok := MnemonicOf(c)
	if !ok {
		return fmt.Sprintf("0x%04x", uint16(c))
	}

	var args []string
	switch spec.Format {
	case FORMAT_RRR:
		rd, rs, rt := c.RRRDecode()
		args = []string{rd.String(), rs.String(), rt.String()}
	case FORMAT_RRI:
		rd, rs, imm := c.RRIDecode()
		args = []string{rd.String(), rs.String(), fmt.Sprintf("%d", imm)}
	case FORMAT_RII:
		rd, imm := c.RIIDecode()
		args = []string{rd.String(), fmt.Sprintf("%d", imm)}
	case FORMAT_ORR:
		rd, rs := c.ORRDecode()
		args = []string{rd.String(), rs.String()}
	case FORMAT_ORI:
		if spec.Regs == 0 {
			args = []string{fmt.Sprintf("%d", c.SyscallDecode())}
		} else {
			rd, imm := c.ORIDecode()
			args = []string{rd.String(), fmt.Sprintf("%d", imm)}
		}
	}

	out = name
	if len(args) > 0 {
		out += " " + strings.Join(args, ", ")
	}
	return
}
