package isa

import (
	"fmt"
)

// Register is an index into the 16-entry register file.
type Register uint8

const (
	REG_ZERO = Register(0x0) // zero
	REG_G0   = Register(0x1) // g0
	REG_G1   = Register(0x2) // g1
	REG_G2   = Register(0x3) // g2
	REG_G3   = Register(0x4) // g3
	REG_G4   = Register(0x5) // g4
	REG_G5   = Register(0x6) // g5
	REG_G6   = Register(0x7) // g6
	REG_G7   = Register(0x8) // g7
	REG_G8   = Register(0x9) // g8
	REG_G9   = Register(0xA) // g9
	REG_UA   = Register(0xB) // ua
	REG_SP   = Register(0xC) // sp
	REG_FP   = Register(0xD) // fp
	REG_RA   = Register(0xE) // ra
	REG_PC   = Register(0xF) // pc
)

// registerNames lists the register names in index order.
var registerNames = [16]string{
	"zero", "g0", "g1", "g2", "g3", "g4", "g5", "g6",
	"g7", "g8", "g9", "ua", "sp", "fp", "ra", "pc",
}

// RegisterByName maps bare register names (sigil stripped) to indexes.
var RegisterByName = map[string]Register{
	"zero": REG_ZERO,
	"g0":   REG_G0,
	"g1":   REG_G1,
	"g2":   REG_G2,
	"g3":   REG_G3,
	"g4":   REG_G4,
	"g5":   REG_G5,
	"g6":   REG_G6,
	"g7":   REG_G7,
	"g8":   REG_G8,
	"g9":   REG_G9,
	"ua":   REG_UA,
	"sp":   REG_SP,
	"fp":   REG_FP,
	"ra":   REG_RA,
	"pc":   REG_PC,
}

// String returns the register in source form, sigil included.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return "$" + registerNames[r]
	}
	return fmt.Sprintf("$%#x", uint8(r))
}
