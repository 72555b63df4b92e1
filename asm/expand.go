package asm

import (
	"github.com/iridium-isa/iridium-asm/isa"
)

// Expand rewrites every instruction carrying a whole-address label
// operand into the canonical materialization sequence: MOVUI then MOVLI
// of the address's upper half into the first involved register, MOVUI
// then MOVLI of the lower half into the second, then the instruction
// itself with the label operand dropped. The involved registers are the
// two register operands that preceded the reference. All other tokens
// pass through unchanged, in order.
//
// Expand never mutates its input; it runs exactly once per token stream.
func Expand(tokens []Token) (out []Token) {
	out = make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		t, ok := tok.(*Instr)
		if !ok || t.Ref == nil || t.Ref.Half != HALF_NONE {
			out = append(out, tok)
			continue
		}

		hi := t.Regs[len(t.Regs)-2]
		lo := t.Regs[len(t.Regs)-1]
		name := t.Ref.Name

		// The declared label moves to the first word of the sequence.
		out = append(out,
			&Instr{LineNo: t.LineNo, Label: t.Label, Mn: "MOVUI",
				Regs: []isa.Register{hi}, Ref: &Ref{Name: name, Half: HALF_UPPER}},
			&Instr{LineNo: t.LineNo, Mn: "MOVLI",
				Regs: []isa.Register{hi}, Ref: &Ref{Name: name, Half: HALF_UPPER}},
			&Instr{LineNo: t.LineNo, Mn: "MOVUI",
				Regs: []isa.Register{lo}, Ref: &Ref{Name: name, Half: HALF_LOWER}},
			&Instr{LineNo: t.LineNo, Mn: "MOVLI",
				Regs: []isa.Register{lo}, Ref: &Ref{Name: name, Half: HALF_LOWER}},
			&Instr{LineNo: t.LineNo, Mn: t.Mn, Regs: t.Regs,
				Imm: t.Imm, HasImm: t.HasImm},
		)
	}

	return
}
