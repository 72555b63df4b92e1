package asm

import (
	"math"
	"unicode/utf16"

	"github.com/x448/float16"

	"github.com/iridium-isa/iridium-asm/isa"
)

// markerBytes separates the instruction and data regions of the image:
// the ASCII bytes of "data:" plus two null bytes. The loader depends on
// these exact bytes.
var markerBytes = [7]byte{0x64, 0x61, 0x74, 0x61, 0x3A, 0x00, 0x00}

// Encode packs the expanded token stream into the final image:
// big-endian instruction words, the region marker before the first
// datum, then big-endian data words. Encoding is a pure function of the
// tokens and the label table.
func Encode(tokens []Token, labels LabelTable) (out []byte, err error) {
	var inData bool

	for _, tok := range tokens {
		var words []uint16

		switch t := tok.(type) {
		case *Instr:
			var code isa.Code
			code, err = encodeInstr(t, labels)
			if err != nil {
				err = &LineError{LineNo: t.LineNo, Err: err}
				out = nil
				return
			}
			words = []uint16{uint16(code)}
		case *Datum:
			if !inData {
				inData = true
				out = append(out, markerBytes[:]...)
			}
			words = encodeDatum(t)
		}

		for _, w := range words {
			out = append(out, byte(w>>8), byte(w))
		}
	}

	return
}

// encodeInstr packs one instruction word. A remaining label reference is
// the immediate of a MOVUI/MOVLI: the half-tag selects 16 bits of the
// resolved address, and the opcode selects that half's high or low byte.
func encodeInstr(t *Instr, labels LabelTable) (code isa.Code, err error) {
	spec := isa.Specs[t.Mn]

	imm := uint16(t.Imm)
	if t.Ref != nil {
		addr, ok := labels[t.Ref.Name]
		if !ok {
			err = ErrLabelMissing(t.Ref.Name)
			return
		}
		half := uint16(addr)
		if t.Ref.Half == HALF_UPPER {
			half = uint16(addr >> 16)
		}
		imm = half & 0xFF
		if t.Mn == "MOVUI" {
			imm = half >> 8
		}
	}

	switch spec.Format {
	case isa.FORMAT_NA:
		code = isa.Code(spec.Opcode)
	case isa.FORMAT_RRR:
		code = isa.MakeRRR(spec.Opcode, t.Regs[0], t.Regs[1], t.Regs[2])
	case isa.FORMAT_RRI:
		code = isa.MakeRRI(spec.Opcode, t.Regs[0], t.Regs[1], imm)
	case isa.FORMAT_RII:
		code = isa.MakeRII(spec.Opcode, t.Regs[0], imm)
	case isa.FORMAT_ORR:
		code = isa.MakeORR(spec.Opcode, t.Regs[0], t.Regs[1])
	case isa.FORMAT_ORI:
		if spec.Regs == 0 {
			code = isa.MakeSyscall(spec.Opcode, imm)
		} else {
			code = isa.MakeORI(spec.Opcode, t.Regs[0], imm)
		}
	}

	return
}

// encodeDatum packs a datum into its word representation. Multi-word
// numeric types emit the high word first; text and section literals are
// zero-padded to their declared word count.
func encodeDatum(d *Datum) (words []uint16) {
	switch d.Type {
	case DATA_INT:
		words = []uint16{uint16(d.Int)}
	case DATA_LONG:
		v := uint32(d.Int)
		words = []uint16{uint16(v >> 16), uint16(v)}
	case DATA_HALF:
		words = []uint16{float16.Fromfloat32(float32(d.Float)).Bits()}
	case DATA_FLOAT:
		v := math.Float32bits(float32(d.Float))
		words = []uint16{uint16(v >> 16), uint16(v)}
	case DATA_CHAR:
		words = []uint16{utf16.Encode([]rune(d.Str))[0]}
	case DATA_TEXT:
		// The null terminator is part of the zero padding.
		words = make([]uint16, d.Count)
		copy(words, utf16.Encode([]rune(d.Str)))
	case DATA_SECTION:
		words = make([]uint16, d.Count)
		copy(words, d.List)
	}
	return
}
