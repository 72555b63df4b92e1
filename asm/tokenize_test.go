package asm

import (
	"testing"

	"github.com/iridium-isa/iridium-asm/isa"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeInstruction(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("init: ADDI $g0, $zero, 1")
	assert.NoError(err)
	assert.Equal(1, len(tokens))

	instr, ok := tokens[0].(*Instr)
	assert.True(ok)
	assert.Equal("init", instr.Label)
	assert.Equal("ADDI", instr.Mn)
	assert.Equal([]isa.Register{isa.REG_G0, isa.REG_ZERO}, instr.Regs)
	assert.True(instr.HasImm)
	assert.Equal(int64(1), instr.Imm)
	assert.Nil(instr.Ref)
}

func TestTokenizeImmediateBases(t *testing.T) {
	assert := assert.New(t)

	for text, want := range map[string]int64{
		"ADDI $g0, $zero, 7":      7,
		"ADDI $g0, $zero, 0x0A":   10,
		"ADDI $g0, $zero, 0b0010": 2,
		"MOVLI $g0, 0xFF":         255,
		"syscall 0b10011":         19,
	} {
		tokens, err := tokenizeText(text)
		assert.NoError(err, text)
		assert.Equal(want, tokens[0].(*Instr).Imm, text)
	}
}

func TestTokenizeUnknownRegister(t *testing.T) {
	assert := assert.New(t)

	_, err := tokenizeText("ADD $g0, $r1, $g2")
	assert.ErrorIs(err, ErrOperand)

	_, err = tokenizeText("ADD $g0, $G1, $g2")
	assert.ErrorIs(err, ErrOperand)
}

func TestTokenizeImmediateRange(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("ADDI $g0, $g1, 15")
	assert.NoError(err)
	assert.Equal(int64(15), tokens[0].(*Instr).Imm)

	for _, text := range []string{
		"ADDI $g0, $g1, 16",
		"ADDI $g0, $g1, -1",
		"MOVUI $g0, 600",
		"syscall 300",
		"IN $g0, 16",
	} {
		_, err := tokenizeText(text)
		assert.ErrorIs(err, ErrOperand, text)
	}
}

func TestTokenizeLabelReference(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("LOAD $g5, $g8, $g9, @target")
	assert.NoError(err)

	instr := tokens[0].(*Instr)
	assert.Equal([]isa.Register{isa.REG_G5, isa.REG_G8, isa.REG_G9}, instr.Regs)
	assert.False(instr.HasImm)
	assert.Equal(&Ref{Name: "target", Half: HALF_NONE}, instr.Ref)

	tokens, err = tokenizeText("JUMP $g0, $g1, @loop")
	assert.NoError(err)
	assert.Equal(&Ref{Name: "loop", Half: HALF_NONE}, tokens[0].(*Instr).Ref)
}

func TestTokenizeMoveReferenceDefaultsToLowerHalf(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("MOVUI $g0, @target\nMOVLI $g0, @target")
	assert.NoError(err)
	assert.Equal(2, len(tokens))
	assert.Equal(HALF_LOWER, tokens[0].(*Instr).Ref.Half)
	assert.Equal(HALF_LOWER, tokens[1].(*Instr).Ref.Half)
}

func TestTokenizeFixedWords(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("NOP\nHALT")
	assert.NoError(err)
	assert.Equal(2, len(tokens))
	assert.Equal("NOP", tokens[0].(*Instr).Mn)
	assert.Equal("HALT", tokens[1].(*Instr).Mn)
	assert.Equal(0, len(tokens[1].(*Instr).Regs))
}

func TestTokenizeData(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("HALT\ndata:\nmax: .int 30000\n.text 11 \"John Smith\"\n.section 32 []")
	assert.NoError(err)
	assert.Equal(4, len(tokens))

	datum := tokens[1].(*Datum)
	assert.Equal("max", datum.Label)
	assert.Equal(DATA_INT, datum.Type)
	assert.Equal(int64(30000), datum.Int)
	assert.Equal(1, datum.Words())

	text := tokens[2].(*Datum)
	assert.Equal(DATA_TEXT, text.Type)
	assert.Equal("John Smith", text.Str)
	assert.Equal(11, text.Words())

	section := tokens[3].(*Datum)
	assert.Equal(DATA_SECTION, section.Type)
	assert.Equal(0, len(section.List))
	assert.Equal(32, section.Words())
}

func TestTokenizeMultiWordData(t *testing.T) {
	assert := assert.New(t)

	tokens, err := tokenizeText("HALT\ndata:\n.long 100000\n.float 1.0\n.half 1.5\n.char 'A'")
	assert.NoError(err)

	assert.Equal(2, tokens[1].(*Datum).Words())
	assert.Equal(2, tokens[2].(*Datum).Words())
	assert.Equal(1, tokens[3].(*Datum).Words())
	assert.Equal(1, tokens[4].(*Datum).Words())
}
