package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validateText(text string) ([]Line, error) {
	lines, err := ScanLines(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return Validate(lines)
}

func tokenizeText(text string) ([]Token, error) {
	lines, err := validateText(text)
	if err != nil {
		return nil, err
	}
	return Tokenize(lines)
}

func TestValidLabels(t *testing.T) {
	assert := assert.New(t)

	for _, label := range []string{
		"adding_nums", "addingNums", "x", "_tmp", "add1ng_num5", "A9_z",
	} {
		lines, err := validateText(label + ": ADD $g0, $g1, $g2")
		assert.NoError(err, label)
		assert.Equal(1, len(lines))
		assert.Equal(label, lines[0].Label)
	}
}

func TestInvalidLabels(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"123adding_nums: ADD $g0, $g1, $g2",
		"9: ADD $g0, $g1, $g2",
		"adding-nums: ADD $g0, $g1, $g2",
		": ADD $g0, $g1, $g2",
	} {
		_, err := validateText(text)
		assert.ErrorIs(err, ErrSyntax, text)
	}
}

func TestLabelWithoutColonIsNotALabel(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("loop ADD $g0, $g1, $g2")
	assert.ErrorIs(err, ErrSyntax)
}

func TestLabelOnlyLineBinds(t *testing.T) {
	assert := assert.New(t)

	lines, err := validateText("start:\n\nADD $g0, $g1, $g2")
	assert.NoError(err)
	assert.Equal(1, len(lines))
	assert.Equal("start", lines[0].Label)
	assert.Equal("ADD", lines[0].Op)
}

func TestDanglingLabel(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("start:")
	assert.ErrorIs(err, ErrSyntax)

	_, err = validateText("start:\ndone: HALT")
	assert.ErrorIs(err, ErrSyntax)

	_, err = validateText("a:\nb:\nHALT")
	assert.ErrorIs(err, ErrSyntax)
}

func TestMnemonicCaseSensitive(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("add $g0, $g1, $g2")
	assert.ErrorIs(err, ErrSyntax)

	_, err = validateText("SYSCALL 19")
	assert.ErrorIs(err, ErrSyntax)

	_, err = validateText("syscall 19")
	assert.NoError(err)
}

func TestUnknownMnemonic(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("ADDUII $g0, 6")
	assert.ErrorIs(err, ErrSyntax)
}

func TestOperandShapes(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"NOP",
		"HALT",
		"ADD $g0, $g1, $g2",
		"ADDI $g0, $zero, 1",
		"MOVUI $g0, 117",
		"MOVUI $g0, @target",
		"LOAD $g5, $g8, $g9",
		"LOAD $g5, $g8, $g9, @target",
		"JUMP $g0, $g1",
		"JUMP $g0, $g1, @loop",
		"IN $g3, 0",
		"syscall 19",
	} {
		_, err := validateText(text)
		assert.NoError(err, text)
	}

	for _, text := range []string{
		"NOP $g0",
		"HALT 1",
		"ADD $g0, $g1",
		"ADD $g0, $g1, $g2, $g3",
		"ADD $g0, $g1, 5",
		"ADDI $g0, $g1, $g2",
		"ADDI $g0, 1, $g1",
		"MOVUI $g0",
		"JUMP $g0",
		"syscall",
		"syscall $g0",
	} {
		_, err := validateText(text)
		assert.ErrorIs(err, ErrOperand, text)
	}
}

func TestLabelReferenceOnlyOnAddressInstructions(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("CMP $g0, $g1, @loop")
	assert.ErrorIs(err, ErrOperand)

	_, err = validateText("ADDC $g0, $g1, @loop")
	assert.ErrorIs(err, ErrOperand)

	_, err = validateText("ADDI $g0, $g1, @loop")
	assert.ErrorIs(err, ErrOperand)
}

func TestSectionOrder(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText(".int 1")
	assert.ErrorIs(err, ErrSectionOrder)

	_, err = validateText("HALT\ndata:\nADD $g0, $g1, $g2")
	assert.ErrorIs(err, ErrSectionOrder)

	lines, err := validateText("HALT\ndata:\n.int 1")
	assert.NoError(err)
	assert.Equal(2, len(lines))
	assert.Equal(KIND_DATA, lines[1].Kind)
}

func TestBoundaryReserved(t *testing.T) {
	assert := assert.New(t)

	_, err := validateText("data: ADD $g0, $g1, $g2")
	assert.ErrorIs(err, ErrSyntax)

	_, err = validateText("data:\ndata:")
	assert.ErrorIs(err, ErrSyntax)
}

func TestDataLiteralValidation(t *testing.T) {
	assert := assert.New(t)

	for _, body := range []string{
		".int 30000",
		".int -32768",
		".int 0x7FFF",
		".long 100000",
		".half 1.5",
		".float -2.25",
		".char 'a'",
		".text 11 \"John Smith\"",
		".text 4 \"abc\"",
		".section 3 [1, 2]",
		".section 32 []",
		".section 4 [0x100, 0b11, 7]",
	} {
		_, err := validateText("data:\n" + body)
		assert.NoError(err, body)
	}

	for _, body := range []string{
		".int 40000",
		".int -40000",
		".long 3000000000",
		".half 100000",
		".char 'ab'",
		".char a",
		".text 3 \"abc\"",
		".text 4 abc",
		".text x \"abc\"",
		".section 1 [1, 2]",
		".section 2 [70000]",
		".section 2 1, 2",
	} {
		_, err := validateText("data:\n" + body)
		assert.ErrorIs(err, ErrDataFormat, body)
	}

	_, err := validateText("data:\n.word 1")
	assert.ErrorIs(err, ErrSyntax)
}

func TestCommentsIgnored(t *testing.T) {
	assert := assert.New(t)

	lines, err := validateText("; leading comment\nHALT ; trailing\ndata:\n.char ';' ; not a comment")
	assert.NoError(err)
	assert.Equal(2, len(lines))
	assert.Equal("HALT", lines[0].Op)
	assert.Equal(KIND_DATA, lines[1].Kind)
}
