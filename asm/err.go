package asm

import (
	"errors"

	"github.com/iridium-isa/iridium-asm/translate"
)

var f = translate.From

// Error categories. Every diagnostic raised by the pipeline matches
// exactly one of these under errors.Is.
var (
	ErrSyntax          = errors.New(f("syntax error"))
	ErrOperand         = errors.New(f("operand error"))
	ErrDataFormat      = errors.New(f("data format error"))
	ErrSectionOrder    = errors.New(f("section order error"))
	ErrDuplicateLabel  = errors.New(f("duplicate label"))
	ErrUnresolvedLabel = errors.New(f("unresolved label"))
)

// LineError wraps a diagnostic with its originating source position.
type LineError struct {
	LineNo int
	Line   string
	Err    error
}

func (err *LineError) Error() string {
	if len(err.Line) == 0 {
		return f("line %d: %v", err.LineNo, err.Err)
	}
	return f("line %d '%v': %v", err.LineNo, err.Line, err.Err)
}

func (err *LineError) Unwrap() error {
	return err.Err
}

type ErrLabelMalformed string

func (err ErrLabelMalformed) Error() string {
	return f("'%v' is not a valid label name", string(err))
}

func (err ErrLabelMalformed) Is(target error) bool {
	return target == ErrSyntax
}

type ErrLabelDangling string

func (err ErrLabelDangling) Error() string {
	return f("label '%v' is not followed by an instruction or datum", string(err))
}

func (err ErrLabelDangling) Is(target error) bool {
	return target == ErrSyntax
}

type ErrLabelReserved string

func (err ErrLabelReserved) Error() string {
	return f("'%v' is reserved for the section boundary", string(err))
}

func (err ErrLabelReserved) Is(target error) bool {
	return target == ErrSyntax
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("'%v' is not a recognized mnemonic", string(err))
}

func (err ErrMnemonicUnknown) Is(target error) bool {
	return target == ErrSyntax
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrExpression) Is(target error) bool {
	return target == ErrSyntax
}

type ErrDirectiveUnknown string

func (err ErrDirectiveUnknown) Error() string {
	return f("'%v' is not a recognized data directive", string(err))
}

func (err ErrDirectiveUnknown) Is(target error) bool {
	return target == ErrSyntax
}

type ErrOperandCount struct {
	Mn   string
	Want string
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %v operands, got %d", err.Mn, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrOperand
}

type ErrOperandKind struct {
	Mn      string
	Operand string
	Want    string
}

func (err ErrOperandKind) Error() string {
	return f("%v: operand '%v' is not %v", err.Mn, err.Operand, err.Want)
}

func (err ErrOperandKind) Is(target error) bool {
	return target == ErrOperand
}

type ErrRefIllegal string

func (err ErrRefIllegal) Error() string {
	return f("%v does not take a label reference", string(err))
}

func (err ErrRefIllegal) Is(target error) bool {
	return target == ErrOperand
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegisterUnknown) Is(target error) bool {
	return target == ErrOperand
}

type ErrNumberMalformed string

func (err ErrNumberMalformed) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrNumberMalformed) Is(target error) bool {
	return target == ErrOperand
}

type ErrImmediateRange struct {
	Value int64
	Bits  int
}

func (err ErrImmediateRange) Error() string {
	return f("immediate %d does not fit in %d bits", err.Value, err.Bits)
}

func (err ErrImmediateRange) Is(target error) bool {
	return target == ErrOperand
}

type ErrDataBeforeBoundary string

func (err ErrDataBeforeBoundary) Error() string {
	return f("%v before the data: boundary", string(err))
}

func (err ErrDataBeforeBoundary) Is(target error) bool {
	return target == ErrSectionOrder
}

type ErrInstrAfterBoundary string

func (err ErrInstrAfterBoundary) Error() string {
	return f("%v after the data: boundary", string(err))
}

func (err ErrInstrAfterBoundary) Is(target error) bool {
	return target == ErrSectionOrder
}

type ErrLiteralMalformed struct {
	Directive string
	Literal   string
}

func (err ErrLiteralMalformed) Error() string {
	return f("%v: malformed literal '%v'", err.Directive, err.Literal)
}

func (err ErrLiteralMalformed) Is(target error) bool {
	return target == ErrDataFormat
}

type ErrLiteralRange struct {
	Directive string
	Literal   string
}

func (err ErrLiteralRange) Error() string {
	return f("%v: literal '%v' out of range", err.Directive, err.Literal)
}

func (err ErrLiteralRange) Is(target error) bool {
	return target == ErrDataFormat
}

type ErrLiteralWidth struct {
	Directive string
	Need      int
	Declared  int
}

func (err ErrLiteralWidth) Error() string {
	return f("%v: literal needs %d words, %d declared", err.Directive, err.Need, err.Declared)
}

func (err ErrLiteralWidth) Is(target error) bool {
	return target == ErrDataFormat
}

type ErrLabelTwice string

func (err ErrLabelTwice) Error() string {
	return f("label '%v' declared twice", string(err))
}

func (err ErrLabelTwice) Is(target error) bool {
	return target == ErrDuplicateLabel
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label '%v' is never declared", string(err))
}

func (err ErrLabelMissing) Is(target error) bool {
	return target == ErrUnresolvedLabel
}
