package asm

import (
	"strconv"
	"strings"

	"github.com/iridium-isa/iridium-asm/isa"
)

// Tokenize converts validated lines into instruction and data tokens.
// Register names are resolved here; a name that passed the validator's
// sigil check can still fail against the register table.
func Tokenize(lines []Line) (tokens []Token, err error) {
	for _, ln := range lines {
		var tok Token

		switch ln.Kind {
		case KIND_INSTR:
			tok, err = tokenizeInstr(ln)
		case KIND_DATA:
			var d *Datum
			d, err = parseDatumBody(ln.Op, ln.Body)
			if err == nil {
				d.LineNo = ln.No
				d.Label = ln.Label
				tok = d
			}
		}
		if err != nil {
			err = &LineError{LineNo: ln.No, Line: ln.Text, Err: err}
			tokens = nil
			return
		}

		tokens = append(tokens, tok)
	}
	return
}

// tokenizeInstr resolves an instruction line's operands into typed
// values. A label reference keeps its name; instructions that take a
// whole address carry no half-tag until expansion, while a direct
// reference on MOVUI/MOVLI names the lower half.
func tokenizeInstr(ln Line) (t *Instr, err error) {
	spec := isa.Specs[ln.Op]
	t = &Instr{LineNo: ln.No, Label: ln.Label, Mn: ln.Op}

	for _, op := range ln.Operands {
		switch {
		case strings.HasPrefix(op, "$"):
			reg, ok := isa.RegisterByName[op[1:]]
			if !ok {
				err = ErrRegisterUnknown(op)
				return
			}
			t.Regs = append(t.Regs, reg)

		case strings.HasPrefix(op, "@"):
			half := HALF_NONE
			if spec.Format == isa.FORMAT_RII {
				half = HALF_LOWER
			}
			t.Ref = &Ref{Name: op[1:], Half: half}

		default:
			var v int64
			v, err = parseNumber(op)
			if err != nil {
				return
			}
			if v < 0 || v >= 1<<spec.ImmBits {
				err = ErrImmediateRange{Value: v, Bits: spec.ImmBits}
				return
			}
			t.Imm = v
			t.HasImm = true
		}
	}

	return
}

// parseNumber parses a decimal, 0x hexadecimal, or 0b binary integer.
func parseNumber(text string) (value int64, err error) {
	t := strings.TrimPrefix(text, "-")
	base := 10
	switch {
	case strings.HasPrefix(t, "0x"):
		base, t = 16, t[2:]
	case strings.HasPrefix(t, "0b"):
		base, t = 2, t[2:]
	}

	value, perr := strconv.ParseInt(t, base, 64)
	if perr != nil {
		value = 0
		err = ErrNumberMalformed(text)
		return
	}
	if strings.HasPrefix(text, "-") {
		value = -value
	}
	return
}

// numberValid reports whether text parses as an immediate literal.
func numberValid(text string) bool {
	_, err := parseNumber(text)
	return err == nil
}
