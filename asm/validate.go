package asm

import (
	"strconv"
	"strings"

	"github.com/iridium-isa/iridium-asm/isa"
)

// Kind classifies a validated source line.
type Kind int

const (
	KIND_LABEL    = Kind(iota) // label-only line
	KIND_BOUNDARY              // the data: section boundary
	KIND_INSTR
	KIND_DATA
)

// Line is a validated, classified source line.
type Line struct {
	No       int
	Text     string
	Label    string
	Kind     Kind
	Op       string   // mnemonic (KIND_INSTR) or directive (KIND_DATA)
	Operands []string // operand text in order (KIND_INSTR)
	Body     string   // argument text after the directive (KIND_DATA)
}

// Validate classifies every source line, checks it against the
// instruction and directive tables, binds label-only lines to the
// following statement, and enforces the data: section boundary.
// Label-only and boundary lines are consumed here; the result holds
// instruction and data lines only.
func Validate(lines []SourceLine) (out []Line, err error) {
	var inData bool
	var pending Line

	for _, src := range lines {
		var ln Line
		ln, err = classifyLine(src, inData)
		if err != nil {
			err = &LineError{LineNo: src.No, Line: src.Text, Err: err}
			return
		}

		switch ln.Kind {
		case KIND_BOUNDARY:
			inData = true
		case KIND_LABEL:
			if len(pending.Label) != 0 {
				err = &LineError{LineNo: pending.No, Line: pending.Text, Err: ErrLabelDangling(pending.Label)}
				return
			}
			pending = ln
		default:
			if len(pending.Label) != 0 {
				if len(ln.Label) != 0 {
					err = &LineError{LineNo: pending.No, Line: pending.Text, Err: ErrLabelDangling(pending.Label)}
					return
				}
				ln.Label = pending.Label
				pending = Line{}
			}
			out = append(out, ln)
		}
	}

	if len(pending.Label) != 0 {
		err = &LineError{LineNo: pending.No, Line: pending.Text, Err: ErrLabelDangling(pending.Label)}
		out = nil
	}

	return
}

// classifyLine validates a single line against the section state.
func classifyLine(src SourceLine, inData bool) (ln Line, err error) {
	ln = Line{No: src.No, Text: src.Text}

	label, rest, err := splitLabel(src.Text)
	if err != nil {
		return
	}
	ln.Label = label

	if len(rest) == 0 {
		ln.Kind = KIND_LABEL
		if label == "data" {
			ln.Kind = KIND_BOUNDARY
			ln.Label = ""
			if inData {
				err = ErrLabelReserved(label)
			}
		}
		return
	}

	if label == "data" {
		err = ErrLabelReserved(label)
		return
	}

	op := rest
	body := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		op = rest[:i]
		body = strings.TrimSpace(rest[i+1:])
	}

	if strings.HasPrefix(op, ".") {
		ln.Kind = KIND_DATA
		ln.Op = op
		ln.Body = body
		if _, ok := directiveTypes[op]; !ok {
			err = ErrDirectiveUnknown(op)
			return
		}
		if !inData {
			err = ErrDataBeforeBoundary(op)
			return
		}
		_, err = parseDatumBody(op, body)
		return
	}

	ln.Kind = KIND_INSTR
	ln.Op = op
	ln.Operands = splitOperands(body)
	spec, ok := isa.Specs[op]
	if !ok {
		err = ErrMnemonicUnknown(op)
		return
	}
	if inData {
		err = ErrInstrAfterBoundary(op)
		return
	}
	err = validateOperands(op, spec, ln.Operands)
	return
}

// splitLabel strips a leading label declaration. A colon whose prefix
// contains operand or literal characters is not a label declaration.
func splitLabel(text string) (label, rest string, err error) {
	rest = text

	i := strings.IndexByte(text, ':')
	if i < 0 {
		return
	}
	head := text[:i]
	if strings.ContainsAny(head, " \t\"'@$.") {
		return
	}
	if !labelNameValid(head) {
		err = ErrLabelMalformed(head)
		return
	}

	label = head
	rest = strings.TrimSpace(text[i+1:])
	return
}

// labelNameValid reports whether name is a letter or underscore followed
// by letters, digits, or underscores.
func labelNameValid(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// splitOperands splits comma-separated operand text.
func splitOperands(body string) (operands []string) {
	if len(strings.TrimSpace(body)) == 0 {
		return
	}
	operands = strings.Split(body, ",")
	for i := range operands {
		operands[i] = strings.TrimSpace(operands[i])
	}
	return
}

// validateOperands checks operand count and kinds against the mnemonic's
// format: registers first, then the immediate slot, then the optional
// trailing label reference.
func validateOperands(mn string, spec isa.Spec, operands []string) (err error) {
	if n := len(operands); n > 0 && strings.HasPrefix(operands[n-1], "@") && !spec.RefLegal {
		err = ErrRefIllegal(mn)
		return
	}

	want := spec.Regs
	if spec.ImmBits > 0 {
		want += 1
	}
	max := want
	if spec.RefLegal && spec.ImmBits == 0 {
		max += 1
	}
	if len(operands) < want || len(operands) > max {
		desc := strconv.Itoa(want)
		if max != want {
			desc = f("%d or %d", want, max)
		}
		err = ErrOperandCount{Mn: mn, Want: desc, Got: len(operands)}
		return
	}

	for i := 0; i < spec.Regs; i++ {
		if !strings.HasPrefix(operands[i], "$") {
			err = ErrOperandKind{Mn: mn, Operand: operands[i], Want: f("a register")}
			return
		}
	}

	next := spec.Regs
	if spec.ImmBits > 0 {
		op := operands[next]
		next += 1
		switch {
		case strings.HasPrefix(op, "@"):
			if !labelNameValid(op[1:]) {
				err = ErrLabelMalformed(op[1:])
				return
			}
		case !numberValid(op):
			err = ErrOperandKind{Mn: mn, Operand: op, Want: f("an immediate")}
			return
		}
	}

	if next < len(operands) {
		op := operands[next]
		if !strings.HasPrefix(op, "@") {
			err = ErrOperandKind{Mn: mn, Operand: op, Want: f("a label reference")}
			return
		}
		if !labelNameValid(op[1:]) {
			err = ErrLabelMalformed(op[1:])
			return
		}
	}

	return
}
