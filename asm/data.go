package asm

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/x448/float16"
)

// directiveTypes is the closed data directive table.
var directiveTypes = map[string]DataType{
	".int":     DATA_INT,
	".long":    DATA_LONG,
	".half":    DATA_HALF,
	".float":   DATA_FLOAT,
	".char":    DATA_CHAR,
	".text":    DATA_TEXT,
	".section": DATA_SECTION,
}

// parseDatumBody parses a directive's argument text into a Datum,
// checking that the literal fits its declared width.
func parseDatumBody(directive, body string) (d *Datum, err error) {
	d = &Datum{Type: directiveTypes[directive]}

	switch d.Type {
	case DATA_INT, DATA_LONG:
		var v int64
		v, err = parseNumber(body)
		if err != nil {
			err = ErrLiteralMalformed{Directive: directive, Literal: body}
			return
		}
		lo, hi := int64(-0x8000), int64(0x7FFF)
		if d.Type == DATA_LONG {
			lo, hi = -0x8000_0000, 0x7FFF_FFFF
		}
		if v < lo || v > hi {
			err = ErrLiteralRange{Directive: directive, Literal: body}
			return
		}
		d.Int = v

	case DATA_HALF, DATA_FLOAT:
		var v float64
		v, err = parseFloatLiteral(directive, body)
		if err != nil {
			return
		}
		d.Float = v

	case DATA_CHAR:
		if len(body) < 3 || body[0] != '\'' || body[len(body)-1] != '\'' {
			err = ErrLiteralMalformed{Directive: directive, Literal: body}
			return
		}
		s, uerr := strconv.Unquote(body)
		if uerr != nil || len(utf16.Encode([]rune(s))) != 1 {
			err = ErrLiteralMalformed{Directive: directive, Literal: body}
			return
		}
		d.Str = s

	case DATA_TEXT:
		var rest string
		d.Count, rest, err = splitCount(directive, body)
		if err != nil {
			return
		}
		if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
			err = ErrLiteralMalformed{Directive: directive, Literal: rest}
			return
		}
		s, uerr := strconv.Unquote(rest)
		if uerr != nil {
			err = ErrLiteralMalformed{Directive: directive, Literal: rest}
			return
		}
		if need := len(utf16.Encode([]rune(s))) + 1; need > d.Count {
			err = ErrLiteralWidth{Directive: directive, Need: need, Declared: d.Count}
			return
		}
		d.Str = s

	case DATA_SECTION:
		var rest string
		d.Count, rest, err = splitCount(directive, body)
		if err != nil {
			return
		}
		if len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
			err = ErrLiteralMalformed{Directive: directive, Literal: rest}
			return
		}
		d.List, err = parseValueList(directive, rest[1:len(rest)-1])
		if err != nil {
			return
		}
		if len(d.List) > d.Count {
			err = ErrLiteralWidth{Directive: directive, Need: len(d.List), Declared: d.Count}
			return
		}
	}

	return
}

// parseFloatLiteral parses a half or single precision literal and checks
// that it fits the target width.
func parseFloatLiteral(directive, body string) (v float64, err error) {
	v, perr := strconv.ParseFloat(body, 32)
	if perr != nil {
		err = ErrLiteralMalformed{Directive: directive, Literal: body}
		if errors.Is(perr, strconv.ErrRange) {
			err = ErrLiteralRange{Directive: directive, Literal: body}
		}
		return
	}
	if directive == ".half" && float16.PrecisionFromfloat32(float32(v)) == float16.PrecisionOverflow {
		err = ErrLiteralRange{Directive: directive, Literal: body}
	}
	return
}

// splitCount strips a leading declared word count from the argument text.
func splitCount(directive, body string) (count int, rest string, err error) {
	i := strings.IndexAny(body, " \t")
	if i < 0 {
		err = ErrLiteralMalformed{Directive: directive, Literal: body}
		return
	}
	v, perr := parseNumber(body[:i])
	if perr != nil || v < 1 || v > 0xFFFF {
		err = ErrLiteralMalformed{Directive: directive, Literal: body[:i]}
		return
	}
	count = int(v)
	rest = strings.TrimSpace(body[i+1:])
	return
}

// parseValueList parses the comma-separated 16-bit values of a .section
// literal. An empty list is legal and fills the section with zeros.
func parseValueList(directive, inner string) (values []uint16, err error) {
	inner = strings.TrimSpace(inner)
	if len(inner) == 0 {
		return
	}
	for _, item := range strings.Split(inner, ",") {
		item = strings.TrimSpace(item)
		v, perr := parseNumber(item)
		if perr != nil {
			err = ErrLiteralMalformed{Directive: directive, Literal: item}
			return
		}
		if v < -0x8000 || v > 0xFFFF {
			err = ErrLiteralRange{Directive: directive, Literal: item}
			return
		}
		values = append(values, uint16(v))
	}
	return
}
