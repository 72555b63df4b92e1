package asm

import (
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// evalExpressions replaces every $(...) span with the decimal value of
// the contained expression.
func evalExpressions(line string, lineno int) (out string, err error) {
	if !strings.Contains(line, "$(") {
		out = line
		return
	}

	out = parenRe.ReplaceAllStringFunc(line, func(span string) string {
		value, _err := parenEval(span[2:len(span)-1], lineno)
		if _err != nil {
			err = _err
			return span
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// parenEval does compile-time $(...) evaluations. DATA_BASE and LINENO
// are predeclared.
func parenEval(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DATA_BASE": starlark.MakeInt(DataBase),
		"LINENO":    starlark.MakeInt(lineno),
	}

	prog := "rc=" + expr + "\n"
	dict, execErr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if execErr != nil {
		err = ErrExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = st_int64
	return
}
