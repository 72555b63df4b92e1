package asm

import (
	"bufio"
	"io"
	"strings"
)

// SourceLine is one raw line of input with its position.
type SourceLine struct {
	No   int
	Text string
}

// ScanLines splits the source into comment-stripped source lines with
// $() expressions already evaluated. Blank lines are dropped; original
// line numbers are kept for diagnostics.
func ScanLines(r io.Reader) (lines []SourceLine, err error) {
	scanner := bufio.NewScanner(r)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text := strings.TrimSpace(stripComment(scanner.Text()))
		if len(text) == 0 {
			continue
		}

		text, err = evalExpressions(text, lineno)
		if err != nil {
			err = &LineError{LineNo: lineno, Line: text, Err: err}
			return
		}

		lines = append(lines, SourceLine{No: lineno, Text: text})
	}
	err = scanner.Err()

	return
}

// stripComment removes a trailing ; comment, ignoring ; inside quoted
// literals.
func stripComment(text string) string {
	var inStr, inChar bool
	for i, r := range text {
		switch {
		case r == '"' && !inChar:
			inStr = !inStr
		case r == '\'' && !inStr:
			inChar = !inChar
		case r == ';' && !inStr && !inChar:
			return text[:i]
		}
	}
	return text
}
