package asm

import (
	"io"

	"github.com/charmbracelet/log"
)

// Assembler assembles one source file per Assemble call. The zero value
// is ready to use.
type Assembler struct {
	Verbose bool // log pipeline stage summaries at debug level

	Tokens []Token    // expanded token stream of the last Assemble
	Labels LabelTable // label table of the last Assemble
}

// Assemble runs the pipeline over the source text and returns the binary
// image. The first error aborts assembly; no image is returned on error.
func (a *Assembler) Assemble(r io.Reader) (out []byte, err error) {
	a.Tokens = nil
	a.Labels = nil

	lines, err := ScanLines(r)
	if err != nil {
		return
	}

	classified, err := Validate(lines)
	if err != nil {
		return
	}

	tokens, err := Tokenize(classified)
	if err != nil {
		return
	}

	a.Tokens = Expand(tokens)

	a.Labels, err = BuildLabelTable(a.Tokens)
	if err != nil {
		return
	}

	if a.Verbose {
		log.Debug("pipeline",
			"lines", len(lines),
			"tokens", len(tokens),
			"expanded", len(a.Tokens),
			"labels", len(a.Labels))
	}

	out, err = Encode(a.Tokens, a.Labels)
	return
}
