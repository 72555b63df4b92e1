package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iridium-isa/iridium-asm/asm"
	"github.com/iridium-isa/iridium-asm/internal/logger"
)

func main() {
	var verbose bool
	var noColor bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.Parse()

	logger.Init(verbose, noColor)

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] [-n] <source.asm> <output>\n", os.Args[0])
		os.Exit(1)
	}

	source, output := args[0], args[1]
	if !strings.HasSuffix(source, ".asm") {
		log.Fatal("Source filename must end in .asm", "file", source)
	}

	log.Info("Assembling", "source", source, "output", output)

	text, err := os.ReadFile(source)
	if err != nil {
		log.Fatal("Failed to read source", "file", source, "error", err)
	}

	a := &asm.Assembler{Verbose: verbose}
	image, err := a.Assemble(bytes.NewReader(text))
	if err != nil {
		log.Fatal("Assembly failed", "error", err)
	}

	if err := os.WriteFile(output, image, 0o644); err != nil {
		log.Fatal("Failed to write image", "file", output, "error", err)
	}

	log.Info("Wrote image", "file", output, "bytes", len(image))
}
