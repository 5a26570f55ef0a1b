// Command ngc-asm assembles NandGame Computer assembly source into a
// flat, little-endian instruction stream.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/ngc/asm"
	"github.com/hexaflex/ngc/ioformat"
)

// argsErr mirrors the reference assembler's ERRVAL_ARGS exit code for
// bad CLI usage, reported before any asm.Error exists to carry a Kind.
const argsErr = asm.Args

func main() {
	config := parseArgs()
	os.Exit(run(config))
}

func run(c *Config) int {
	in, closeIn, err := openInput(c.Input)
	if err != nil {
		printFileErr(displayPath(c.Input, "stdin"), err)
		return int(asm.File)
	}
	defer closeIn()

	file, err := asm.ParseFile(c.Input, in)
	if err != nil {
		printErr(c.Input, err)
		return exitCode(err)
	}

	words, err := asm.Assemble(file)
	if err != nil {
		printErr(c.Input, err)
		return exitCode(err)
	}

	if c.Debug {
		printDebugListing(c, file)
	}

	out, closeOut, err := openOutput(c.Output)
	if err != nil {
		printFileErr(displayPath(c.Output, "stdout"), err)
		return int(asm.File)
	}
	defer closeOut()

	if err := ioformat.WriteWords(out, words); err != nil {
		printFileErr(displayPath(c.Output, "stdout"), err)
		return int(asm.File)
	}

	return 0
}

func printDebugListing(c *Config, file *asm.ParsedFile) {
	syms, words, err := asm.AssembleWithSymbols(file)
	if err != nil {
		return
	}
	for i, sym := range syms {
		fmt.Fprintf(os.Stderr, "%04x %s:%d %04x\n", sym.Address, sym.File, sym.Line, uint16(int16(words[i])))
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to open file")
	}
	return fd, func() { fd.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	fd, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to open file")
	}
	return fd, func() { fd.Close() }, nil
}

func displayPath(path, fallback string) string {
	if path == "" || path == "-" {
		return fallback
	}
	return path
}

// printErr formats an assembler error the way the reference CLI does:
// Syntax errors carry "path:line: msg", everything else "path: msg".
func printErr(path string, err error) {
	if ae, ok := err.(*asm.Error); ok {
		fmt.Fprintln(os.Stderr, ae.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
}

func printFileErr(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
}

func exitCode(err error) int {
	if ae, ok := err.(*asm.Error); ok {
		return int(ae.Kind)
	}
	return int(asm.Failure)
}
