package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexaflex/ngc/emu"
)

// argsErr mirrors the reference emulator's ERRVAL_ARGS exit code for
// bad CLI usage, reported before any emu.Error exists to carry a Kind.
const argsErr = emu.Args

// Config defines program configuration.
type Config struct {
	Input   string // Input program binary, "-" for stdin.
	Prefs   string // Optional TOML preferences file.
	ClockHz int    // Initial clock frequency in Hz.
}

// parseArgs parses command line arguments.
//
// If an error occurred, this exits the program with an appropriate
// message. When version information is requested, it is printed to
// stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s [options] <program binary>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Prefs, "prefs", "", "Optional TOML preferences file (initial clock frequency).")
	flag.IntVar(&c.ClockHz, "hz", 0, "Initial clock frequency in Hz. Overrides the preferences file.")
	v := flag.Bool("v", false, "Display version information.")
	V := flag.Bool("V", false, "Display version information.")
	h := flag.Bool("h", false, "Display version information.")
	flag.Parse()

	if *v || *V || *h {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "No program file given")
		os.Exit(int(argsErr))
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Multiple program files given")
		os.Exit(int(argsErr))
	}

	c.Input = flag.Arg(0)
	return &c
}
