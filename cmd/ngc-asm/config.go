package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Input  string // Input assembly file, "-" for stdin.
	Output string // Output binary file, "-" for stdout.
	Debug  bool   // Print a debug-symbol listing to stderr after assembling.
}

// parseArgs parses command line arguments.
//
// If an error occurred, this exits the program with an appropriate
// message. When version information is requested, it is printed to
// stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Output = "-"

	flag.Usage = func() {
		fmt.Printf("%s [options] <input assembly file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "o", c.Output, "Output file. Defaults to stdout.")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Print a debug-symbol listing to stderr after assembling.")
	v := flag.Bool("v", false, "Display version information.")
	V := flag.Bool("V", false, "Display version information.")
	h := flag.Bool("h", false, "Display version information.")
	flag.Parse()

	if *v || *V || *h {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "No assembly file given")
		os.Exit(int(argsErr))
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Multiple assembly files given")
		os.Exit(int(argsErr))
	}

	c.Input = flag.Arg(0)
	return &c
}
