// Command ngc-emu runs an assembled NandGame Computer program in an
// interactive terminal front-end.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/ngc/emu"
	"github.com/hexaflex/ngc/internal/tui"
	"github.com/hexaflex/ngc/ioformat"
)

func main() {
	config := parseArgs()
	os.Exit(run(config))
}

func run(c *Config) int {
	in, closeIn, err := openInput(c.Input)
	if err != nil {
		printErr(displayPath(c.Input, "stdin"), err)
		return int(emu.File)
	}
	defer closeIn()

	words, err := ioformat.ReadWords(in)
	if err != nil {
		printErr(displayPath(c.Input, "stdin"), err)
		return int(emu.File)
	}

	mem, err := emu.NewMemory(words)
	if err != nil {
		printErr(c.Input, err)
		return exitCode(err)
	}

	ctrl := tui.NewController(mem)

	if c.Prefs != "" {
		prefs, err := tui.LoadPrefs(c.Prefs)
		if err != nil {
			printErr(c.Prefs, err)
			return int(emu.File)
		}
		prefs.Apply(ctrl)
	}
	if c.ClockHz > 0 {
		ctrl.SetFrequency(c.ClockHz)
	}

	log.Printf("ngc-emu: loaded %d words from %s", len(words), displayPath(c.Input, "stdin"))

	screen := tui.NewScreen(ctrl)
	if err := screen.Run(); err != nil {
		printErr(c.Input, err)
		return int(emu.Failure)
	}

	log.Println("ngc-emu: exiting")
	return 0
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

func displayPath(path, fallback string) string {
	if path == "" || path == "-" {
		return fallback
	}
	return path
}

func printErr(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
}

func exitCode(err error) int {
	if ee, ok := err.(*emu.Error); ok {
		return int(ee.Kind)
	}
	return int(emu.Failure)
}
