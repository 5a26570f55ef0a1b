// Package ioformat reads and writes the assembler's binary output: a
// flat stream of little-endian 16-bit words, with no header, no
// object-file framing, and no debug metadata.
package ioformat

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/ngc/arch"
)

// MaxWords is the largest number of words a stream may hold -- one
// per address in the machine's 16-bit address space.
const MaxWords = int(arch.UWordMax)

var endian = binary.LittleEndian

// WriteWords writes words to w as a flat little-endian int16 stream.
func WriteWords(w io.Writer, words []arch.Word) error {
	if len(words) > MaxWords {
		return errors.Errorf("too many words to write (max %d)", MaxWords)
	}

	for _, word := range words {
		if err := binary.Write(w, endian, int16(word)); err != nil {
			return errors.Wrap(err, "failed to write word")
		}
	}

	return nil
}

// ReadWords reads a flat little-endian int16 stream from r until EOF.
func ReadWords(r io.Reader) ([]arch.Word, error) {
	var out []arch.Word

	for {
		var v int16
		err := binary.Read(r, endian, &v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read word")
		}

		if len(out) >= MaxWords {
			return nil, errors.Errorf("too many words in stream (max %d)", MaxWords)
		}

		out = append(out, arch.Word(v))
	}

	return out, nil
}
