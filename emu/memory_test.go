package emu

import (
	"testing"

	"github.com/hexaflex/ngc/arch"
)

func TestHaltedTracksRomLen(t *testing.T) {
	mem, err := NewMemory([]arch.Word{1, 2})
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}

	if mem.Halted() {
		t.Fatal("a freshly loaded program should not be halted")
	}

	mem.PC = 1
	if mem.Halted() {
		t.Fatal("pc=1 with a 2-word program should not be halted yet")
	}

	mem.PC = 2
	if !mem.Halted() {
		t.Fatal("pc=2 with a 2-word program should be halted (pc >= rom_len)")
	}
}

func TestHaltedWithEmptyProgram(t *testing.T) {
	mem, err := NewMemory(nil)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	if !mem.Halted() {
		t.Fatal("an empty program should be immediately halted")
	}
}
