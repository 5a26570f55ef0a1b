// Package tui implements the emulator's interactive terminal
// front-end: a running clock driving emu.Tick at a configurable
// frequency, and a tcell-based screen showing registers, RAM and ROM.
package tui

import (
	"log"
	"time"

	"github.com/hexaflex/ngc/emu"
)

// Clock frequency bounds and default, mirrored from the reference
// emulator's terminal front-end.
const (
	ClockHzMin     = 1
	ClockHzMax     = 10000
	ClockHzDefault = 10
	ClockHzMulti   = 10
)

// Controller drives a Memory's execution at a configurable clock
// frequency, the way the reference emulator's interactive front-end
// does: free-running until paused, steppable one tick at a time.
type Controller struct {
	mem        *emu.Memory
	running    bool
	hz         int
	lastDelta  emu.TickDelta
	cycleCount uint64
	start      time.Time
}

// NewController creates a controller for mem, initially paused, at
// the default clock frequency.
func NewController(mem *emu.Memory) *Controller {
	return &Controller{mem: mem, hz: ClockHzDefault}
}

// Running reports whether the clock is currently free-running.
func (c *Controller) Running() bool { return c.running }

// Frequency returns the configured clock frequency in Hz.
func (c *Controller) Frequency() int { return c.hz }

// ToggleRun starts or stops free-running execution.
func (c *Controller) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins free-running execution.
func (c *Controller) Start() { c.setRunning(true) }

// Stop pauses free-running execution.
func (c *Controller) Stop() { c.setRunning(false) }

// Step executes a single instruction, regardless of run state. A no-op
// once the program counter has run off the end of the loaded program.
func (c *Controller) Step() emu.TickDelta {
	if c.mem.Halted() {
		return c.lastDelta
	}
	c.cycleCount++
	c.lastDelta = emu.Tick(c.mem)
	return c.lastDelta
}

// Halted reports whether the program counter has run past the end of
// the loaded program -- the run loop's termination condition.
func (c *Controller) Halted() bool {
	return c.mem.Halted()
}

// Reset resets the underlying memory and the controller's run state.
func (c *Controller) Reset() {
	c.mem.Reset()
	c.setRunning(false)
	log.Println("ngc-emu: reset")
}

// SetFrequency sets the clock frequency directly, clamped to
// [ClockHzMin, ClockHzMax].
func (c *Controller) SetFrequency(hz int) {
	switch {
	case hz < ClockHzMin:
		hz = ClockHzMin
	case hz > ClockHzMax:
		hz = ClockHzMax
	}
	c.hz = hz
}

// RaiseFrequency multiplies the clock frequency by ClockHzMulti, up
// to ClockHzMax.
func (c *Controller) RaiseFrequency() {
	c.hz *= ClockHzMulti
	if c.hz > ClockHzMax {
		c.hz = ClockHzMax
	}
}

// LowerFrequency divides the clock frequency by ClockHzMulti, down
// to ClockHzMin.
func (c *Controller) LowerFrequency() {
	c.hz /= ClockHzMulti
	if c.hz < ClockHzMin {
		c.hz = ClockHzMin
	}
}

// TickInterval returns the delay between ticks at the current
// frequency.
func (c *Controller) TickInterval() time.Duration {
	return time.Second / time.Duration(c.hz)
}

// Memory returns the controller's underlying machine state.
func (c *Controller) Memory() *emu.Memory { return c.mem }

// LastDelta returns the result of the most recently executed tick.
func (c *Controller) LastDelta() emu.TickDelta { return c.lastDelta }

func (c *Controller) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.cycleCount = 0
}
