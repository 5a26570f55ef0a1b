package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hexaflex/ngc/arch"
)

// windowRAMItems and windowROMItems are the number of memory rows
// shown in each pane, mirroring the reference terminal front-end's
// fixed-height memory windows.
const (
	windowRAMItems = 9
	windowROMItems = 9
)

// Screen is the emulator's text user interface: a clock/registers
// strip above side-by-side RAM and ROM panes.
type Screen struct {
	ctrl *Controller

	app       *tview.Application
	clockView *tview.TextView
	regView   *tview.TextView
	ramView   *tview.TextView
	romView   *tview.TextView

	ramOffset int
	romOffset int
}

// NewScreen builds a Screen driving ctrl.
func NewScreen(ctrl *Controller) *Screen {
	s := &Screen{ctrl: ctrl, app: tview.NewApplication()}

	s.clockView = tview.NewTextView().SetDynamicColors(true)
	s.clockView.SetBorder(true).SetTitle(" Clock ")

	s.regView = tview.NewTextView().SetDynamicColors(true)
	s.regView.SetBorder(true).SetTitle(" Registers ")

	s.ramView = tview.NewTextView().SetDynamicColors(true)
	s.ramView.SetBorder(true).SetTitle(" RAM ")

	s.romView = tview.NewTextView().SetDynamicColors(true)
	s.romView.SetBorder(true).SetTitle(" ROM ")

	top := tview.NewFlex().
		AddItem(s.clockView, 0, 1, false).
		AddItem(s.regView, 0, 1, false)

	mem := tview.NewFlex().
		AddItem(s.ramView, 0, 1, false).
		AddItem(s.romView, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, windowROWS(3), 0, false).
		AddItem(mem, windowROWS(windowRAMItems), 0, false)

	s.app.SetRoot(layout, true)
	s.app.SetInputCapture(s.onKey)

	return s
}

func windowROWS(items int) int { return items + 2 }

// onKey implements the interactive key contract: q/Esc quit, r reset,
// p toggle run/pause, s single-step, [/] divide/multiply the clock
// frequency by ClockHzMulti.
func (s *Screen) onKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.app.Stop()
		return nil
	}

	switch ev.Rune() {
	case 'q':
		s.app.Stop()
		return nil
	case 'r':
		s.ctrl.Reset()
	case 'p':
		s.ctrl.ToggleRun()
	case 's':
		s.ctrl.Step()
	case '[':
		s.ctrl.LowerFrequency()
	case ']':
		s.ctrl.RaiseFrequency()
	}

	s.draw()
	return nil
}

// Run starts the clock-driven execution loop and blocks until the
// user quits.
func (s *Screen) Run() error {
	done := make(chan struct{})
	go s.clockLoop(done)
	defer close(done)

	s.draw()
	return s.app.Run()
}

func (s *Screen) clockLoop(done chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		if s.ctrl.Running() {
			if s.ctrl.Halted() {
				s.ctrl.Stop()
			} else {
				s.ctrl.Step()
			}
			s.app.QueueUpdateDraw(s.draw)
		}

		time.Sleep(s.ctrl.TickInterval())
	}
}

func (s *Screen) draw() {
	mem := s.ctrl.Memory()

	state := "paused"
	if s.ctrl.Running() {
		state = "running"
	}
	fmt.Fprintf(s.clockView.Clear(), "%s\n%d Hz", state, s.ctrl.Frequency())

	fmt.Fprintf(s.regView.Clear(), "A  %6d\nD  %6d\nPC %6d", mem.A, mem.D, mem.PC)

	writeMemPane(s.ramView.Clear(), mem.RAM[:], s.ramOffset, windowRAMItems)
	writeMemPane(s.romView.Clear(), mem.ROM[:], s.romOffset, windowROMItems)
}

func writeMemPane(w *tview.TextView, data []arch.Word, offset, rows int) {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		addr := offset + i
		if addr >= len(data) {
			break
		}
		fmt.Fprintf(&b, "%04x: %6d\n", addr, data[addr])
	}
	fmt.Fprint(w, b.String())
}
