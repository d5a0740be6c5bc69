package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/hardware"
	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/hardware/vga"
	"github.com/jetsetilly/pong13h/test"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	test.DemandSuccess(t, scr.Init())
	scr.SetSize(80, 25)
	return scr
}

func newHost(t *testing.T) (*guiTerminal, *hardware.Machine, tcell.SimulationScreen) {
	t.Helper()
	m := hardware.Create(clocks.NewStepped(time.Microsecond))
	g := gui.NewGUI(m.VGA, m.Keyboard, m.BIOS.Terminated())
	scr := newScreen(t)
	return newTerminal(g, scr), m, scr
}

func TestKeys(t *testing.T) {
	tr, m, scr := newHost(t)
	defer scr.Fini()

	test.ExpectSuccess(t, tr.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	test.ExpectSuccess(t, tr.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	test.ExpectSuccess(t, tr.handle(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)))
	test.ExpectEquality(t, m.Keyboard.Len(), 2)
	test.ExpectEquality(t, m.Keyboard.Read().ASCII, uint8('w'))
	test.ExpectEquality(t, m.Keyboard.Read().ASCII, uint8('\r'))

	err := tr.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	test.ExpectSuccess(t, errors.Is(err, gui.ErrQuit))
}

func TestDrawGraphics(t *testing.T) {
	tr, m, scr := newHost(t)
	defer scr.Fini()

	m.VGA.SetMode(vga.ModeGraphics)
	test.DemandSuccess(t, m.VGA.Graphics().Write(0, 15))
	tr.draw()

	pal := m.VGA.Palette()
	r, _, style, _ := scr.GetContent(0, 0)
	test.ExpectEquality(t, r, halfBlock)
	fg, bg, _ := style.Decompose()
	test.ExpectEquality(t, fg, rgb(pal[15]))
	test.ExpectEquality(t, bg, rgb(pal[0]))

	_, _, style, _ = scr.GetContent(1, 0)
	fg, _, _ = style.Decompose()
	test.ExpectEquality(t, fg, rgb(pal[0]))
}

func TestDrawText(t *testing.T) {
	tr, m, scr := newHost(t)
	defer scr.Fini()

	m.BIOS.Print("hi\r\nthere$")
	tr.draw()

	r, _, _, _ := scr.GetContent(0, 0)
	test.ExpectEquality(t, r, 'h')
	r, _, _, _ = scr.GetContent(1, 0)
	test.ExpectEquality(t, r, 'i')
	r, _, _, _ = scr.GetContent(4, 1)
	test.ExpectEquality(t, r, 'e')
	r, _, _, _ = scr.GetContent(5, 1)
	test.ExpectEquality(t, r, ' ')
}

func TestRunEnds(t *testing.T) {
	m := hardware.Create(clocks.NewStepped(time.Microsecond))
	g := gui.NewGUI(m.VGA, m.Keyboard, m.BIOS.Terminated())

	// program terminates
	m.BIOS.Terminate(0)
	test.ExpectSuccess(t, run(make(chan bool), g, newScreen(t)))

	// host is told to end
	m = hardware.Create(clocks.NewStepped(time.Microsecond))
	g = gui.NewGUI(m.VGA, m.Keyboard, m.BIOS.Terminated())
	endGui := make(chan bool, 1)
	endGui <- true
	test.ExpectSuccess(t, run(endGui, g, newScreen(t)))
}

func TestRunQuit(t *testing.T) {
	m := hardware.Create(clocks.NewStepped(time.Microsecond))
	g := gui.NewGUI(m.VGA, m.Keyboard, m.BIOS.Terminated())

	scr := newScreen(t)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error)
	go func() {
		done <- run(make(chan bool), g, scr)
	}()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(time.Second):
		t.Fatalf("terminal did not quit")
	}
}
