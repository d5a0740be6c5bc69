// Package hardware assembles the machine the game runs on: conventional
// memory, the VGA adapter, the keyboard buffer and the BIOS, all driven by
// the one clock.
package hardware

import (
	"github.com/jetsetilly/pong13h/hardware/bios"
	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/hardware/keyboard"
	"github.com/jetsetilly/pong13h/hardware/memory"
	"github.com/jetsetilly/pong13h/hardware/vga"
)

type Machine struct {
	Clock    clocks.Clock
	Mem      *memory.Memory
	VGA      *vga.VGA
	Keyboard *keyboard.Buffer
	BIOS     *bios.BIOS
}

// Create a new machine driven by the clock. The machine starts in text mode
// with conventional memory cleared
func Create(clock clocks.Clock) *Machine {
	m := &Machine{
		Clock:    clock,
		Mem:      memory.Create(),
		VGA:      vga.Create(clock),
		Keyboard: keyboard.NewBuffer(),
	}
	m.Mem.Attach(vga.GraphicsOrigin, m.VGA.Graphics())
	m.Mem.Attach(vga.TextOrigin, m.VGA.Text())
	m.BIOS = bios.Create(m.Mem, m.VGA, m.Keyboard, m.Clock)
	return m
}

// Reset clears conventional memory and the keyboard buffer and returns the
// adapter to text mode
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.Keyboard.Flush()
	m.VGA.SetMode(vga.ModeText)
}
