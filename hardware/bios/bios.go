// Package bios implements the BIOS and DOS services called by the game. The
// services are implemented directly in Go on top of the machine model rather
// than by running firmware code.
//
// Tracing of every service call can be enabled with the Trace() function.
// Trace entries are added to the central log under the "bios" tag.
package bios

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/hardware/keyboard"
	"github.com/jetsetilly/pong13h/hardware/memory"
	"github.com/jetsetilly/pong13h/hardware/vga"
	"github.com/jetsetilly/pong13h/logger"
)

// tracing is the logger.Permission for service call traces
type tracing struct {
	enabled atomic.Bool
}

func (t *tracing) AllowLogging() bool {
	return t.enabled.Load()
}

type BIOS struct {
	mem   *memory.Memory
	vga   *vga.VGA
	kbd   *keyboard.Buffer
	clock clocks.Clock

	// the text buffer as seen by the teletype
	text memory.Segment

	trace tracing

	terminate  sync.Once
	terminated chan bool
	status     uint8
}

// Create a new BIOS instance. The ROM area is attached to the memory
func Create(mem *memory.Memory, v *vga.VGA, kbd *keyboard.Buffer, clock clocks.Clock) *BIOS {
	b := &BIOS{
		mem:        mem,
		vga:        v,
		kbd:        kbd,
		clock:      clock,
		text:       mem.Segment(vga.TextOrigin >> 4),
		terminated: make(chan bool),
	}
	mem.Attach(OriginROM, &ROM{})
	return b
}

// Trace enables or disables the logging of service calls
func (b *BIOS) Trace(enabled bool) {
	b.trace.enabled.Store(enabled)
}

// SetVideoMode implements the firmware.Firmware interface
func (b *BIOS) SetVideoMode(mode firmware.VideoMode) {
	logger.Logf(&b.trace, "bios", "int 10h/00h: set video mode %s", mode)
	if !b.vga.SetMode(uint8(mode)) {
		logger.Logf(logger.Allow, "bios", "unsupported video mode %s", mode)
	}
}

// GetKeyStatus implements the firmware.Firmware interface
func (b *BIOS) GetKeyStatus() bool {
	k, ok := b.kbd.Status()
	if ok {
		logger.Logf(&b.trace, "bios", "int 16h/01h: key status: %s", k)
	}
	return ok
}

// ReadKeyBlocking implements the firmware.Firmware interface
func (b *BIOS) ReadKeyBlocking() uint8 {
	k := b.kbd.Read()
	logger.Logf(&b.trace, "bios", "int 16h/00h: read key: %s", k)
	return k.ASCII
}

// DelayMicros implements the firmware.Firmware interface
func (b *BIOS) DelayMicros(hi uint16, lo uint16) {
	us := uint32(hi)<<16 | uint32(lo)
	logger.Logf(&b.trace, "bios", "int 15h/86h: wait %dus", us)
	b.clock.Sleep(time.Duration(us) * time.Microsecond)
}

// Terminate implements the firmware.Firmware interface. Only the first call
// has any effect
func (b *BIOS) Terminate(status uint8) {
	logger.Logf(&b.trace, "bios", "int 21h/4ch: terminate with status %d", status)
	b.terminate.Do(func() {
		b.status = status
		close(b.terminated)
	})
}

// Terminated is closed when the program terminates
func (b *BIOS) Terminated() <-chan bool {
	return b.terminated
}

// ExitStatus returns the status passed to Terminate(). The value is only
// meaningful once the Terminated() channel has been closed
func (b *BIOS) ExitStatus() uint8 {
	<-b.terminated
	return b.status
}

// In implements the firmware.Ports interface. Port reads are not traced
// because the retrace wait reads the status register continuously
func (b *BIOS) In(port uint16) uint8 {
	return b.vga.In(port)
}
