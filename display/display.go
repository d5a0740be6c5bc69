// Package display is the double-buffered mode 13h screen. Drawing happens in
// an off-screen buffer in conventional memory which is copied to video memory
// once per frame, during the vertical retrace.
//
// Drawing primitives do no bounds checking. Offsets are calculated with 16
// bit arithmetic, exactly as the hardware would, so a coordinate off the
// screen writes to some other part of the off-screen segment.
package display

import (
	"fmt"

	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/hardware/memory"
	"github.com/jetsetilly/pong13h/hardware/spec"
	"github.com/jetsetilly/pong13h/logger"
)

// segment selectors of the two buffers. segments 0000h and 1000h are used by
// the BIOS and the program
const (
	OffscreenSegment = 0x2000
	VisibleSegment   = 0xa000
)

// number of dwords in one full screen
const screenDwords = spec.ScreenBytes / 4

// VideoBIOS is the subset of firmware.Firmware needed to change mode
type VideoBIOS interface {
	SetVideoMode(mode firmware.VideoMode)
}

// Stats for the display
type Stats struct {
	// number of buffer flips
	Frames uint64

	// flips that were not immediately preceded by a completed retrace wait
	UnsyncedFlips uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d frames (%d unsynced)", s.Frames, s.UnsyncedFlips)
}

type Display struct {
	bios  VideoBIOS
	ports firmware.Ports
	mem   *memory.Memory

	// the equivalent of the ES and FS registers. bound by EnterGraphics()
	es    memory.Segment
	fs    memory.Segment
	bound bool

	graphics bool

	// the retrace has been waited for since the last flip
	synced bool

	stats Stats
}

func NewDisplay(bios VideoBIOS, ports firmware.Ports, mem *memory.Memory) *Display {
	return &Display{
		bios:  bios,
		ports: ports,
		mem:   mem,
	}
}

func (d *Display) String() string {
	if d.graphics {
		return fmt.Sprintf("graphics es=%s fs=%s", d.es, d.fs)
	}
	return "text"
}

// EnterGraphics switches to mode 13h and binds the two buffers
func (d *Display) EnterGraphics() {
	d.bios.SetVideoMode(firmware.ModeVGA256)
	d.es = d.mem.Segment(OffscreenSegment)
	d.fs = d.mem.Segment(VisibleSegment)
	d.bound = true
	d.graphics = true
}

// EnterText switches to the 80x25 text mode. The buffers stay bound
func (d *Display) EnterText() {
	d.bios.SetVideoMode(firmware.ModeText)
	d.graphics = false
}

// Graphics returns true if the display is in mode 13h
func (d *Display) Graphics() bool {
	return d.graphics
}

func (d *Display) mustBeBound() {
	if !d.bound {
		panic("display: drawing before EnterGraphics()")
	}
}

// offset is the 16 bit offset of a screen coordinate
func offset(x int, y int) uint16 {
	return uint16(x + y*spec.ScreenWidth)
}

// SetPixel writes one pixel to the off-screen buffer
func (d *Display) SetPixel(x int16, y int16, colour uint8) {
	d.mustBeBound()
	d.es.Write(offset(int(x), int(y)), colour)
}

// FillArea fills a rectangle of the off-screen buffer
func (d *Display) FillArea(x int16, y int16, width uint16, height uint16, colour uint8) {
	d.mustBeBound()
	for row := int(y); row < int(y)+int(height); row++ {
		d.es.StoreBytes(offset(int(x), row), int(width), colour)
	}
}

// ClearScreen fills the entire off-screen buffer with the colour
func (d *Display) ClearScreen(colour uint8) {
	d.mustBeBound()
	c := uint32(colour)<<8 | uint32(colour)
	c |= c << 16
	d.es.StoreDwords(0, screenDwords, c)
}

// WaitForVerticalRetrace spins on the status register until the vertical
// retrace bit is set. There is no timeout
func (d *Display) WaitForVerticalRetrace() {
	for d.ports.In(firmware.StatusRegister)&firmware.StatusVerticalRetrace == 0 {
	}
	d.synced = true
}

// FlipBuffers copies the off-screen buffer to video memory. It should only be
// called immediately after WaitForVerticalRetrace(). An unsynced flip is still
// performed but is logged and counted
func (d *Display) FlipBuffers() {
	d.mustBeBound()
	if !d.synced {
		d.stats.UnsyncedFlips++
		logger.Log(logger.Allow, "display", "buffer flip without waiting for the vertical retrace")
	}
	memory.MoveDwords(d.fs, 0, d.es, 0, screenDwords)
	d.synced = false
	d.stats.Frames++
}

// Present waits for the vertical retrace and flips the buffers
func (d *Display) Present() {
	d.WaitForVerticalRetrace()
	d.FlipBuffers()
}

func (d *Display) Stats() Stats {
	return d.stats
}
