// Package vga emulates the parts of the VGA adapter used by the game: the
// graphics memory window at A0000h in mode 13h, the text buffer at B8000h in
// mode 03h, the default palette and input status register #1.
//
// The machine goroutine writes video memory through the memory map. Host
// goroutines take copies of the screen with Render(). Both sides go through
// the adapter's lock.
package vga

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/hardware/spec"
)

// video modes supported by the adapter
const (
	ModeText     = 0x03
	ModeGraphics = 0x13
)

// origins of the two memory windows in the real-mode address space
const (
	GraphicsOrigin = 0xa0000
	GraphicsSize   = 0x10000
	TextOrigin     = 0xb8000
	TextSize       = 0x8000
)

// DefaultAttribute is light grey on black
const DefaultAttribute = 0x07

type VGA struct {
	crit sync.RWMutex

	mode     uint8
	graphics [GraphicsSize]uint8
	text     [TextSize]uint8
	palette  [256]color.RGBA

	cursorCol int
	cursorRow int

	// incremented every time video memory is written to. hosts can use it
	// to skip rendering when nothing has changed
	serial uint64

	Raster *Raster
}

func Create(clock clocks.Clock) *VGA {
	v := &VGA{
		palette: spec.VGA.Palette,
		Raster:  newRaster(spec.VGA, clock),
	}
	v.setMode(ModeText)
	return v
}

func (v *VGA) String() string {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return fmt.Sprintf("mode %02xh", v.mode)
}

// SetMode programs the adapter for the mode and clears video memory. Returns
// false if the mode is not supported, in which case nothing changes
func (v *VGA) SetMode(mode uint8) bool {
	if mode != ModeText && mode != ModeGraphics {
		return false
	}
	v.crit.Lock()
	defer v.crit.Unlock()
	v.setMode(mode)
	return true
}

func (v *VGA) setMode(mode uint8) {
	v.mode = mode
	v.palette = spec.VGA.Palette
	clear(v.graphics[:])
	for i := 0; i < len(v.text); i += 2 {
		v.text[i] = ' '
		v.text[i+1] = DefaultAttribute
	}
	v.cursorCol = 0
	v.cursorRow = 0
	v.serial++
}

func (v *VGA) Mode() uint8 {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.mode
}

// Serial returns a value that changes whenever video memory or the mode
// changes
func (v *VGA) Serial() uint64 {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.serial
}

func (v *VGA) SetCursor(col int, row int) {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.cursorCol = col
	v.cursorRow = row
	v.serial++
}

func (v *VGA) Cursor() (col int, row int) {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.cursorCol, v.cursorRow
}

// In reads from an I/O port. Only the status register is decoded. Other ports
// float high
func (v *VGA) In(port uint16) uint8 {
	switch port {
	case firmware.StatusRegister:
		return v.Raster.Status()
	}
	return 0xff
}

// Graphics returns the memory area for the A0000h window
func (v *VGA) Graphics() *Window {
	return &Window{v: v, label: "vga graphics", data: v.graphics[:]}
}

// Text returns the memory area for the B8000h window
func (v *VGA) Text() *Window {
	return &Window{v: v, label: "vga text", data: v.text[:]}
}

// Window is one of the adapter's memory windows. It implements the
// memory.Block interface
type Window struct {
	v     *VGA
	label string
	data  []uint8
}

func (w *Window) Label() string {
	return w.label
}

func (w *Window) Size() uint32 {
	return uint32(len(w.data))
}

func (w *Window) Read(idx uint32) (uint8, error) {
	if idx >= uint32(len(w.data)) {
		return 0, fmt.Errorf("%s: read out of range: %05x", w.label, idx)
	}
	w.v.crit.RLock()
	defer w.v.crit.RUnlock()
	return w.data[idx], nil
}

func (w *Window) Write(idx uint32, data uint8) error {
	if idx >= uint32(len(w.data)) {
		return fmt.Errorf("%s: write out of range: %05x", w.label, idx)
	}
	w.v.crit.Lock()
	defer w.v.crit.Unlock()
	w.data[idx] = data
	w.v.serial++
	return nil
}

func (w *Window) Access(idx uint32, n uint32, f func(data []uint8)) bool {
	if uint64(idx)+uint64(n) > uint64(len(w.data)) {
		return false
	}
	w.v.crit.Lock()
	defer w.v.crit.Unlock()
	f(w.data[idx : idx+n])
	w.v.serial++
	return true
}
