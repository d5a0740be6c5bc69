package vga

import (
	"time"

	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/hardware/spec"
)

// Raster derives the position of the beam from the machine clock. The beam
// is never stored, so the raster cannot drift from the clock and reading the
// status register is free of side effects
type Raster struct {
	spec  spec.Spec
	clock clocks.Clock

	scanline time.Duration
	frame    time.Duration
}

func newRaster(spec spec.Spec, clock clocks.Clock) *Raster {
	r := &Raster{
		spec:     spec,
		clock:    clock,
		scanline: time.Duration(float64(time.Second) / spec.HorizScan),
	}
	r.frame = r.scanline * time.Duration(spec.AbsoluteBottom)
	return r
}

// Refresh returns the duration of one complete frame
func (r *Raster) Refresh() time.Duration {
	return r.frame
}

// Position returns the frame number, scanline and dot clock of the beam
func (r *Raster) Position() (frame int, scanline int, dot int) {
	e := r.clock.Elapsed()
	frame = int(e / r.frame)
	e %= r.frame
	scanline = int(e / r.scanline)
	dot = int(e % r.scanline * time.Duration(r.spec.DotsScanline) / r.scanline)
	return frame, scanline, dot
}

// Status returns the value of input status register #1
func (r *Raster) Status() uint8 {
	_, scanline, dot := r.Position()
	return r.status(scanline, dot)
}

func (r *Raster) status(scanline int, dot int) uint8 {
	var v uint8
	if scanline >= r.spec.RetraceStart && scanline < r.spec.RetraceEnd {
		v |= firmware.StatusVerticalRetrace
	}
	if scanline >= r.spec.VisibleBottom || dot >= r.spec.VisibleDots {
		v |= firmware.StatusDisplayDisabled
	}
	return v
}
