// Package spec describes the video hardware the game was written for: the
// screen geometry of mode 13h, the raster timing of the VGA and the default
// palette loaded by the video BIOS.
package spec

import (
	"image/color"

	"github.com/jetsetilly/pong13h/hardware/clocks"
)

// screen geometry of mode 13h
const (
	ScreenWidth  = 320
	ScreenHeight = 200
	ScreenBytes  = ScreenWidth * ScreenHeight
)

// geometry of the 80x25 text mode. each character cell is 8x16 pixels
const (
	TextCols       = 80
	TextRows       = 25
	TextCellWidth  = 8
	TextCellHeight = 16
	TextWidth      = TextCols * TextCellWidth
	TextHeight     = TextRows * TextCellHeight
)

// Spec describes the raster of the VGA in a particular mode
type Spec struct {
	ID      string
	Palette [256]color.RGBA

	// scanlines are counted in the 400 line raster. mode 13h double scans
	// each of the 200 lines
	VisibleBottom  int
	BlankStart     int
	RetraceStart   int
	RetraceEnd     int
	BlankEnd       int
	AbsoluteBottom int

	// dot clocks in the visible part of a scanline. the remainder of the
	// scanline is horizontal blanking
	VisibleDots  int
	DotsScanline int

	HorizScan float64
}

// VGA describes the 70Hz 400 line raster used by mode 13h and
// by the 80x25 text mode
var VGA Spec

// the standard 16 colours of the default palette. values are 6-bit DAC
// values as they are programmed into the VGA
var standardColours = [16][3]uint8{
	{0, 0, 0},
	{0, 0, 42},
	{0, 42, 0},
	{0, 42, 42},
	{42, 0, 0},
	{42, 0, 42},
	{42, 21, 0},
	{42, 42, 42},
	{21, 21, 21},
	{21, 21, 63},
	{21, 63, 21},
	{21, 63, 63},
	{63, 21, 21},
	{63, 21, 63},
	{63, 63, 21},
	{63, 63, 63},
}

// Expand6Bit converts a 6-bit DAC value to an 8-bit colour component. The
// top two bits are replicated into the bottom two bits so that 63 becomes 255
func Expand6Bit(v uint8) uint8 {
	v &= 0x3f
	return (v << 2) | (v >> 4)
}

func dacColour(r, g, b uint8) color.RGBA {
	return color.RGBA{R: Expand6Bit(r), G: Expand6Bit(g), B: Expand6Bit(b), A: 255}
}

func init() {
	VGA = Spec{
		ID:             "VGA",
		VisibleBottom:  400,
		BlankStart:     407,
		RetraceStart:   412,
		RetraceEnd:     414,
		BlankEnd:       442,
		AbsoluteBottom: 449,
		VisibleDots:    640,
		DotsScanline:   clocks.DotsScanline,
		HorizScan:      clocks.HorizScan,
	}

	idx := 0
	for _, c := range standardColours {
		VGA.Palette[idx] = dacColour(c[0], c[1], c[2])
		idx++
	}

	// 6x6x6 colour cube
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				VGA.Palette[idx] = dacColour(uint8(r*63/5), uint8(g*63/5), uint8(b*63/5))
				idx++
			}
		}
	}

	// grey ramp
	for i := range 24 {
		v := uint8(i * 63 / 23)
		VGA.Palette[idx] = dacColour(v, v, v)
		idx++
	}

	if idx != len(VGA.Palette) {
		panic("default palette is the wrong length. should be 256 entries")
	}
}
