package spec_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/pong13h/hardware/spec"
	"github.com/jetsetilly/pong13h/test"
)

func TestExpand6Bit(t *testing.T) {
	test.ExpectEquality(t, spec.Expand6Bit(0), 0)
	test.ExpectEquality(t, spec.Expand6Bit(63), 255)
	test.ExpectEquality(t, spec.Expand6Bit(42), 170)
	test.ExpectEquality(t, spec.Expand6Bit(21), 85)

	// only the bottom six bits are used
	test.ExpectEquality(t, spec.Expand6Bit(0xff), 255)
}

func TestDefaultPalette(t *testing.T) {
	// the colours used by the game
	test.ExpectEquality(t, spec.VGA.Palette[0], color.RGBA{0, 0, 0, 255})
	test.ExpectEquality(t, spec.VGA.Palette[14], color.RGBA{255, 255, 85, 255})
	test.ExpectEquality(t, spec.VGA.Palette[15], color.RGBA{255, 255, 255, 255})

	// first and last entries of the colour cube
	test.ExpectEquality(t, spec.VGA.Palette[16], color.RGBA{0, 0, 0, 255})
	test.ExpectEquality(t, spec.VGA.Palette[231], color.RGBA{255, 255, 255, 255})

	// the grey ramp ends in white
	test.ExpectEquality(t, spec.VGA.Palette[255], color.RGBA{255, 255, 255, 255})
}

func TestRasterTiming(t *testing.T) {
	// 31.469kHz over 449 lines is the 70Hz refresh of mode 13h
	hz := spec.VGA.HorizScan / float64(spec.VGA.AbsoluteBottom)
	test.ExpectSuccess(t, hz > 70.0 && hz < 70.2, hz)

	test.ExpectSuccess(t, spec.VGA.RetraceStart > spec.VGA.BlankStart)
	test.ExpectSuccess(t, spec.VGA.RetraceEnd < spec.VGA.BlankEnd)
	test.ExpectSuccess(t, spec.VGA.BlankEnd < spec.VGA.AbsoluteBottom)
}
