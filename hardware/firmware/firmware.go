// Package firmware defines the boundary between the game and the machine it
// runs on: the BIOS and DOS services it calls and the I/O ports it reads.
//
// All calls are synchronous. None of them fail and none of them are retried.
package firmware

import "fmt"

// VideoMode is a mode number as understood by the video BIOS
type VideoMode uint8

const (
	// 80x25 16 colour text
	ModeText VideoMode = 0x03

	// 320x200 256 colour graphics with a linear framebuffer at A000h
	ModeVGA256 VideoMode = 0x13
)

func (m VideoMode) String() string {
	switch m {
	case ModeText:
		return "text (03h)"
	case ModeVGA256:
		return "vga256 (13h)"
	}
	return fmt.Sprintf("unknown (%02xh)", uint8(m))
}

// Delayer is the subset of Firmware needed to wait
type Delayer interface {
	// DelayMicros blocks for hi<<16|lo microseconds
	DelayMicros(hi uint16, lo uint16)
}

// Keyboard is the subset of Firmware needed to read keystrokes
type Keyboard interface {
	// GetKeyStatus returns true if a keystroke is waiting. It never blocks
	GetKeyStatus() bool

	// ReadKeyBlocking waits for a keystroke and returns its ASCII value. The
	// scan code is discarded
	ReadKeyBlocking() uint8
}

// Firmware is the set of BIOS and DOS services available to the game
type Firmware interface {
	Keyboard
	Delayer

	// SetVideoMode programs the adapter and clears the screen. Calling it
	// with the active mode has the same end state as calling it once
	SetVideoMode(mode VideoMode)

	// Print writes a '$' terminated string to the text screen at the cursor
	Print(s string)

	// Terminate ends the program with the exit status
	Terminate(status uint8)
}

// Ports gives access to the I/O address space
type Ports interface {
	In(port uint16) uint8
}

// StatusRegister is the VGA input status register #1 in colour mode
const StatusRegister = 0x3da

// bits of StatusRegister
const (
	StatusDisplayDisabled = 0x01
	StatusVerticalRetrace = 0x08
)
