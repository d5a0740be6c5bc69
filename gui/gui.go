// Package gui contains the types shared by the host front-ends. A host is the
// monitor and keyboard of the machine: it shows what the video adapter
// produces and types keystrokes into the BIOS keyboard buffer.
//
// Implementations of a host are in the sub-packages.
package gui

import (
	"errors"
	"image"
)

// ErrQuit is used by hosts to indicate that the user has asked to quit. It is
// not returned from a host's Launch() function
var ErrQuit = errors.New("quit")

// Screen is the monitor side of the machine
type Screen interface {
	// Serial changes whenever the output of Render() would change
	Serial() uint64

	// Render draws the screen into the supplied image, allocating a new image
	// if necessary
	Render(img *image.RGBA) *image.RGBA
}

// Keys is the keyboard side of the machine
type Keys interface {
	// PushASCII returns false if the keystroke was dropped
	PushASCII(ascii uint8) bool
}

// GUI is passed to a host's Launch() function
type GUI struct {
	Screen Screen
	Keys   Keys

	// closed when the program running on the machine has terminated. the
	// host should end when this happens
	Terminated <-chan bool

	// size of a screen pixel in host pixels. not all hosts can honour this
	Scale int
}

// NewGUI is the preferred method of initialisation for the GUI type
func NewGUI(screen Screen, keys Keys, terminated <-chan bool) *GUI {
	return &GUI{
		Screen:     screen,
		Keys:       keys,
		Terminated: terminated,
		Scale:      1,
	}
}

// Ended returns true if the program running on the machine has terminated
func (g *GUI) Ended() bool {
	select {
	case <-g.Terminated:
		return true
	default:
	}
	return false
}
