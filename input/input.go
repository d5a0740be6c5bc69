// Package input is the keyboard service used by the game. It polls the
// firmware keyboard services and never waits for a key unless asked to.
package input

import "github.com/jetsetilly/pong13h/hardware/firmware"

// Receiver is given each keystroke drained by ProcessKeyInput()
type Receiver interface {
	Key(ascii uint8)
}

type Service struct {
	fw firmware.Keyboard
}

func NewService(fw firmware.Keyboard) *Service {
	return &Service{fw: fw}
}

// KeyInputAvailable returns true if a keystroke is waiting
func (s *Service) KeyInputAvailable() bool {
	return s.fw.GetKeyStatus()
}

// ReadASCIIBlocking waits for a keystroke and returns its ASCII value
func (s *Service) ReadASCIIBlocking() uint8 {
	return s.fw.ReadKeyBlocking()
}

// ReadASCII returns the ASCII value of the waiting keystroke or zero if there
// is no keystroke waiting
func (s *Service) ReadASCII() uint8 {
	if !s.fw.GetKeyStatus() {
		return 0
	}
	return s.fw.ReadKeyBlocking()
}

// ProcessKeyInput passes every waiting keystroke to the receiver, in the
// order they were typed. It returns when there are no more keystrokes
func (s *Service) ProcessKeyInput(r Receiver) {
	for s.fw.GetKeyStatus() {
		r.Key(s.fw.ReadKeyBlocking())
	}
}
