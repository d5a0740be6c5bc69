package loop

import (
	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/input"
)

// KeyTest is a program that echoes every key typed to the text screen. It is
// useful for checking that a host is delivering keystrokes
type KeyTest struct {
	fw    firmware.Firmware
	input *input.Service
}

func NewKeyTest(fw firmware.Firmware) *KeyTest {
	return &KeyTest{
		fw:    fw,
		input: input.NewService(fw),
	}
}

// Run the program until stop is signalled. The stop channel is checked after
// every keystroke, so the program will not notice the signal until a key is
// pressed
func (k *KeyTest) Run(stop <-chan bool) {
	k.fw.SetVideoMode(firmware.ModeText)
	k.fw.Print("Press any key\r\n$")

	for {
		select {
		case <-stop:
			k.fw.Terminate(0)
			return
		default:
		}

		ch := k.input.ReadASCIIBlocking()
		switch ch {
		case '$':
			// the print service can't output its own terminator
			continue
		case 0:
			// extended keys have no ASCII value
			continue
		}
		k.fw.Print(string([]byte{ch, '$'}))
	}
}
