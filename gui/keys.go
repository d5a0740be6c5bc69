package gui

import "github.com/jetsetilly/pong13h/logger"

// Type pushes every byte of text as a keystroke. Line endings are converted to
// carriage returns, which is what the enter key produces. Bytes outside of the
// ASCII range are ignored
//
// Returns the number of keystrokes accepted. Typing stops at the first
// keystroke the buffer drops
func Type(keys Keys, text []byte) int {
	var n int
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch b {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		case '\n':
			b = '\r'
		}
		if b > 0x7f {
			continue
		}
		if !keys.PushASCII(b) {
			logger.Logf(logger.Allow, "gui", "typing stopped after %d of %d bytes", n, len(text))
			return n
		}
		n++
	}
	return n
}

// RuneToASCII converts a rune from a host's key event to the ASCII value the
// BIOS keyboard buffer expects
func RuneToASCII(r rune) (uint8, bool) {
	if r <= 0 || r > 0x7f {
		return 0, false
	}
	return uint8(r), true
}
