// Package keyboard implements the BIOS type-ahead buffer. Keystrokes are
// pushed by the host goroutine and consumed by the BIOS keyboard services on
// the machine goroutine.
//
// The buffer is a ring of sixteen slots, one of which is always empty, so at
// most fifteen keystrokes are waiting at any one time. A keystroke pushed
// into a full buffer is dropped, which is what the PC BIOS does (it also
// beeps but there is no speaker here).
package keyboard

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/pong13h/logger"
)

const slots = 16

// Capacity is the number of keystrokes the buffer can hold
const Capacity = slots - 1

// Keystroke is one entry in the type-ahead buffer
type Keystroke struct {
	ASCII uint8
	Scan  uint8
}

func (k Keystroke) String() string {
	if k.ASCII >= 0x20 && k.ASCII < 0x7f {
		return fmt.Sprintf("%q (scan %02x)", rune(k.ASCII), k.Scan)
	}
	return fmt.Sprintf("%02x (scan %02x)", k.ASCII, k.Scan)
}

type Buffer struct {
	crit sync.Mutex
	ring [slots]Keystroke
	head int
	tail int

	// nudged whenever a keystroke is pushed. a blocked Read() waits on it
	nudge chan bool
}

func NewBuffer() *Buffer {
	return &Buffer{
		nudge: make(chan bool, 1),
	}
}

// Push adds a keystroke to the tail of the buffer. Returns false if the
// buffer was full and the keystroke dropped
func (b *Buffer) Push(k Keystroke) bool {
	b.crit.Lock()
	next := (b.tail + 1) % slots
	if next == b.head {
		b.crit.Unlock()
		logger.Logf(logger.Allow, "keyboard", "buffer full: dropped %s", k)
		return false
	}
	b.ring[b.tail] = k
	b.tail = next
	b.crit.Unlock()

	select {
	case b.nudge <- true:
	default:
	}
	return true
}

// PushASCII adds a keystroke for the ASCII value, with the scan code the
// standard US layout would produce
func (b *Buffer) PushASCII(ascii uint8) bool {
	return b.Push(Keystroke{ASCII: ascii, Scan: ScanCode(ascii)})
}

// Status returns the keystroke at the head of the buffer without removing it.
// The boolean is false if the buffer is empty
func (b *Buffer) Status() (Keystroke, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.head == b.tail {
		return Keystroke{}, false
	}
	return b.ring[b.head], true
}

// Len returns the number of waiting keystrokes
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return (b.tail - b.head + slots) % slots
}

func (b *Buffer) pop() (Keystroke, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.head == b.tail {
		return Keystroke{}, false
	}
	k := b.ring[b.head]
	b.head = (b.head + 1) % slots
	return k, true
}

// Read removes and returns the keystroke at the head of the buffer, waiting
// for one to be pushed if necessary. There is no timeout
func (b *Buffer) Read() Keystroke {
	for {
		if k, ok := b.pop(); ok {
			return k
		}
		<-b.nudge
	}
}

// Flush empties the buffer
func (b *Buffer) Flush() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.head = 0
	b.tail = 0
}
