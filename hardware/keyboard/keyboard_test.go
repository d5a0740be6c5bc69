package keyboard_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/pong13h/hardware/keyboard"
	"github.com/jetsetilly/pong13h/test"
)

func TestFIFO(t *testing.T) {
	b := keyboard.NewBuffer()

	_, ok := b.Status()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, b.PushASCII('w'))
	test.ExpectSuccess(t, b.PushASCII('s'))
	test.ExpectEquality(t, b.Len(), 2)

	k, ok := b.Status()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keyboard.Keystroke{ASCII: 'w', Scan: 0x11})

	// status does not consume
	test.ExpectEquality(t, b.Len(), 2)

	test.ExpectEquality(t, b.Read().ASCII, uint8('w'))
	test.ExpectEquality(t, b.Read().ASCII, uint8('s'))
	test.ExpectEquality(t, b.Len(), 0)
}

func TestOverflow(t *testing.T) {
	b := keyboard.NewBuffer()

	for i := range keyboard.Capacity {
		test.ExpectSuccess(t, b.PushASCII(uint8('a'+i)), i)
	}
	test.ExpectEquality(t, b.Len(), keyboard.Capacity)

	// the sixteenth keystroke is dropped
	test.ExpectFailure(t, b.PushASCII('z'))
	test.ExpectEquality(t, b.Len(), keyboard.Capacity)

	for i := range keyboard.Capacity {
		test.ExpectEquality(t, b.Read().ASCII, uint8('a'+i), i)
	}

	// space is available again after draining and the ring wraps correctly
	for i := range keyboard.Capacity {
		test.ExpectSuccess(t, b.PushASCII(uint8('A'+i)), i)
	}
	test.ExpectEquality(t, b.Read().ASCII, uint8('A'))
}

func TestBlockingRead(t *testing.T) {
	b := keyboard.NewBuffer()

	result := make(chan keyboard.Keystroke)
	go func() {
		result <- b.Read()
	}()

	select {
	case <-result:
		t.Fatalf("read returned before a key was pushed")
	case <-time.After(10 * time.Millisecond):
	}

	b.PushASCII('q')

	select {
	case k := <-result:
		test.ExpectEquality(t, k.ASCII, uint8('q'))
	case <-time.After(time.Second):
		t.Fatalf("read did not return after a key was pushed")
	}
}

func TestFlush(t *testing.T) {
	b := keyboard.NewBuffer()
	b.PushASCII('x')
	b.PushASCII('y')
	b.Flush()
	test.ExpectEquality(t, b.Len(), 0)
	_, ok := b.Status()
	test.ExpectFailure(t, ok)
}

func TestScanCode(t *testing.T) {
	test.ExpectEquality(t, keyboard.ScanCode('w'), uint8(0x11))
	test.ExpectEquality(t, keyboard.ScanCode('W'), uint8(0x11))
	test.ExpectEquality(t, keyboard.ScanCode('s'), uint8(0x1f))
	test.ExpectEquality(t, keyboard.ScanCode('\r'), uint8(0x1c))
	test.ExpectEquality(t, keyboard.ScanCode('!'), uint8(0x02))
	test.ExpectEquality(t, keyboard.ScanCode(0x03), uint8(0x2e))
	test.ExpectEquality(t, keyboard.ScanCode(0x80), uint8(0))
}
