package input_test

import (
	"testing"

	"github.com/jetsetilly/pong13h/input"
	"github.com/jetsetilly/pong13h/test"
)

// keys is a keyboard that fails the test if a blocking read is made when
// there are no keys waiting
type keys struct {
	t       *testing.T
	pending []uint8
	status  int
}

func (k *keys) GetKeyStatus() bool {
	k.status++
	return len(k.pending) > 0
}

func (k *keys) ReadKeyBlocking() uint8 {
	if len(k.pending) == 0 {
		k.t.Fatalf("blocking read with no keys waiting")
	}
	v := k.pending[0]
	k.pending = k.pending[1:]
	return v
}

type receiver struct {
	got []uint8
}

func (r *receiver) Key(ascii uint8) {
	r.got = append(r.got, ascii)
}

func TestProcessKeyInput(t *testing.T) {
	k := &keys{t: t, pending: []uint8("wwsx")}
	s := input.NewService(k)

	var r receiver
	s.ProcessKeyInput(&r)
	test.ExpectEquality(t, string(r.got), "wwsx")
	test.ExpectEquality(t, len(k.pending), 0)

	// nothing waiting. returns without blocking
	r.got = r.got[:0]
	s.ProcessKeyInput(&r)
	test.ExpectEquality(t, len(r.got), 0)
}

func TestReadASCII(t *testing.T) {
	k := &keys{t: t}
	s := input.NewService(k)

	test.ExpectFailure(t, s.KeyInputAvailable())
	test.ExpectEquality(t, s.ReadASCII(), uint8(0))

	k.pending = []uint8{'a', 'b'}
	test.ExpectSuccess(t, s.KeyInputAvailable())
	test.ExpectEquality(t, s.ReadASCII(), uint8('a'))
	test.ExpectEquality(t, s.ReadASCIIBlocking(), uint8('b'))
	test.ExpectEquality(t, s.ReadASCII(), uint8(0))
}
