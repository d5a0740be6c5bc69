package logger_test

import (
	"testing"

	"github.com/jetsetilly/pong13h/logger"
	"github.com/jetsetilly/pong13h/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "keyboard", "buffer full")
	logger.Log(logger.Allow, "keyboard", "buffer full")
	logger.Logf(logger.Allow, "keyboard", "buffer %s", "full")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "keyboard: buffer full (repeat x3)\n")
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(deny{}, "bios", "int 10h")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "display", "flip without retrace")
	test.ExpectEquality(t, tw.String(), "display: flip without retrace\n")
}
