package resources_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/pong13h/resources"
	"github.com/jetsetilly/pong13h/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h")

	// base path is not prepended twice
	pth, err = resources.JoinPath(".pong13h/window")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".pong13h/window")

	_, err = os.Stat(".pong13h/foo/bar")
	test.ExpectSuccess(t, err)
}

func TestReadWrite(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	test.ExpectSuccess(t, resources.Write("window", "10 10 960 600"))
	s, err = resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10 10 960 600")

	test.ExpectSuccess(t, resources.Write("window", "0 0 320 200"))
	s, err = resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "0 0 320 200")

	// no temporary files are left behind
	entries, err := os.ReadDir(".pong13h")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}
