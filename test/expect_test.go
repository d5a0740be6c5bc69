package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/pong13h/test"
)

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
}

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	tw.Write([]byte("hello "))
	tw.Write([]byte("world"))
	test.ExpectSuccess(t, tw.Compare("hello world"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
