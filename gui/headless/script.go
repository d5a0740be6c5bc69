package headless

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/logger"
)

// the name of the function in the script that is called every frame
const keysFunction = "keys"

// Script is an input script written in Lua. The script must define a global
// function called keys(), which is called with the frame number after every
// frame. The function returns a string of keystrokes to type, or nil
//
//	function keys(frame)
//		if frame % 10 == 0 then
//			return "w"
//		end
//	end
//
// The script can call stop() to end the run and log(msg) to add a message to
// the log
type Script struct {
	name    string
	L       *lua.LState
	fn      lua.LValue
	stopped bool
}

// LoadScript loads the input script from the named file
func LoadScript(filename string) (*Script, error) {
	s := newScript(filename)
	if err := s.L.DoFile(filename); err != nil {
		s.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewScript creates an input script from source
func NewScript(name string, source string) (*Script, error) {
	s := newScript(name)
	if err := s.L.DoString(source); err != nil {
		s.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func newScript(name string) *Script {
	s := &Script{
		name: name,
		L:    lua.NewState(),
	}

	s.L.SetGlobal("stop", s.L.NewFunction(func(L *lua.LState) int {
		s.stopped = true
		return 0
	}))
	s.L.SetGlobal("log", s.L.NewFunction(func(L *lua.LState) int {
		logger.Log(logger.Allow, s.name, L.CheckString(1))
		return 0
	}))

	return s
}

func (s *Script) init() error {
	s.fn = s.L.GetGlobal(keysFunction)
	if s.fn.Type() != lua.LTFunction {
		s.Close()
		return fmt.Errorf("script: %s: no %s() function", s.name, keysFunction)
	}
	return nil
}

// Close the Lua state
func (s *Script) Close() {
	s.L.Close()
}

// Stopped returns true if the script has called stop()
func (s *Script) Stopped() bool {
	return s.stopped
}

// Keys calls the keys() function in the script for the frame and returns the
// keystrokes it wants typed
func (s *Script) Keys(frame uint64) (string, error) {
	err := s.L.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(frame))
	if err != nil {
		return "", fmt.Errorf("script: %w", err)
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)

	switch ret.Type() {
	case lua.LTNil:
		return "", nil
	case lua.LTString, lua.LTNumber:
		return ret.String(), nil
	}
	return "", fmt.Errorf("script: %s: %s() returned a %s", s.name, keysFunction, ret.Type())
}

// ErrStopped is returned by Feed() when the script has called stop()
var ErrStopped = errors.New("script stopped")

// Feed calls Keys() for the frame and types the result
func (s *Script) Feed(frame uint64, keys gui.Keys) error {
	k, err := s.Keys(frame)
	if err != nil {
		return err
	}
	gui.Type(keys, []byte(k))
	if s.stopped {
		return ErrStopped
	}
	return nil
}
