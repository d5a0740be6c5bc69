// Package headless is a host with no screen. Keystrokes are read from stdin
// when stdin is a terminal and from an input script when one is supplied.
//
// The headless host is used for automated runs of the game. Combined with a
// fixed seed and an input script every run is identical.
package headless

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jetsetilly/pong13h/gui"
)

// control codes read from a raw terminal
const (
	ctrlC     = 0x03
	escape    = 0x1b
	del       = 0x7f
	backspace = 0x08
)

// Launch the headless host. The function returns when the user quits, when
// the program on the machine terminates or when endGui is signalled
//
// If stdin is a terminal it is put into raw mode for the duration of the
// function and read for keystrokes
func Launch(endGui chan bool, g *gui.GUI) error {
	fd := int(os.Stdin.Fd())

	quit := make(chan error, 1)

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("headless: %w", err)
		}
		defer term.Restore(fd, state)

		// the goroutine is left blocked on stdin if the host ends for any
		// reason other than a key press
		go func() {
			quit <- readKeys(os.Stdin, g.Keys)
		}()
	}

	select {
	case <-endGui:
	case <-g.Terminated:
	case err := <-quit:
		if err != nil && !errors.Is(err, gui.ErrQuit) {
			return fmt.Errorf("headless: %w", err)
		}
	}
	return nil
}

// readKeys pushes every byte read from r as a keystroke. Returns ErrQuit if a
// quit key is read and nil at the end of the input
func readKeys(r io.Reader, keys gui.Keys) error {
	b := bufio.NewReader(r)
	for {
		c, err := b.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch c {
		case ctrlC, escape:
			return gui.ErrQuit
		case del:
			c = backspace
		}
		if c <= 0x7f {
			keys.PushASCII(c)
		}
	}
}

// Output returns a writer suitable for output while the host is running. When
// stdin is a terminal in raw mode line feeds must be accompanied by a carriage
// return
func Output(w io.Writer) io.Writer {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return w
	}
	return &crlf{w: w}
}

type crlf struct {
	w io.Writer
}

func (c *crlf) Write(p []byte) (int, error) {
	var n int
	for len(p) > 0 {
		i := 0
		for i < len(p) && p[i] != '\n' {
			i++
		}
		m, err := c.w.Write(p[:i])
		n += m
		if err != nil {
			return n, err
		}
		if i == len(p) {
			break
		}
		if _, err := c.w.Write([]byte{'\r', '\n'}); err != nil {
			return n, err
		}
		n++
		p = p[i+1:]
	}
	return n, nil
}
