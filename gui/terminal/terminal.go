// Package terminal is a host that runs inside a terminal. Mode 13h is drawn
// with half-block characters, two screen rows to a character cell, and scaled
// to the size of the terminal. The text mode is drawn character for
// character.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/hardware/spec"
	"github.com/jetsetilly/pong13h/hardware/vga"
)

// how often the terminal is redrawn. the terminal can't keep up with the 70Hz
// refresh rate of the VGA so there's no point trying
const refresh = 30 * time.Millisecond

const halfBlock = '▀'

// textScreen is implemented by screens that can be drawn character for
// character when in text mode
type textScreen interface {
	Mode() uint8
	TextAt(col int, row int) (uint8, uint8)
	Palette() [256]color.RGBA
	Cursor() (int, int)
}

type guiTerminal struct {
	g      *gui.GUI
	screen tcell.Screen
	frames *gui.Frames
	text   textScreen

	// the terminal has been resized and must be redrawn even if the machine's
	// screen hasn't changed
	dirty bool
}

func newTerminal(g *gui.GUI, screen tcell.Screen) *guiTerminal {
	t := &guiTerminal{
		g:      g,
		screen: screen,
		frames: gui.NewFrames(g.Screen),
		dirty:  true,
	}
	if ts, ok := g.Screen.(textScreen); ok {
		t.text = ts
	}
	return t
}

// Launch the terminal host. The function returns when the user quits, when
// the program on the machine terminates or when endGui is signalled
func Launch(endGui chan bool, g *gui.GUI) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return run(endGui, g, screen)
}

func run(endGui chan bool, g *gui.GUI, screen tcell.Screen) error {
	defer screen.Fini()

	t := newTerminal(g, screen)

	quit := make(chan bool)
	defer close(quit)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-endGui:
			return nil
		case <-g.Terminated:
			return nil
		case ev := <-events:
			if err := t.handle(ev); err != nil {
				// the only error returned by handle() is ErrQuit
				return nil
			}
		case <-ticker.C:
			t.draw()
		}
	}
}

func (t *guiTerminal) push(ascii uint8) {
	t.g.Keys.PushASCII(ascii)
}

func (t *guiTerminal) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return gui.ErrQuit
		case tcell.KeyEnter:
			t.push('\r')
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			t.push(0x08)
		case tcell.KeyTab:
			t.push('\t')
		case tcell.KeyRune:
			if a, ok := gui.RuneToASCII(ev.Rune()); ok {
				t.push(a)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.dirty = true
	}
	return nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *guiTerminal) draw() {
	img, changed := t.frames.Pull()
	if !changed && !t.dirty {
		return
	}
	t.dirty = false

	if t.text != nil && t.text.Mode() == vga.ModeText {
		t.drawText()
	} else {
		t.drawImage(img)
	}
	t.screen.Show()
}

func (t *guiTerminal) drawImage(img *image.RGBA) {
	t.screen.HideCursor()

	w, h := t.screen.Size()
	if w == 0 || h == 0 {
		return
	}

	b := img.Bounds()
	for cy := range h {
		top := b.Min.Y + (cy*2)*b.Dy()/(h*2)
		bottom := b.Min.Y + (cy*2+1)*b.Dy()/(h*2)
		for cx := range w {
			x := b.Min.X + cx*b.Dx()/w
			style := tcell.StyleDefault.
				Foreground(rgb(img.RGBAAt(x, top))).
				Background(rgb(img.RGBAAt(x, bottom)))
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (t *guiTerminal) drawText() {
	t.screen.Clear()

	w, h := t.screen.Size()
	pal := t.text.Palette()

	for row := range min(h, spec.TextRows) {
		for col := range min(w, spec.TextCols) {
			ch, attr := t.text.TextAt(col, row)
			r := rune(ch)
			if ch < 0x20 || ch > 0x7e {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(rgb(pal[attr&0x0f])).
				Background(rgb(pal[(attr>>4)&0x07]))
			t.screen.SetContent(col, row, r, nil, style)
		}
	}

	col, row := t.text.Cursor()
	t.screen.ShowCursor(col, row)
}
