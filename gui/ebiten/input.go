package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"
	"golang.design/x/clipboard"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/logger"
)

const (
	ActionQuit input.Action = iota
	ActionFullScreen
	ActionPaddleUp
	ActionPaddleDown
)

var keymap = input.Keymap{
	ActionQuit:       {input.KeyEscape},
	ActionFullScreen: {input.KeyF11},
	ActionPaddleUp:   {input.KeyGamepadUp},
	ActionPaddleDown: {input.KeyGamepadDown},
}

// the gamepad d-pad types the same keys as the keyboard controls
const (
	keyPaddleUp   = 'w'
	keyPaddleDown = 's'
)

// the clipboard package must be initialised before use and initialisation can
// fail if there is no clipboard on the system
type pasteboard struct {
	once sync.Once
	ok   bool
}

func (c *pasteboard) read() []byte {
	c.once.Do(func() {
		err := clipboard.Init()
		if err != nil {
			logger.Logf(logger.Allow, "gui", "clipboard unavailable: %v", err)
			return
		}
		c.ok = true
	})
	if !c.ok {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

func (eg *guiEbiten) input() error {
	eg.inputSystem.Update()

	if eg.inputHandler.ActionIsJustPressed(ActionQuit) {
		return gui.ErrQuit
	}
	if eg.inputHandler.ActionIsJustPressed(ActionFullScreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if eg.inputHandler.ActionIsJustPressed(ActionPaddleUp) {
		eg.g.Keys.PushASCII(keyPaddleUp)
	}
	if eg.inputHandler.ActionIsJustPressed(ActionPaddleDown) {
		eg.g.Keys.PushASCII(keyPaddleDown)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	// paste clipboard with ctrl+shift+v
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if b := eg.paste.read(); len(b) > 0 {
			gui.Type(eg.g.Keys, b)
		}
		return nil
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if a, ok := gui.RuneToASCII(r); ok {
			eg.g.Keys.PushASCII(a)
		}
	}

	// keys that don't produce characters
	var pressed []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	for _, p := range pressed {
		switch p {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			eg.g.Keys.PushASCII('\r')
		case ebiten.KeyBackspace:
			eg.g.Keys.PushASCII(0x08)
		case ebiten.KeyTab:
			eg.g.Keys.PushASCII('\t')
		}
	}

	return nil
}
