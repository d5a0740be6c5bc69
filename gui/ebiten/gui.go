// Package ebiten is the windowed host. The screen of the machine is shown in a
// resizable window and keystrokes typed into the window are pushed into the
// BIOS keyboard buffer.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/logger"
	"github.com/jetsetilly/pong13h/version"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	started bool
	endGui  chan bool

	frames *gui.Frames
	main   *ebiten.Image

	// width/height of incoming image from the video adapter. not to be
	// confused with window dimensions
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System

	paste pasteboard
}

func (eg *guiEbiten) initialise() {
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)
	eg.started = true
}

func (eg *guiEbiten) Update() error {
	if !eg.started {
		eg.initialise()
	}

	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	case <-eg.g.Terminated:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.input()
	if err != nil {
		return ebiten.Termination
	}

	// retrieve the screen if it has changed
	if img, changed := eg.frames.Pull(); changed {
		if eg.main == nil || eg.main.Bounds() != img.Bounds() {
			eg.width = img.Bounds().Dx()
			eg.height = img.Bounds().Dy()
			eg.main = ebiten.NewImage(eg.width, eg.height)
		}
		eg.main.WritePixels(img.Pix)
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(screen.Bounds().Dx())/float64(eg.width), float64(screen.Bounds().Dy())/float64(eg.height))
		screen.DrawImage(eg.main, &op)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

// the text mode image is twice the size of the graphics mode image. the
// layout is always the size of the graphics mode so that the window doesn't
// change size when the mode changes
func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return layoutWidth, layoutHeight
}

const (
	layoutWidth  = 640
	layoutHeight = 400
)

// Launch the ebiten host. The function returns when the window is closed,
// when the user quits or when endGui is signalled
func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	scale := max(g.Scale, 1)
	ebiten.SetWindowSize(layoutWidth*scale/2, layoutHeight*scale/2)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		frames: gui.NewFrames(g.Screen),
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
