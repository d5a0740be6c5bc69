package gui

import "image"

// Frames pulls images from a Screen. The screen is only rendered if it has
// changed since the previous pull
type Frames struct {
	screen Screen
	serial uint64
	img    *image.RGBA
}

func NewFrames(screen Screen) *Frames {
	return &Frames{
		screen: screen,
	}
}

// Pull returns the most recent image of the screen and whether the image has
// changed since the last call to Pull(). The returned image is reused by later
// calls and should not be kept
func (f *Frames) Pull() (*image.RGBA, bool) {
	s := f.screen.Serial()
	if f.img != nil && s == f.serial {
		return f.img, false
	}
	f.serial = s
	f.img = f.screen.Render(f.img)
	return f.img, true
}
