package vga

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jetsetilly/pong13h/hardware/spec"
)

// baseline of a glyph inside its character cell
const glyphBaseline = 12

// cursor scanlines inside a character cell
const (
	cursorStart = 14
	cursorEnd   = 16
)

// Bounds returns the size of the image produced by Render() in the current
// mode
func (v *VGA) Bounds() image.Rectangle {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.bounds()
}

func (v *VGA) bounds() image.Rectangle {
	if v.mode == ModeGraphics {
		return image.Rect(0, 0, spec.ScreenWidth, spec.ScreenHeight)
	}
	return image.Rect(0, 0, spec.TextWidth, spec.TextHeight)
}

// Render draws the screen into img. If img is nil or the wrong size for the
// current mode a new image is allocated. The image drawn to is returned
//
// Mode 13h renders to a 320x200 image and the text mode to a 640x400 image
func (v *VGA) Render(img *image.RGBA) *image.RGBA {
	v.crit.RLock()
	defer v.crit.RUnlock()

	b := v.bounds()
	if img == nil || img.Bounds() != b {
		img = image.NewRGBA(b)
	}

	if v.mode == ModeGraphics {
		v.renderGraphics(img)
	} else {
		v.renderText(img)
	}
	return img
}

func (v *VGA) renderGraphics(img *image.RGBA) {
	for y := range spec.ScreenHeight {
		row := img.Pix[y*img.Stride:]
		for x := range spec.ScreenWidth {
			c := v.palette[v.graphics[y*spec.ScreenWidth+x]]
			i := x * 4
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

func (v *VGA) renderText(img *image.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Face: basicfont.Face7x13,
	}

	var glyph [1]byte
	for row := range spec.TextRows {
		for col := range spec.TextCols {
			i := (row*spec.TextCols + col) * 2
			ch := v.text[i]
			attr := v.text[i+1]

			fg := v.palette[attr&0x0f]
			bg := v.palette[(attr>>4)&0x07]

			cell := image.Rect(col*spec.TextCellWidth, row*spec.TextCellHeight,
				(col+1)*spec.TextCellWidth, (row+1)*spec.TextCellHeight)
			draw.Draw(img, cell, image.NewUniform(bg), image.Point{}, draw.Src)

			if ch > ' ' {
				glyph[0] = ch
				d.Src = image.NewUniform(fg)
				d.Dot = fixed.P(cell.Min.X, cell.Min.Y+glyphBaseline)
				d.DrawBytes(glyph[:])
			}

			if col == v.cursorCol && row == v.cursorRow {
				cursor := image.Rect(cell.Min.X, cell.Min.Y+cursorStart, cell.Max.X, cell.Min.Y+cursorEnd)
				draw.Draw(img, cursor, image.NewUniform(fg), image.Point{}, draw.Src)
			}
		}
	}
}

// Palette returns a copy of the palette currently loaded in the DAC
func (v *VGA) Palette() [256]color.RGBA {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.palette
}

// TextAt returns the character and attribute at a text mode cell
func (v *VGA) TextAt(col int, row int) (uint8, uint8) {
	v.crit.RLock()
	defer v.crit.RUnlock()
	i := (row*spec.TextCols + col) * 2
	return v.text[i], v.text[i+1]
}

// Pixel returns the palette index at a mode 13h coordinate
func (v *VGA) Pixel(x int, y int) uint8 {
	v.crit.RLock()
	defer v.crit.RUnlock()
	return v.graphics[y*spec.ScreenWidth+x]
}
