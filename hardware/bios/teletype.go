package bios

import (
	"strings"

	"github.com/jetsetilly/pong13h/hardware/memory"
	"github.com/jetsetilly/pong13h/hardware/spec"
	"github.com/jetsetilly/pong13h/hardware/vga"
	"github.com/jetsetilly/pong13h/logger"
)

const rowBytes = spec.TextCols * 2

// a blank character cell, twice over
const blankCells = uint32(vga.DefaultAttribute)<<24 | uint32(' ')<<16 | uint32(vga.DefaultAttribute)<<8 | uint32(' ')

// Print implements the firmware.Firmware interface. The string is terminated
// by the first '$'. If there is no '$' the entire string is printed
func (b *BIOS) Print(s string) {
	if i := strings.IndexByte(s, '$'); i >= 0 {
		s = s[:i]
	}
	logger.Logf(&b.trace, "bios", "int 21h/09h: print %q", s)

	if b.vga.Mode() != vga.ModeText {
		logger.Log(logger.Allow, "bios", "print while not in text mode")
	}

	col, row := b.vga.Cursor()
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\r':
			col = 0
		case '\n':
			row++
		case '\b':
			if col > 0 {
				col--
			}
		case '\a':
		case '\t':
			col = (col + 8) &^ 7
		default:
			off := uint16(row*rowBytes + col*2)
			b.text.Write(off, ch)
			b.text.Write(off+1, vga.DefaultAttribute)
			col++
		}

		if col >= spec.TextCols {
			col = 0
			row++
		}
		if row >= spec.TextRows {
			b.scroll()
			row = spec.TextRows - 1
		}
	}
	b.vga.SetCursor(col, row)
}

// scroll the text screen up by one row and blank the bottom row
func (b *BIOS) scroll() {
	memory.MoveDwords(b.text, 0, b.text, rowBytes, (spec.TextRows-1)*rowBytes/4)
	b.text.StoreDwords((spec.TextRows-1)*rowBytes, rowBytes/4, blankCells)
}
