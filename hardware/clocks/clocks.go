// Package clocks defines the oscillator frequencies of the VGA adapter.
package clocks

const Mhz = 1000000

// VGA_25 is the dot clock used by mode 13h. the 80 column text mode runs
// from the same clock in our emulation
const VGA_25 = 25.175 * Mhz

// DotsScanline is the number of dot clocks in one scanline including the
// horizontal blanking interval
const DotsScanline = 800

// HorizScan is the horizontal scan rate in Hz (31.469kHz)
const HorizScan = VGA_25 / DotsScanline
