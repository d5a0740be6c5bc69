// Package timing provides the millisecond wait used to pace the frame loop.
package timing

// Delayer is satisfied by firmware.Firmware
type Delayer interface {
	DelayMicros(hi uint16, lo uint16)
}

// WaitMillis blocks for the number of milliseconds. The microsecond count is
// split into the two halves expected by the BIOS wait service. There is no
// compensation for time spent elsewhere in the frame
func WaitMillis(fw Delayer, ms uint16) {
	us := uint32(ms) * 1000
	fw.DelayMicros(uint16(us>>16), uint16(us))
}
