package ram

import (
	"fmt"
	"strings"
)

// RAM is a plain block of read/write memory. It is not safe for concurrent
// use; the frame loop is the only goroutine that touches conventional memory
type RAM struct {
	label string
	data  []uint8
}

func Create(label string, size int) *RAM {
	return &RAM{
		label: label,
		data:  make([]uint8, size),
	}
}

func (r *RAM) Reset() {
	clear(r.data)
}

func (r *RAM) String() string {
	var s strings.Builder
	for i := 0; i <= (len(r.data)-1)/16; i++ {
		j := i * 16
		k := min(j+16, len(r.data))
		s.WriteString(fmt.Sprintf("%05x : % 02x\n", j, r.data[j:k]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r *RAM) Label() string {
	return r.label
}

func (r *RAM) Size() uint32 {
	return uint32(len(r.data))
}

func (r *RAM) Read(idx uint32) (uint8, error) {
	if idx >= uint32(len(r.data)) {
		return 0, fmt.Errorf("%s: read out of range: %05x", r.label, idx)
	}
	return r.data[idx], nil
}

func (r *RAM) Write(idx uint32, data uint8) error {
	if idx >= uint32(len(r.data)) {
		return fmt.Errorf("%s: write out of range: %05x", r.label, idx)
	}
	r.data[idx] = data
	return nil
}

// Access implements the memory.Block interface
func (r *RAM) Access(idx uint32, n uint32, f func(data []uint8)) bool {
	if uint64(idx)+uint64(n) > uint64(len(r.data)) {
		return false
	}
	f(r.data[idx : idx+n])
	return true
}
