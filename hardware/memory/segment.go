package memory

import (
	"encoding/binary"
	"fmt"
)

// Segment is a 64K window of the address space starting at Selector*16.
// Offsets are 16 bit and wrap within the segment, as DI and SI do for the
// string instructions in real mode
type Segment struct {
	mem      *Memory
	Selector uint16
}

func (mem *Memory) Segment(selector uint16) Segment {
	return Segment{mem: mem, Selector: selector}
}

func (s Segment) String() string {
	return fmt.Sprintf("%04x", s.Selector)
}

// Base is the linear address of offset zero
func (s Segment) Base() uint32 {
	return uint32(s.Selector) << 4
}

// Linear returns the physical address of selector:offset
func (s Segment) Linear(offset uint16) uint32 {
	return (s.Base() + uint32(offset)) & AddressMask
}

func (s Segment) Write(offset uint16, data uint8) {
	s.mem.write(s.Linear(offset), data)
}

func (s Segment) Read(offset uint16) uint8 {
	return s.mem.read(s.Linear(offset))
}

// span returns the Block covering count bytes from offset, if the range
// neither wraps the segment nor leaves a single area
func (s Segment) span(offset uint16, count int) (uint32, Block) {
	if count <= 0 || int(offset)+count > 0x10000 {
		return 0, nil
	}
	return s.mem.block(s.Linear(offset), uint32(count))
}

// StoreBytes is the equivalent of REP STOSB with ES:DI set to s:offset and
// CX set to count
func (s Segment) StoreBytes(offset uint16, count int, data uint8) {
	if idx, b := s.span(offset, count); b != nil {
		b.Access(idx, uint32(count), func(d []uint8) {
			for i := range d {
				d[i] = data
			}
		})
		return
	}
	for i := 0; i < count; i++ {
		s.Write(offset, data)
		offset++
	}
}

// StoreDwords is the equivalent of REP STOSD with ES:DI set to s:offset and
// ECX set to count. The dword is stored little-endian
func (s Segment) StoreDwords(offset uint16, count int, data uint32) {
	var pattern [4]uint8
	binary.LittleEndian.PutUint32(pattern[:], data)

	if idx, b := s.span(offset, count*4); b != nil {
		b.Access(idx, uint32(count*4), func(d []uint8) {
			for i := 0; i < len(d); i += 4 {
				copy(d[i:i+4], pattern[:])
			}
		})
		return
	}
	for i := 0; i < count; i++ {
		for _, v := range pattern {
			s.Write(offset, v)
			offset++
		}
	}
}

// MoveDwords is the equivalent of REP MOVSD with DS:SI set to src:srcOffset,
// ES:DI set to dst:dstOffset and ECX set to count
func MoveDwords(dst Segment, dstOffset uint16, src Segment, srcOffset uint16, count int) {
	n := count * 4
	if n <= 0 {
		return
	}

	mem := src.mem
	sidx, sb := src.span(srcOffset, n)
	didx, db := dst.span(dstOffset, n)
	if sb != nil && db != nil && mem == dst.mem {
		if cap(mem.scratch) < n {
			mem.scratch = make([]uint8, n)
		}
		buf := mem.scratch[:n]
		sb.Access(sidx, uint32(n), func(d []uint8) {
			copy(buf, d)
		})
		db.Access(didx, uint32(n), func(d []uint8) {
			copy(d, buf)
		})
		return
	}

	for i := 0; i < n; i++ {
		dst.Write(dstOffset, src.Read(srcOffset))
		srcOffset++
		dstOffset++
	}
}
