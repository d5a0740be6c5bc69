package memory

import (
	"fmt"

	"github.com/jetsetilly/pong13h/hardware/memory/ram"
	"github.com/jetsetilly/pong13h/logger"
)

// the real-mode address space. the A20 line is never enabled so addresses
// wrap at the 1MB boundary
const (
	AddressMask = 0xfffff

	ConventionalOrigin = 0x00000
	ConventionalSize   = 0xa0000
)

type Area interface {
	// read and write both take an index value. this is an address in the area
	// but with the area origin removed. in other words, the area doesn't need
	// to know about it's location in memory, only the relative placement of
	// addresses within the area
	Read(idx uint32) (uint8, error)
	Write(idx uint32, data uint8) error
	Label() string
	Size() uint32
}

// Block is implemented by areas that can expose a contiguous range of their
// storage for string instructions. Access returns false if the range does not
// fit inside the area, in which case the function is not called. The slice
// must not be retained after the function returns
type Block interface {
	Area
	Access(idx uint32, n uint32, f func(data []uint8)) bool
}

type mapping struct {
	origin uint32
	area   Area
}

type Memory struct {
	Conventional *ram.RAM

	areas []mapping

	// used by MoveDwords so that the source and destination areas are never
	// held at the same time
	scratch []uint8
}

func Create() *Memory {
	mem := &Memory{
		Conventional: ram.Create("conventional", ConventionalSize),
	}
	mem.Attach(ConventionalOrigin, mem.Conventional)
	return mem
}

func (mem *Memory) Reset() {
	mem.Conventional.Reset()
}

// Attach places an area in the address space. Areas must not overlap
func (mem *Memory) Attach(origin uint32, area Area) {
	origin &= AddressMask
	end := origin + area.Size()
	for _, m := range mem.areas {
		if origin < m.origin+m.area.Size() && m.origin < end {
			panic(fmt.Sprintf("memory: %s at %05x overlaps %s at %05x", area.Label(), origin, m.area.Label(), m.origin))
		}
	}
	mem.areas = append(mem.areas, mapping{origin: origin, area: area})
}

// MapAddress returns the memory area and index into the area corresponding to
// the address. It is possible for a nil Area to be returned. In which case,
// the index value will be zero
func (mem *Memory) MapAddress(address uint32) (uint32, Area) {
	address &= AddressMask
	for _, m := range mem.areas {
		if address >= m.origin && address-m.origin < m.area.Size() {
			return address - m.origin, m.area
		}
	}
	return 0, nil
}

func (mem *Memory) Read(address uint32) (uint8, error) {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return 0, fmt.Errorf("memory.Read: unmapped address: %05x", address&AddressMask)
	}
	return area.Read(idx)
}

func (mem *Memory) Write(address uint32, data uint8) error {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return fmt.Errorf("memory.Write: unmapped address: %05x", address&AddressMask)
	}
	return area.Write(idx, data)
}

// block returns the Block that contains the entire range. the range must not
// cross the end of the address space
func (mem *Memory) block(address uint32, n uint32) (uint32, Block) {
	if address+n > AddressMask+1 {
		return 0, nil
	}
	idx, area := mem.MapAddress(address)
	if area == nil || idx+n > area.Size() {
		return 0, nil
	}
	b, ok := area.(Block)
	if !ok {
		return 0, nil
	}
	return idx, b
}

// writes to unmapped addresses go nowhere, like on the real bus. the log entry
// is the only trace of the write
func (mem *Memory) write(address uint32, data uint8) {
	if err := mem.Write(address, data); err != nil {
		logger.Log(logger.Allow, "memory", err)
	}
}

// reads from unmapped addresses see a floating bus
func (mem *Memory) read(address uint32) uint8 {
	v, err := mem.Read(address)
	if err != nil {
		logger.Log(logger.Allow, "memory", err)
		return 0xff
	}
	return v
}
