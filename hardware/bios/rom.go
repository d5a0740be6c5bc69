package bios

// the BIOS ROM occupies the top 64K of the address space
const OriginROM = 0xf0000

const sizeROM = 0x10000

// offsets into the ROM of the identification bytes
const (
	offsetDate    = 0xfff5
	offsetModelID = 0xfffe
)

// model ID of an AT class machine
const modelAT = 0xfc

var releaseDate = []byte("06/10/92")

// ROM is the memory area for the BIOS ROM. The services are not implemented
// by code in the ROM so only the identification bytes are present. Writes are
// ignored
type ROM struct{}

func (r *ROM) Label() string {
	return "BIOS"
}

func (r *ROM) Size() uint32 {
	return sizeROM
}

func (r *ROM) Read(idx uint32) (uint8, error) {
	switch {
	case idx >= offsetDate && idx < offsetDate+uint32(len(releaseDate)):
		return releaseDate[idx-offsetDate], nil
	case idx == offsetModelID:
		return modelAT, nil
	}
	return 0xff, nil
}

func (r *ROM) Write(_ uint32, _ uint8) error {
	return nil
}
