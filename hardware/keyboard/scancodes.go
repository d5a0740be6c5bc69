package keyboard

// scan codes (set 1, US layout) for the unshifted character on each key. the
// shifted character maps to the same key
var scanCodes = map[uint8]uint8{
	'\x1b': 0x01,
	'1': 0x02, '2': 0x03, '3': 0x04, '4': 0x05, '5': 0x06,
	'6': 0x07, '7': 0x08, '8': 0x09, '9': 0x0a, '0': 0x0b,
	'-': 0x0c, '=': 0x0d, '\b': 0x0e, '\t': 0x0f,
	'q': 0x10, 'w': 0x11, 'e': 0x12, 'r': 0x13, 't': 0x14,
	'y': 0x15, 'u': 0x16, 'i': 0x17, 'o': 0x18, 'p': 0x19,
	'[': 0x1a, ']': 0x1b, '\r': 0x1c,
	'a': 0x1e, 's': 0x1f, 'd': 0x20, 'f': 0x21, 'g': 0x22,
	'h': 0x23, 'j': 0x24, 'k': 0x25, 'l': 0x26, ';': 0x27,
	'\'': 0x28, '`': 0x29, '\\': 0x2b,
	'z': 0x2c, 'x': 0x2d, 'c': 0x2e, 'v': 0x2f, 'b': 0x30,
	'n': 0x31, 'm': 0x32, ',': 0x33, '.': 0x34, '/': 0x35,
	' ': 0x39,
}

var shifted = map[uint8]uint8{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', ':': ';',
	'"': '\'', '~': '`', '|': '\\', '<': ',', '>': '.',
	'?': '/',
}

// ScanCode returns the scan code of the key that produces the ASCII value.
// Returns zero if there is no such key
func ScanCode(ascii uint8) uint8 {
	if ascii >= 'A' && ascii <= 'Z' {
		ascii += 'a' - 'A'
	} else if ascii >= 0x01 && ascii <= 0x1a && ascii != '\b' && ascii != '\t' && ascii != '\r' {
		// control characters are produced by the letter keys
		ascii += 'a' - 1
	} else if s, ok := shifted[ascii]; ok {
		ascii = s
	}
	return scanCodes[ascii]
}
