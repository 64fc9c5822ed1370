// Package gb parses Game Boy cartridge images: the header block at
// 0x100-0x14F, the fixed restart and interrupt vectors below it, and the
// 16 KiB ROM bank layout declared by the header's ROM-size code.
package gb

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	headerEnd = 0x150
	bankSize  = 0x4000

	entryPointOffset = 0x100
	logoOffset       = 0x104
	titleOffset      = 0x134
	manufacturerOff  = 0x13F
	cgbFlagOffset    = 0x143
	newLicenseeOff   = 0x144
	sgbFlagOffset    = 0x146
	cartTypeOffset   = 0x147
	romSizeOffset    = 0x148
	ramSizeOffset    = 0x149
	destOffset       = 0x14A
	oldLicenseeOff   = 0x14B
	versionOffset    = 0x14C
	checksumOffset   = 0x14D
	globalCkOffset   = 0x14E

	vectorSize = 8
)

// nintendoLogo is the bitmap every licensed cartridge carries at 0x104.
// The boot ROM refuses to start when it does not match, which makes it a
// reliable format fingerprint.
var nintendoLogo = []byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header holds the decoded cartridge header fields.
type Header struct {
	EntryPoint     []byte // 4 bytes of code jumped to after the boot ROM
	Logo           []byte // 48-byte Nintendo logo bitmap
	Title          string
	Manufacturer   string
	CGBFlag        byte
	LicenseeCode   string
	SGBFlag        byte
	CartridgeType  byte
	ROMSizeCode    byte
	RAMSizeCode    byte
	Destination    byte
	Version        byte
	HeaderChecksum byte
	// ComputedChecksum is recalculated over 0x134-0x14C so the viewer can
	// flag corrupted dumps.
	ComputedChecksum byte
	GlobalChecksum   uint16
}

// Interrupts are the five hardware interrupt vectors, 8 bytes each.
type Interrupts struct {
	VBlank  []byte // 0x40
	LCDStat []byte // 0x48
	Timer   []byte // 0x50
	Serial  []byte // 0x58
	Joypad  []byte // 0x60
}

// ROM is a fully parsed cartridge image.
type ROM struct {
	Header     Header
	Interrupts Interrupts
	Restarts   [8][]byte // RST 0..7 vectors at 0x00, 0x08, ... 0x38
	Banks      [][]byte  // 16 KiB banks, sliced from the image
}

// HasLogo reports whether data carries the Nintendo logo bitmap at the
// cartridge header position.
func HasLogo(data []byte) bool {
	if len(data) < logoOffset+len(nintendoLogo) {
		return false
	}
	return bytes.Equal(data[logoOffset:logoOffset+len(nintendoLogo)], nintendoLogo)
}

// Parse decodes a cartridge image. The image must at least cover the
// header block; bank slicing tolerates images shorter than the declared
// ROM size and stops at the actual data.
func Parse(data []byte) (*ROM, error) {
	if len(data) < headerEnd {
		return nil, fmt.Errorf("image too small for a cartridge header: %d bytes", len(data))
	}

	h := Header{
		EntryPoint:     data[entryPointOffset : entryPointOffset+4],
		Logo:           data[logoOffset : logoOffset+len(nintendoLogo)],
		Title:          decodeTitle(data[titleOffset:cgbFlagOffset]),
		Manufacturer:   decodeTitle(data[manufacturerOff : manufacturerOff+4]),
		CGBFlag:        data[cgbFlagOffset],
		SGBFlag:        data[sgbFlagOffset],
		CartridgeType:  data[cartTypeOffset],
		ROMSizeCode:    data[romSizeOffset],
		RAMSizeCode:    data[ramSizeOffset],
		Destination:    data[destOffset],
		Version:        data[versionOffset],
		HeaderChecksum: data[checksumOffset],
		GlobalChecksum: uint16(data[globalCkOffset])<<8 | uint16(data[globalCkOffset+1]),
	}
	h.LicenseeCode = licensee(data)
	h.ComputedChecksum = headerChecksum(data)

	rom := &ROM{
		Header: h,
		Interrupts: Interrupts{
			VBlank:  vector(data, 0x40),
			LCDStat: vector(data, 0x48),
			Timer:   vector(data, 0x50),
			Serial:  vector(data, 0x58),
			Joypad:  vector(data, 0x60),
		},
	}
	for i := range rom.Restarts {
		rom.Restarts[i] = vector(data, i*vectorSize)
	}

	banks := NumBanks(h.ROMSizeCode)
	if banks == 0 {
		return nil, fmt.Errorf("unknown ROM size code 0x%02X", h.ROMSizeCode)
	}
	for i := 0; i < banks; i++ {
		start := i * bankSize
		if start >= len(data) {
			break
		}
		end := start + bankSize
		if end > len(data) {
			end = len(data)
		}
		rom.Banks = append(rom.Banks, data[start:end])
	}

	return rom, nil
}

// NumBanks derives the bank count from the ROM-size code at 0x148.
// Unknown codes yield 0.
func NumBanks(code byte) int {
	switch {
	case code <= 0x08:
		return 2 << code
	case code == 0x52:
		return 72
	case code == 0x53:
		return 80
	case code == 0x54:
		return 96
	default:
		return 0
	}
}

// DefaultVector reports whether a vector still holds unprogrammed ROM
// (all 0xFF).
func DefaultVector(data []byte) bool {
	for _, b := range data {
		if b != 0xFF {
			return false
		}
	}
	return true
}

// ChecksumOK reports whether the stored header checksum matches the one
// computed from the header bytes.
func (h Header) ChecksumOK() bool {
	return h.HeaderChecksum == h.ComputedChecksum
}

func vector(data []byte, offset int) []byte {
	return data[offset : offset+vectorSize]
}

func decodeTitle(raw []byte) string {
	s := strings.TrimRight(string(raw), "\x00")
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return -1
		}
		return r
	}, s)
}

// licensee prefers the two-character new licensee code; 0x33 in the old
// field is the marker that the new field is in use.
func licensee(data []byte) string {
	old := data[oldLicenseeOff]
	if old == 0x33 {
		return decodeTitle(data[newLicenseeOff : newLicenseeOff+2])
	}
	return fmt.Sprintf("%02X", old)
}

func headerChecksum(data []byte) byte {
	var sum byte
	for i := titleOffset; i <= versionOffset; i++ {
		sum = sum - data[i] - 1
	}
	return sum
}
