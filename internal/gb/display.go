package gb

import "fmt"

// CGB flag values at 0x143.
const (
	CGBBackwards = 0x80 // runs on both GB and GBC
	CGBOnly      = 0xC0
)

// SGB flag value at 0x146 indicating Super Game Boy support.
const SGBSupported = 0x03

// CGBFlagString describes the Game Boy Color compatibility flag.
func CGBFlagString(flag byte) string {
	switch flag {
	case CGBBackwards:
		return "GB & GBC"
	case CGBOnly:
		return "GBC only"
	default:
		return "GB only"
	}
}

// SGBFlagString describes the Super Game Boy flag.
func SGBFlagString(flag byte) string {
	if flag == SGBSupported {
		return "Supported"
	}
	return "No support"
}

// DestinationString describes the destination code at 0x14A.
func DestinationString(code byte) string {
	if code == 0 {
		return "Japanese"
	}
	return "Non-Japanese"
}

// ROMSizeString describes the ROM-size code in banks and total size.
func ROMSizeString(code byte) string {
	banks := NumBanks(code)
	switch {
	case banks == 0:
		return fmt.Sprintf("Unknown (0x%02X)", code)
	case banks == 2:
		return "No banking (32 KiB)"
	default:
		kib := banks * 16
		if kib >= 1024 {
			return fmt.Sprintf("%d banks (%.1f MiB)", banks, float64(kib)/1024)
		}
		return fmt.Sprintf("%d banks (%d KiB)", banks, kib)
	}
}

// RAMSizeString describes the cartridge RAM size code at 0x149.
func RAMSizeString(code byte) string {
	switch code {
	case 0x00:
		return "No RAM"
	case 0x01:
		return "2 KiB"
	case 0x02:
		return "8 KiB"
	case 0x03:
		return "32 KiB"
	case 0x04:
		return "128 KiB"
	case 0x05:
		return "64 KiB"
	default:
		return fmt.Sprintf("Unknown (0x%02X)", code)
	}
}

var cartridgeTypes = map[byte]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0B: "MMM01",
	0x0C: "MMM01+RAM",
	0x0D: "MMM01+RAM+BATTERY",
	0x0F: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1A: "MBC5+RAM",
	0x1B: "MBC5+RAM+BATTERY",
	0x1C: "MBC5+RUMBLE",
	0x1D: "MBC5+RUMBLE+RAM",
	0x1E: "MBC5+RUMBLE+RAM+BATTERY",
	0x20: "MBC6",
	0x22: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	0xFC: "POCKET CAMERA",
	0xFD: "BANDAI TAMA5",
	0xFE: "HuC3",
	0xFF: "HuC1+RAM+BATTERY",
}

// CartridgeTypeString names the mapper/feature combination at 0x147.
func CartridgeTypeString(code byte) string {
	if name, ok := cartridgeTypes[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", code)
}
