// Package binary owns the loaded-binary union: opening a file, detecting
// its format by magic bytes or extension, and carrying the parsed result
// for whichever format matched.
package binary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"binspect/internal/gb"
	"binspect/internal/macho"
)

// Kind tags the supported binary formats.
type Kind int

const (
	KindUnknown Kind = iota
	KindMacho
	KindGameBoy
)

// String names the format for headers and logs.
func (k Kind) String() string {
	switch k {
	case KindMacho:
		return "Mach-O"
	case KindGameBoy:
		return "Game Boy ROM"
	default:
		return "unknown"
	}
}

// File is a loaded binary. Exactly one of the format fields matching
// Kind is non-nil; the whole value is replaced, never mutated, when a
// new file is opened.
type File struct {
	Path string
	Kind Kind

	Macho   *macho.File
	GameBoy *gb.ROM
}

// Open reads path in full and parses it as whichever format its magic
// number or extension identifies. Unrecognized content fails with an
// unsupported-format error.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Detect(path, data)
}

// Detect classifies data and parses it. The Mach-O magic is checked
// first; Game Boy cartridges are recognized by their logo bitmap or a
// .gb/.gbc extension.
func Detect(path string, data []byte) (*File, error) {
	if macho.IsMagic(data) {
		parsed, err := macho.Parse(data)
		if err != nil {
			return nil, err
		}
		return &File{Path: path, Kind: KindMacho, Macho: parsed}, nil
	}

	if gb.HasLogo(data) || isGameBoyExt(path) {
		parsed, err := gb.Parse(data)
		if err != nil {
			return nil, err
		}
		return &File{Path: path, Kind: KindGameBoy, GameBoy: parsed}, nil
	}

	return nil, fmt.Errorf("%s: unsupported format", path)
}

func isGameBoyExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gb", ".gbc":
		return true
	default:
		return false
	}
}

// Summary is the one-line description shown in the title panel.
func (f *File) Summary() string {
	switch f.Kind {
	case KindMacho:
		return fmt.Sprintf("%s (Mach-O, %s, %s)", f.Path, f.Macho.CPU, f.Macho.Type)
	case KindGameBoy:
		h := f.GameBoy.Header
		return fmt.Sprintf("%s (Game Boy, %s, %s)", f.Path, h.Title, gb.CartridgeTypeString(h.CartridgeType))
	default:
		return f.Path
	}
}
