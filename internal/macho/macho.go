// Package macho reduces a Mach-O executable to the summary the viewer
// renders: header identity plus a labelled load-command list with per
// segment section names. Parsing itself is delegated to debug/macho.
package macho

import (
	"bytes"
	"debug/macho"
	"encoding/binary"
	"fmt"
)

// Magic64 is the 64-bit Mach-O magic as read little-endian from the
// file's first four bytes.
const Magic64 = macho.Magic64

// Section is one named section of a segment.
type Section struct {
	Name string
	Addr uint64
	Size uint64
}

// Command is one load command, reduced to a display label. Sections is
// populated for segment commands only.
type Command struct {
	Label    string
	Sections []Section
}

// File is the parsed summary of a Mach-O executable.
type File struct {
	CPU      string
	SubCPU   uint32
	Type     string
	Ncmd     uint32
	Flags    uint32
	Commands []Command
}

// IsMagic reports whether data starts with a Mach-O magic number
// (little-endian, 32 or 64 bit).
func IsMagic(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	magic := binary.LittleEndian.Uint32(data)
	return magic == macho.Magic32 || magic == macho.Magic64
}

// Parse builds the viewer summary from a raw Mach-O image.
func Parse(data []byte) (*File, error) {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing mach-o: %w", err)
	}
	defer f.Close()

	out := &File{
		CPU:    f.Cpu.String(),
		SubCPU: f.SubCpu,
		Type:   f.Type.String(),
		Ncmd:   f.Ncmd,
		Flags:  f.Flags,
	}

	for _, load := range f.Loads {
		out.Commands = append(out.Commands, describeLoad(f, load))
	}
	return out, nil
}

func describeLoad(f *macho.File, load macho.Load) Command {
	switch l := load.(type) {
	case *macho.Segment:
		name := "Segment"
		if l.Cmd == macho.LoadCmdSegment64 {
			name = "Segment64"
		}
		return Command{
			Label:    fmt.Sprintf("%s | %s", name, l.Name),
			Sections: segmentSections(f, l.Name),
		}
	case *macho.Dylib:
		return Command{Label: fmt.Sprintf("LoadDylib | %s", l.Name)}
	case *macho.Symtab:
		return Command{Label: "Symtab"}
	case *macho.Dysymtab:
		return Command{Label: "Dsymtab"}
	case *macho.Rpath:
		return Command{Label: fmt.Sprintf("Rpath | %s", l.Path)}
	default:
		return Command{Label: rawLoadLabel(load.Raw())}
	}
}

func segmentSections(f *macho.File, segment string) []Section {
	var out []Section
	for _, s := range f.Sections {
		if s.Seg == segment {
			out = append(out, Section{Name: s.Name, Addr: s.Addr, Size: s.Size})
		}
	}
	return out
}

// Load command identifiers debug/macho exposes only as raw bytes.
const (
	cmdDylinker        = 0xe
	cmdUUID            = 0x1b
	cmdCodeSignature   = 0x1d
	cmdFunctionStarts  = 0x26
	cmdDataInCode      = 0x29
	cmdSourceVersion   = 0x2a
	cmdBuildVersion    = 0x32
	cmdDyldInfoOnly    = 0x80000022
	cmdMain            = 0x80000028
	cmdDyldExportsTrie = 0x80000033
	cmdDyldChainedFix  = 0x80000034
)

func rawLoadLabel(raw []byte) string {
	if len(raw) < 4 {
		return "Unknown"
	}
	switch binary.LittleEndian.Uint32(raw) {
	case cmdDylinker:
		return "Dylinker"
	case cmdUUID:
		return "UUID"
	case cmdCodeSignature:
		return "CodeSignature"
	case cmdFunctionStarts:
		return "FunctionStarts"
	case cmdDataInCode:
		return "DataInCode"
	case cmdSourceVersion:
		return "SourceVersion"
	case cmdBuildVersion:
		return "BuildVersion"
	case cmdDyldInfoOnly:
		return "DyldInfoOnly"
	case cmdMain:
		return "Main"
	case cmdDyldExportsTrie, cmdDyldChainedFix:
		return "LinkeditData"
	default:
		return "Unknown"
	}
}
