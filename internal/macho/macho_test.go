package macho

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cpuArm64       = 0x0100000c
	fileTypeExec   = 2
	cmdSegment64   = 0x19
	segment64Size  = 72
	section64Size  = 80
	uuidCmdSize    = 24
	machHeaderSize = 32
)

func put(t *testing.T, w *bytes.Buffer, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, binary.Write(w, binary.LittleEndian, v))
	}
}

func name16(s string) [16]byte {
	var b [16]byte
	copy(b[:], s)
	return b
}

// testImage builds a minimal 64-bit Mach-O: one __TEXT segment with a
// __text section, plus an LC_UUID command that debug/macho leaves raw.
func testImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	sizeofcmds := uint32(segment64Size + section64Size + uuidCmdSize)
	put(t, &buf,
		uint32(Magic64),
		uint32(cpuArm64), uint32(0), // cputype, cpusubtype
		uint32(fileTypeExec),
		uint32(2), sizeofcmds, // ncmds, sizeofcmds
		uint32(0), uint32(0), // flags, reserved
	)

	// LC_SEGMENT_64 __TEXT with one section.
	put(t, &buf,
		uint32(cmdSegment64), uint32(segment64Size+section64Size),
		name16("__TEXT"),
		uint64(0x100000000), uint64(0x4000), // vmaddr, vmsize
		uint64(0), uint64(0x4000), // fileoff, filesize
		uint32(5), uint32(5), // maxprot, minprot
		uint32(1), uint32(0), // nsects, flags
	)
	put(t, &buf,
		name16("__text"), name16("__TEXT"),
		uint64(0x100000f00), uint64(0x100), // addr, size
		uint32(0xf00), uint32(2), // offset, align
		uint32(0), uint32(0), // reloff, nreloc
		uint32(0),                        // flags
		uint32(0), uint32(0), uint32(0), // reserved
	)

	// LC_UUID.
	put(t, &buf, uint32(cmdUUID), uint32(uuidCmdSize))
	buf.Write(make([]byte, 16))

	require.Equal(t, machHeaderSize+int(sizeofcmds), buf.Len())
	return buf.Bytes()
}

func TestIsMagic(t *testing.T) {
	assert.True(t, IsMagic(testImage(t)))
	assert.False(t, IsMagic([]byte{0x00, 0x01, 0x02, 0x03}))
	assert.False(t, IsMagic([]byte{0xcf}))
	assert.False(t, IsMagic(nil))
}

func TestParseHeader(t *testing.T) {
	f, err := Parse(testImage(t))
	require.NoError(t, err)

	assert.Equal(t, "CpuArm64", f.CPU)
	assert.Equal(t, "Exec", f.Type)
	assert.Equal(t, uint32(2), f.Ncmd)
}

func TestParseLoadCommands(t *testing.T) {
	f, err := Parse(testImage(t))
	require.NoError(t, err)

	require.Len(t, f.Commands, 2)
	assert.Equal(t, "Segment64 | __TEXT", f.Commands[0].Label)
	assert.Equal(t, "UUID", f.Commands[1].Label)

	require.Len(t, f.Commands[0].Sections, 1)
	assert.Equal(t, "__text", f.Commands[0].Sections[0].Name)
	assert.Equal(t, uint64(0x100), f.Commands[0].Sections[0].Size)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not a mach-o file at all"))
	assert.Error(t, err)
}

func TestRawLoadLabel(t *testing.T) {
	label := func(cmd uint32) string {
		raw := make([]byte, 8)
		binary.LittleEndian.PutUint32(raw, cmd)
		return rawLoadLabel(raw)
	}

	assert.Equal(t, "Main", label(cmdMain))
	assert.Equal(t, "BuildVersion", label(cmdBuildVersion))
	assert.Equal(t, "CodeSignature", label(cmdCodeSignature))
	assert.Equal(t, "LinkeditData", label(cmdDyldChainedFix))
	assert.Equal(t, "Unknown", label(0x7777))
	assert.Equal(t, "Unknown", rawLoadLabel(nil))
}
