package gbz80

// opcode describes one base-table instruction: a mnemonic with operand
// placeholders (d8, d16, a8, a16, r8) and its total size in bytes.
type opcode struct {
	name string
	size int
}

// reg is the standard operand ordering shared by the ld/alu blocks and
// the CB prefix table.
var reg = [8]string{"b", "c", "d", "e", "h", "l", "(hl)", "a"}

var alu = [8]string{"add a,", "adc a,", "sub ", "sbc a,", "and ", "xor ", "or ", "cp "}

var cbOps = [8]string{"rlc", "rrc", "rl", "rr", "sla", "sra", "swap", "srl"}

// opcodes is the base instruction table. Entries with size 0 are illegal
// opcodes; 0xCB is handled by the prefix decoder.
var opcodes [256]opcode

func init() {
	for op, entry := range map[byte]opcode{
		0x00: {"nop", 1},
		0x01: {"ld bc,d16", 3},
		0x02: {"ld (bc),a", 1},
		0x03: {"inc bc", 1},
		0x04: {"inc b", 1},
		0x05: {"dec b", 1},
		0x06: {"ld b,d8", 2},
		0x07: {"rlca", 1},
		0x08: {"ld (a16),sp", 3},
		0x09: {"add hl,bc", 1},
		0x0A: {"ld a,(bc)", 1},
		0x0B: {"dec bc", 1},
		0x0C: {"inc c", 1},
		0x0D: {"dec c", 1},
		0x0E: {"ld c,d8", 2},
		0x0F: {"rrca", 1},
		0x10: {"stop", 2},
		0x11: {"ld de,d16", 3},
		0x12: {"ld (de),a", 1},
		0x13: {"inc de", 1},
		0x14: {"inc d", 1},
		0x15: {"dec d", 1},
		0x16: {"ld d,d8", 2},
		0x17: {"rla", 1},
		0x18: {"jr r8", 2},
		0x19: {"add hl,de", 1},
		0x1A: {"ld a,(de)", 1},
		0x1B: {"dec de", 1},
		0x1C: {"inc e", 1},
		0x1D: {"dec e", 1},
		0x1E: {"ld e,d8", 2},
		0x1F: {"rra", 1},
		0x20: {"jr nz,r8", 2},
		0x21: {"ld hl,d16", 3},
		0x22: {"ld (hl+),a", 1},
		0x23: {"inc hl", 1},
		0x24: {"inc h", 1},
		0x25: {"dec h", 1},
		0x26: {"ld h,d8", 2},
		0x27: {"daa", 1},
		0x28: {"jr z,r8", 2},
		0x29: {"add hl,hl", 1},
		0x2A: {"ld a,(hl+)", 1},
		0x2B: {"dec hl", 1},
		0x2C: {"inc l", 1},
		0x2D: {"dec l", 1},
		0x2E: {"ld l,d8", 2},
		0x2F: {"cpl", 1},
		0x30: {"jr nc,r8", 2},
		0x31: {"ld sp,d16", 3},
		0x32: {"ld (hl-),a", 1},
		0x33: {"inc sp", 1},
		0x34: {"inc (hl)", 1},
		0x35: {"dec (hl)", 1},
		0x36: {"ld (hl),d8", 2},
		0x37: {"scf", 1},
		0x38: {"jr c,r8", 2},
		0x39: {"add hl,sp", 1},
		0x3A: {"ld a,(hl-)", 1},
		0x3B: {"dec sp", 1},
		0x3C: {"inc a", 1},
		0x3D: {"dec a", 1},
		0x3E: {"ld a,d8", 2},
		0x3F: {"ccf", 1},
		0x76: {"halt", 1},
		0xC0: {"ret nz", 1},
		0xC1: {"pop bc", 1},
		0xC2: {"jp nz,a16", 3},
		0xC3: {"jp a16", 3},
		0xC4: {"call nz,a16", 3},
		0xC5: {"push bc", 1},
		0xC6: {"add a,d8", 2},
		0xC7: {"rst 00h", 1},
		0xC8: {"ret z", 1},
		0xC9: {"ret", 1},
		0xCA: {"jp z,a16", 3},
		0xCC: {"call z,a16", 3},
		0xCD: {"call a16", 3},
		0xCE: {"adc a,d8", 2},
		0xCF: {"rst 08h", 1},
		0xD0: {"ret nc", 1},
		0xD1: {"pop de", 1},
		0xD2: {"jp nc,a16", 3},
		0xD4: {"call nc,a16", 3},
		0xD5: {"push de", 1},
		0xD6: {"sub d8", 2},
		0xD7: {"rst 10h", 1},
		0xD8: {"ret c", 1},
		0xD9: {"reti", 1},
		0xDA: {"jp c,a16", 3},
		0xDC: {"call c,a16", 3},
		0xDE: {"sbc a,d8", 2},
		0xDF: {"rst 18h", 1},
		0xE0: {"ldh (a8),a", 2},
		0xE1: {"pop hl", 1},
		0xE2: {"ld (c),a", 1},
		0xE5: {"push hl", 1},
		0xE6: {"and d8", 2},
		0xE7: {"rst 20h", 1},
		0xE8: {"add sp,r8", 2},
		0xE9: {"jp (hl)", 1},
		0xEA: {"ld (a16),a", 3},
		0xEE: {"xor d8", 2},
		0xEF: {"rst 28h", 1},
		0xF0: {"ldh a,(a8)", 2},
		0xF1: {"pop af", 1},
		0xF2: {"ld a,(c)", 1},
		0xF3: {"di", 1},
		0xF5: {"push af", 1},
		0xF6: {"or d8", 2},
		0xF7: {"rst 30h", 1},
		0xF8: {"ld hl,sp+r8", 2},
		0xF9: {"ld sp,hl", 1},
		0xFA: {"ld a,(a16)", 3},
		0xFB: {"ei", 1},
		0xFE: {"cp d8", 2},
		0xFF: {"rst 38h", 1},
	} {
		opcodes[op] = entry
	}

	// 0x40-0x7F: register-to-register loads, 0x76 stays halt.
	for op := 0x40; op < 0x80; op++ {
		if op == 0x76 {
			continue
		}
		opcodes[op] = opcode{"ld " + reg[(op>>3)&7] + "," + reg[op&7], 1}
	}

	// 0x80-0xBF: the ALU block.
	for op := 0x80; op < 0xC0; op++ {
		opcodes[op] = opcode{alu[(op>>3)&7] + reg[op&7], 1}
	}
}

// cbName decodes the second byte of a CB-prefixed instruction.
func cbName(op byte) string {
	r := reg[op&7]
	switch {
	case op < 0x40:
		return cbOps[op>>3] + " " + r
	case op < 0x80:
		return "bit " + bitDigit(op) + "," + r
	case op < 0xC0:
		return "res " + bitDigit(op) + "," + r
	default:
		return "set " + bitDigit(op) + "," + r
	}
}

func bitDigit(op byte) string {
	return string('0' + rune((op>>3)&7))
}
