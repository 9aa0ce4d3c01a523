package cpu

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMMEDIATE = Mode(0) // immediate
	MODE_DIRECT    = Mode(1) // direct
	MODE_RELATIVE  = Mode(2) // relative
	MODE_REGISTER  = Mode(3) // register
)

// ModeSet is a set of addressing modes.
type ModeSet uint8

// Modes returns the set of the given modes.
func Modes(modes ...Mode) (ms ModeSet) {
	for _, mode := range modes {
		ms |= 1 << mode
	}
	return
}

// Has returns true if mode is in the set.
func (ms ModeSet) Has(mode Mode) bool {
	return ms&(1<<mode) != 0
}

// Empty returns true if the set has no modes.
func (ms ModeSet) Empty() bool {
	return ms == 0
}

// Opcode describes one mnemonic of the instruction set.
type Opcode struct {
	Mnemonic string
	Code     int
	Funct    int
	Source   ModeSet // Legal source modes, empty if there is no source operand.
	Target   ModeSet // Legal target modes, empty if there is no target operand.
}

// Operands returns the number of operands the opcode takes.
func (op Opcode) Operands() (count int) {
	if !op.Source.Empty() {
		count++
	}
	if !op.Target.Empty() {
		count++
	}
	return
}

var (
	srcAny  = Modes(MODE_IMMEDIATE, MODE_DIRECT, MODE_REGISTER)
	dstData = Modes(MODE_DIRECT, MODE_REGISTER)
	dstAny  = Modes(MODE_IMMEDIATE, MODE_DIRECT, MODE_REGISTER)
	dstJump = Modes(MODE_DIRECT, MODE_RELATIVE)
)

// opcodeTable lists the instruction set in opcode order.
var opcodeTable = []Opcode{
	{"mov", 0, 0, srcAny, dstData},
	{"cmp", 1, 0, srcAny, dstAny},
	{"add", 2, 1, srcAny, dstData},
	{"sub", 2, 2, srcAny, dstData},
	{"lea", 4, 0, Modes(MODE_DIRECT), dstData},
	{"clr", 5, 1, 0, dstData},
	{"not", 5, 2, 0, dstData},
	{"inc", 5, 3, 0, dstData},
	{"dec", 5, 4, 0, dstData},
	{"jmp", 9, 1, 0, dstJump},
	{"bne", 9, 2, 0, dstJump},
	{"jsr", 9, 3, 0, dstJump},
	{"red", 12, 0, 0, dstData},
	{"prn", 13, 0, 0, dstAny},
	{"rts", 14, 0, 0, 0},
	{"stop", 15, 0, 0, 0},
}

// LookupOpcode finds the opcode for a mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	n := slices.IndexFunc(opcodeTable, func(op Opcode) bool { return op.Mnemonic == mnemonic })
	if n < 0 {
		return
	}
	return opcodeTable[n], true
}

// Mnemonics returns an iterator over all mnemonics.
func Mnemonics() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, op := range opcodeTable {
			if !yield(op.Mnemonic) {
				return
			}
		}
	}
}

// ParseRegister returns the register number of r0-r7, optionally written
// with an '@' prefix.
func ParseRegister(word string) (reg int, ok bool) {
	word = strings.TrimPrefix(word, "@")
	if len(word) != 2 || word[0] != 'r' {
		return
	}
	reg, err := strconv.Atoi(word[1:])
	if err != nil || reg < 0 || reg >= REGISTER_COUNT {
		return 0, false
	}
	return reg, true
}

// Instruction word field positions within the content field.
const (
	FUNCT_SHIFT       = 0
	TARGET_REG_SHIFT  = 5
	TARGET_MODE_SHIFT = 8
	SOURCE_REG_SHIFT  = 10
	SOURCE_MODE_SHIFT = 13
	OPCODE_SHIFT      = 15

	FUNCT_MASK  = (1 << FUNCT_BITS) - 1
	REG_MASK    = 0x7
	MODE_MASK   = 0x3
	OPCODE_MASK = (1 << OPCODE_BITS) - 1
)

// MakeCodeInstruction creates the first word of an instruction. Register
// fields are only meaningful for MODE_REGISTER operands and should be 0
// otherwise.
func MakeCodeInstruction(op Opcode, src_mode Mode, src_reg int, dst_mode Mode, dst_reg int) Word {
	content := (op.Code&OPCODE_MASK)<<OPCODE_SHIFT |
		(int(src_mode)&MODE_MASK)<<SOURCE_MODE_SHIFT |
		(src_reg&REG_MASK)<<SOURCE_REG_SHIFT |
		(int(dst_mode)&MODE_MASK)<<TARGET_MODE_SHIFT |
		(dst_reg&REG_MASK)<<TARGET_REG_SHIFT |
		(op.Funct&FUNCT_MASK)<<FUNCT_SHIFT
	return MakeWord(content, TAG_ABSOLUTE)
}

func (w Word) field(shift, mask int) int {
	return (int(uint32(w)>>TAG_BITS) >> shift) & mask
}

// Opcode returns the opcode field of an instruction word.
func (w Word) Opcode() int {
	return w.field(OPCODE_SHIFT, OPCODE_MASK)
}

// Funct returns the funct field of an instruction word.
func (w Word) Funct() int {
	return w.field(FUNCT_SHIFT, FUNCT_MASK)
}

// SourceDecode returns the source mode and register of an instruction word.
func (w Word) SourceDecode() (mode Mode, reg int) {
	return Mode(w.field(SOURCE_MODE_SHIFT, MODE_MASK)), w.field(SOURCE_REG_SHIFT, REG_MASK)
}

// TargetDecode returns the target mode and register of an instruction word.
func (w Word) TargetDecode() (mode Mode, reg int) {
	return Mode(w.field(TARGET_MODE_SHIFT, MODE_MASK)), w.field(TARGET_REG_SHIFT, REG_MASK)
}
