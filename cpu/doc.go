// Package cpu describes the 24-bit target machine of the assembler.
//
// A machine word carries a 21-bit signed content field and a 3-bit A/R/E
// tag (absolute, relocatable, external). The machine has 16 opcodes, 8
// registers (r0-r7) and four addressing modes. The package provides the
// word packing and its text renderings (binary, hex, base64), the opcode
// table and the instruction word layout.
package cpu
