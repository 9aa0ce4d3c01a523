package cpu

const (
	BASE_ADDRESS = 100     // Load address of the first code word.
	MEMORY_SIZE  = 1 << 21 // Addressable words.

	WORD_BITS    = 24 // Bits in a packed word.
	CONTENT_BITS = 21 // Bits in the content field.
	TAG_BITS     = 3  // Bits in the A/R/E tag.

	WORD_MASK    = (1 << WORD_BITS) - 1
	CONTENT_MASK = (1 << CONTENT_BITS) - 1
	TAG_MASK     = (1 << TAG_BITS) - 1

	CONTENT_MAX = (1 << (CONTENT_BITS - 1)) - 1 // Largest signed content.
	CONTENT_MIN = -(1 << (CONTENT_BITS - 1))    // Smallest signed content.

	REGISTER_COUNT = 8
	OPCODE_COUNT   = 16
	OPCODE_BITS    = 6
	FUNCT_BITS     = 5

	LABEL_LIMIT = 31 // Maximum label length.
)

// Constants are the machine constants visible to compile-time expressions.
var Constants = map[string]int{
	"BASE_ADDRESS": BASE_ADDRESS,
	"MEMORY_SIZE":  MEMORY_SIZE,
	"WORD_BITS":    WORD_BITS,
	"CONTENT_BITS": CONTENT_BITS,
	"CONTENT_MAX":  CONTENT_MAX,
	"CONTENT_MIN":  CONTENT_MIN,
}
