package cpu

import (
	"encoding/base64"
	"fmt"
)

// Tag is the A/R/E classification of a word.
type Tag uint32

const (
	TAG_EXTERNAL    = Tag(1) // Resolved by the linker from another unit.
	TAG_RELOCATABLE = Tag(2) // Address relative to the load address.
	TAG_ABSOLUTE    = Tag(4) // Used as-is.
)

// String returns the single letter name of the tag.
func (tag Tag) String() string {
	switch tag {
	case TAG_ABSOLUTE:
		return "A"
	case TAG_RELOCATABLE:
		return "R"
	case TAG_EXTERNAL:
		return "E"
	}
	return fmt.Sprintf("Tag(%d)", uint32(tag))
}

// Word is a packed 24-bit machine word: content << TAG_BITS | tag.
type Word uint32

// MakeWord packs a content value and a tag. Content is truncated to
// CONTENT_BITS, so callers check ranges with InRange first.
func MakeWord(content int, tag Tag) Word {
	return Word(((uint32(content) & CONTENT_MASK) << TAG_BITS) | (uint32(tag) & TAG_MASK))
}

// InRange returns true if value fits the signed content field.
func InRange(value int) bool {
	return value >= CONTENT_MIN && value <= CONTENT_MAX
}

// Content returns the sign-extended content field.
func (w Word) Content() int {
	content := int((uint32(w) >> TAG_BITS) & CONTENT_MASK)
	if content > CONTENT_MAX {
		content -= 1 << CONTENT_BITS
	}
	return content
}

// Tag returns the A/R/E tag.
func (w Word) Tag() Tag {
	return Tag(uint32(w) & TAG_MASK)
}

// Packed returns the 24-bit value of the word.
func (w Word) Packed() uint32 {
	return uint32(w) & WORD_MASK
}

// Binary renders the word as 24 '0'/'1' characters, MSB first.
func (w Word) Binary() string {
	return fmt.Sprintf("%024b", w.Packed())
}

// Hex renders the word as 6 uppercase hex digits.
func (w Word) Hex() string {
	return fmt.Sprintf("%06X", w.Packed())
}

// Base64 renders the word as 4 characters of the standard base64 alphabet,
// one per 6-bit group, MSB group first.
func (w Word) Base64() string {
	p := w.Packed()
	return base64.StdEncoding.EncodeToString([]byte{byte(p >> 16), byte(p >> 8), byte(p)})
}

// Encoding selects a text rendering of a word.
type Encoding int

//go:generate go tool stringer -linecomment -type=Encoding
const (
	ENCODING_HEX    = Encoding(0) // hex
	ENCODING_BINARY = Encoding(1) // binary
	ENCODING_BASE64 = Encoding(2) // base64
)

// ParseEncoding returns the encoding with the given name.
func ParseEncoding(name string) (enc Encoding, err error) {
	for _, enc = range []Encoding{ENCODING_HEX, ENCODING_BINARY, ENCODING_BASE64} {
		if enc.String() == name {
			return
		}
	}

	err = ErrEncodingUnknown(name)
	return
}

// Encode renders the word with the selected encoding.
func (w Word) Encode(enc Encoding) string {
	switch enc {
	case ENCODING_BINARY:
		return w.Binary()
	case ENCODING_BASE64:
		return w.Base64()
	default:
		return w.Hex()
	}
}
