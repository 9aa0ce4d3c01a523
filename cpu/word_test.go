package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		content int
		tag     Tag
		packed  uint32
	}){
		{0, TAG_ABSOLUTE, 0x000004},
		{1, TAG_ABSOLUTE, 0x00000c},
		{-1, TAG_ABSOLUTE, 0xfffffc},
		{CONTENT_MAX, TAG_RELOCATABLE, 0x7ffffa},
		{CONTENT_MIN, TAG_EXTERNAL, 0x800001},
		{100, TAG_RELOCATABLE, 0x000322},
	}

	for _, entry := range table {
		w := MakeWord(entry.content, entry.tag)
		assert.Equal(entry.packed, w.Packed(), "%+v", entry)
		assert.Equal(entry.content, w.Content(), "%+v", entry)
		assert.Equal(entry.tag, w.Tag(), "%+v", entry)
	}
}

func TestMakeWord_Truncates(t *testing.T) {
	assert := assert.New(t)

	w := MakeWord(CONTENT_MAX+1, TAG_ABSOLUTE|8)
	assert.Equal(uint32(0x800004), w.Packed())
	assert.Equal(CONTENT_MIN, w.Content())
	assert.Equal(TAG_ABSOLUTE, w.Tag())
}

func TestInRange(t *testing.T) {
	assert := assert.New(t)

	assert.True(InRange(0))
	assert.True(InRange(CONTENT_MAX))
	assert.True(InRange(CONTENT_MIN))
	assert.False(InRange(CONTENT_MAX + 1))
	assert.False(InRange(CONTENT_MIN - 1))
	assert.Equal(1048575, CONTENT_MAX)
	assert.Equal(-1048576, CONTENT_MIN)
}

func TestWord_Encodings(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   Word
		binary string
		hex    string
		base64 string
	}){
		{MakeWord(1, TAG_ABSOLUTE), "000000000000000000001100", "00000C", "AAAM"},
		{MakeWord(-1, TAG_ABSOLUTE), "111111111111111111111100", "FFFFFC", "///8"},
		{MakeWord(0, TAG_EXTERNAL), "000000000000000000000001", "000001", "AAAB"},
		{Word(0xabcdef), "101010111100110111101111", "ABCDEF", "q83v"},
	}

	for _, entry := range table {
		assert.Equal(entry.binary, entry.word.Binary())
		assert.Equal(entry.hex, entry.word.Hex())
		assert.Equal(entry.base64, entry.word.Base64())
		assert.Equal(entry.hex, entry.word.Encode(ENCODING_HEX))
		assert.Equal(entry.binary, entry.word.Encode(ENCODING_BINARY))
		assert.Equal(entry.base64, entry.word.Encode(ENCODING_BASE64))
	}
}

func TestTag_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A", TAG_ABSOLUTE.String())
	assert.Equal("R", TAG_RELOCATABLE.String())
	assert.Equal("E", TAG_EXTERNAL.String())
	assert.Equal("Tag(3)", Tag(3).String())
}

func TestParseEncoding(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"hex", "binary", "base64"} {
		enc, err := ParseEncoding(name)
		assert.NoError(err)
		assert.Equal(name, enc.String())
	}

	_, err := ParseEncoding("octal")
	assert.Error(err)
	assert.IsType(ErrEncodingUnknown(""), err)
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func FuzzWord(f *testing.F) {
	f.Add(0, uint8(4))
	f.Add(-1, uint8(1))
	f.Add(CONTENT_MAX, uint8(2))
	f.Add(CONTENT_MIN, uint8(7))

	f.Fuzz(func(t *testing.T, content int, tag uint8) {
		assert := assert.New(t)

		w := MakeWord(content, Tag(tag))
		assert.LessOrEqual(w.Packed(), uint32(WORD_MASK))
		assert.Equal(Tag(tag)&TAG_MASK, w.Tag())
		if InRange(content) {
			assert.Equal(content, w.Content())
		}

		hex := w.Hex()
		assert.Len(hex, 6)
		assert.Equal(strings.ToUpper(hex), hex)

		bin := w.Binary()
		assert.Len(bin, WORD_BITS)
		assert.Empty(strings.Trim(bin, "01"))

		b64 := w.Base64()
		assert.Len(b64, 4)
		for _, ch := range b64 {
			assert.True(strings.ContainsRune(base64Alphabet, ch), b64)
		}
	})
}
