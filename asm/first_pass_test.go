package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm24/cpu"
)

// runFirst runs the first pass over a program with fresh tables.
func runFirst(t *testing.T, state *State, program ...string) (symbols *SymbolTable, err error) {
	src, err := Parse("test.am", strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	asm := &Assembler{}
	symbols = NewSymbolTable(0)
	err = asm.FirstPass(src, state, symbols)
	return
}

// categories lists the category of each collected diagnostic.
func categories(state *State) (cats []Category) {
	for _, err := range state.Errors {
		cat, _ := CategoryOf(err)
		cats = append(cats, cat)
	}
	return
}

func contents(words []cpu.Word) (values []int) {
	for _, word := range words {
		values = append(values, word.Content())
	}
	return
}

func TestFirstPass_Data(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	symbols, err := runFirst(t, state, ".data 1,2,3")
	assert.NoError(err)

	assert.Equal(3, state.DataCounter)
	assert.Equal([]int{1, 2, 3}, contents(state.Data))
	for _, word := range state.Data {
		assert.Equal(cpu.TAG_ABSOLUTE, word.Tag())
	}
	assert.Equal(0, symbols.Len())
	assert.Equal(0, state.InstructionCounter)
}

func TestFirstPass_DataLabel(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	symbols, err := runFirst(t, state,
		"MAIN: stop",
		".data 1, 2",
		"LBL: .data 5",
		"stop",
	)
	assert.NoError(err)
	assert.Equal(4, state.InstructionCounter)
	assert.Equal(3, state.DataCounter)

	sym, ok := symbols.Get("LBL")
	assert.True(ok)
	assert.Equal(KIND_DATA, sym.Kind)
	assert.Equal(cpu.BASE_ADDRESS+4+2, sym.Value)

	sym, ok = symbols.Get("MAIN")
	assert.True(ok)
	assert.Equal(KIND_CODE, sym.Kind)
	assert.Equal(cpu.BASE_ADDRESS, sym.Value)

	// The label addresses the word holding 5 once the images are laid out.
	state.Code = make([]cpu.Word, state.InstructionCounter)
	for address, word := range state.Words() {
		if address == sym.Value {
			assert.Equal(5, word.Content())
		}
	}
}

func TestFirstPass_String(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	symbols, err := runFirst(t, state, `STR: .string "ab;c"`, `.string ""`)
	assert.NoError(err)

	assert.Equal([]int{'a', 'b', ';', 'c', 0, 0}, contents(state.Data))
	sym, _ := symbols.Get("STR")
	assert.Equal(cpu.BASE_ADDRESS, sym.Value)
}

func TestFirstPass_Instructions(t *testing.T) {
	assert := assert.New(t)

	program := make([]string, 10)
	for n := range program {
		program[n] = "stop"
	}

	state := NewState()
	symbols, err := runFirst(t, state, program...)
	assert.NoError(err)
	assert.Equal(20, state.InstructionCounter)
	assert.Equal(0, symbols.Len())
}

func TestFirstPass_ExternEntry(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	symbols, err := runFirst(t, state,
		"IGNORED: .extern X",
		"ALSO: .entry MAIN",
		"MAIN: stop",
	)
	assert.NoError(err)
	assert.Equal(2, symbols.Len())

	sym, ok := symbols.Get("X")
	assert.True(ok)
	assert.Equal(Symbol{Name: "X", Value: 0, Kind: KIND_EXTERNAL}, sym)

	_, ok = symbols.Get("IGNORED")
	assert.False(ok)
	_, ok = symbols.Get("ALSO")
	assert.False(ok)
}

func TestFirstPass_Errors(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	_, err := runFirst(t, state,
		".data 1, x",
		".data 2000000",
		".data 1,,2",
		".data",
		".string abc",
		".foo 1",
		"LBL:",
		"A: stop",
		"A: stop",
		".extern 1X",
		".entry",
		"stop",
	)
	assert.Error(err)

	assert.Equal([]Category{
		CATEGORY_SYNTAX,
		CATEGORY_RANGE,
		CATEGORY_SYNTAX,
		CATEGORY_SYNTAX,
		CATEGORY_SYNTAX,
		CATEGORY_DIRECTIVE,
		CATEGORY_SYNTAX,
		CATEGORY_SYMBOL,
		CATEGORY_SYNTAX,
		CATEGORY_SYNTAX,
	}, categories(state))

	// Failed directives are discarded, and scanning continues.
	assert.Equal(0, state.DataCounter)
	assert.Equal(6, state.InstructionCounter)

	assert.ErrorIs(err, ErrDataEmpty)
	assert.ErrorIs(err, ErrSymbolDuplicate("A"))
	assert.ErrorIs(err, ErrDirectiveUnknown(".foo"))
	assert.ErrorIs(err, ErrValueRange("2000000"))
}

func TestFirstPass_MemoryFull(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	state.InstructionCounter = cpu.MEMORY_SIZE - cpu.BASE_ADDRESS - 1
	_, err := runFirst(t, state, "stop", ".foo")
	assert.ErrorIs(err, ErrMemoryFull)
	assert.Equal([]Category{CATEGORY_MEMORY}, categories(state))
}
