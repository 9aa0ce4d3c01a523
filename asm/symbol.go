package asm

import (
	"errors"
	"iter"
	"slices"
)

// Kind classifies a symbol.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_CODE     = Kind(0) // code
	KIND_DATA     = Kind(1) // data
	KIND_EXTERNAL = Kind(2) // external
	KIND_ENTRY    = Kind(3) // entry
)

// Symbol is a named address or value.
type Symbol struct {
	Name  string
	Value int  // Address, including the base address, or 0 for externals.
	Kind  Kind // Kind of definition.
	Entry bool // Exported by .entry.
}

// SymbolTable holds the symbols of one compilation unit, in definition
// order. Symbols are never removed.
type SymbolTable struct {
	Limit int // Maximum number of symbols, 0 for no limit.

	symbols  []Symbol
	promoted bool
}

// NewSymbolTable creates an empty table holding at most limit symbols.
func NewSymbolTable(limit int) *SymbolTable {
	return &SymbolTable{Limit: limit}
}

func (st *SymbolTable) index(name string) int {
	return slices.IndexFunc(st.symbols, func(sym Symbol) bool { return sym.Name == name })
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Add defines a new symbol. The table is unchanged on error.
func (st *SymbolTable) Add(name string, value int, kind Kind) (err error) {
	if st.Limit > 0 && len(st.symbols) >= st.Limit {
		err = ErrSymbolTableFull
		return
	}

	if st.index(name) >= 0 {
		err = ErrSymbolDuplicate(name)
		return
	}

	st.symbols = append(st.symbols, Symbol{
		Name:  name,
		Value: value,
		Kind:  kind,
		Entry: kind == KIND_ENTRY,
	})

	return
}

// Get returns the named symbol.
func (st *SymbolTable) Get(name string) (sym Symbol, ok bool) {
	n := st.index(name)
	if n < 0 {
		return
	}

	return st.symbols[n], true
}

// Update changes the value of a symbol.
func (st *SymbolTable) Update(name string, value int) (err error) {
	n := st.index(name)
	if n < 0 {
		err = ErrSymbolMissing(name)
		return
	}

	st.symbols[n].Value = value
	return
}

// MarkEntry flags a symbol for export. External symbols cannot be exported.
func (st *SymbolTable) MarkEntry(name string) (err error) {
	n := st.index(name)
	if n < 0 {
		err = ErrSymbolMissing(name)
		return
	}

	sym := &st.symbols[n]
	if sym.Kind == KIND_EXTERNAL {
		err = ErrSymbolExternEntry(name)
		return
	}

	sym.Entry = true
	return
}

// PromoteDataAddresses moves every data symbol past the code segment.
// It may only be called once per table.
func (st *SymbolTable) PromoteDataAddresses(codeSize int) (err error) {
	if st.promoted {
		err = ErrSymbolPromoted
		return
	}

	for n := range st.symbols {
		if st.symbols[n].Kind == KIND_DATA {
			st.symbols[n].Value += codeSize
		}
	}
	st.promoted = true

	return
}

// Validate checks that no symbol is both external and an entry.
func (st *SymbolTable) Validate() (err error) {
	var errs []error
	for _, sym := range st.symbols {
		if sym.Kind == KIND_EXTERNAL && sym.Entry {
			errs = append(errs, ErrSymbolExternEntry(sym.Name))
		}
	}

	return errors.Join(errs...)
}

// All returns an iterator over the symbols in definition order.
func (st *SymbolTable) All() iter.Seq[Symbol] {
	return slices.Values(st.symbols)
}

// Entries returns an iterator over the entry symbols in definition order.
func (st *SymbolTable) Entries() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, sym := range st.symbols {
			if !sym.Entry {
				continue
			}
			if !yield(sym) {
				return
			}
		}
	}
}
