package asm

import (
	"errors"
	"iter"
	"slices"

	"github.com/ezrec/asm24/cpu"
	"github.com/ezrec/asm24/internal"
)

// External is one reference to an external symbol from the code image.
type External struct {
	Name    string
	Address int // Address of the referencing word.
}

// State is the per-file image built by the two passes.
type State struct {
	Code []cpu.Word // Code image, two words per instruction.
	Data []cpu.Word // Data image.

	InstructionCounter int // Code words, from 0.
	DataCounter        int // Data words, from 0.

	Externals []External // External references, in encoding order.
	Errors    []error    // Accumulated diagnostics.
}

// NewState creates an empty state.
func NewState() *State {
	return &State{}
}

// ErrorCount returns the number of diagnostics collected so far.
func (state *State) ErrorCount() int {
	return len(state.Errors)
}

// Err returns all diagnostics as one error, or nil.
func (state *State) Err() error {
	return errors.Join(state.Errors...)
}

func addressed(base int, words []cpu.Word) iter.Seq2[int, cpu.Word] {
	return func(yield func(int, cpu.Word) bool) {
		for n, word := range words {
			if !yield(base+n, word) {
				return
			}
		}
	}
}

// Words returns an iterator over the code words then the data words, keyed
// by their load address.
func (state *State) Words() iter.Seq2[int, cpu.Word] {
	return internal.IterSeq2Concat(
		addressed(cpu.BASE_ADDRESS, state.Code),
		addressed(cpu.BASE_ADDRESS+len(state.Code), state.Data),
	)
}

// Object is the assembled result of one source file.
type Object struct {
	Name     string       // Base name of the source.
	Expanded []byte       // Macro-expanded source text.
	State    *State       // Code and data images.
	Symbols  *SymbolTable // Final symbol table.
}

// ExternalRefs returns an iterator over the external references.
func (obj *Object) ExternalRefs() iter.Seq[External] {
	return slices.Values(obj.State.Externals)
}
