// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bytes"
	"io"
)

// Assembler is a two pass macro assembler for the 24-bit machine.
type Assembler struct {
	Verbose     bool // If set, verbosely logs the assembler actions.
	SymbolLimit int  // Maximum symbols per file, 0 for no limit.
	MacroLimit  int  // Maximum macros per file, 0 for no limit.
}

// Expand runs the macro expander over input, writing the expanded source to
// output.
func (asm *Assembler) Expand(name string, input io.Reader, output io.Writer) (err error) {
	mx := &MacroExpander{Name: name, Limit: asm.MacroLimit}
	return mx.Expand(input, output)
}

// Assemble expands, parses and assembles one source file with fresh tables.
// The object is returned whenever expansion succeeded, so the expanded text
// is available even when assembly fails. The second pass only runs after a
// clean first pass.
func (asm *Assembler) Assemble(name string, input io.Reader) (obj *Object, err error) {
	var expanded bytes.Buffer
	err = asm.Expand(name, input, &expanded)
	if err != nil {
		return
	}

	obj = &Object{
		Name:     name,
		Expanded: expanded.Bytes(),
		State:    NewState(),
		Symbols:  NewSymbolTable(asm.SymbolLimit),
	}

	src, err := Parse(name, bytes.NewReader(obj.Expanded))
	if err != nil {
		err = &ErrLine{Category: CATEGORY_FILE, File: name, Err: err}
		return
	}

	err = asm.FirstPass(src, obj.State, obj.Symbols)
	if err != nil {
		return
	}

	err = asm.SecondPass(src, obj.State, obj.Symbols)
	return
}
