package asm

import (
	"errors"
	"log"
	"strings"

	"github.com/ezrec/asm24/cpu"
)

// pass is the scan context shared by both passes.
type pass struct {
	asm     *Assembler
	src     *Source
	state   *State
	symbols *SymbolTable
	line    *Line
}

// report records a diagnostic against the current line.
func (p *pass) report(cat Category, err error) {
	el := &ErrLine{Category: cat, File: p.src.Name, Err: err}
	if p.line != nil {
		el.LineNo = p.line.LineNo
		el.Line = p.line.Text
	}
	p.state.Errors = append(p.state.Errors, el)
}

// trace logs the current line in verbose mode.
func (p *pass) trace(label string) {
	if p.asm.Verbose {
		log.Printf("%v: %v:%v: %v\n", label, p.src.Name, p.line.LineNo, p.line.Text)
	}
}

// ignoreLabel drops a label on a directive that cannot define one.
func (p *pass) ignoreLabel() {
	if len(p.line.Label) != 0 && p.asm.Verbose {
		log.Printf("%v:%v: label %v ignored on %v\n", p.src.Name, p.line.LineNo, p.line.Label, p.line.Directive)
	}
}

// addSymbol registers the current line's label, if any.
func (p *pass) addSymbol(value int, kind Kind) {
	if len(p.line.Label) == 0 {
		return
	}

	err := p.symbols.Add(p.line.Label, value, kind)
	if err != nil {
		p.report(CATEGORY_SYMBOL, err)
	}
}

// symbolArg returns the single symbol name argument of .entry or .extern.
func (p *pass) symbolArg() (name string, ok bool) {
	name = p.line.Args
	if len(name) == 0 {
		p.report(CATEGORY_SYNTAX, ErrDirectiveArgs(p.line.Directive))
		return
	}

	err := checkName(name)
	if err != nil {
		p.report(CATEGORY_SYNTAX, err)
		return
	}

	ok = true
	return
}

// appendData appends absolute words to the data image.
func (p *pass) appendData(values ...int) {
	for _, value := range values {
		p.state.Data = append(p.state.Data, cpu.MakeWord(value, cpu.TAG_ABSOLUTE))
	}
	p.state.DataCounter = len(p.state.Data)
}

func (p *pass) directiveData() {
	p.addSymbol(cpu.BASE_ADDRESS+p.state.DataCounter, KIND_DATA)

	if len(p.line.Args) == 0 {
		p.report(CATEGORY_SYNTAX, ErrDirectiveArgs(p.line.Directive))
		return
	}

	var values []int
	for _, arg := range splitArgs(p.line.Args) {
		if len(arg) == 0 {
			p.report(CATEGORY_SYNTAX, ErrDataEmpty)
			return
		}
		value, err := evalNumber(arg)
		if err != nil {
			p.report(numberCategory(err), err)
			return
		}
		values = append(values, value)
	}

	p.appendData(values...)
}

func (p *pass) directiveString() {
	p.addSymbol(cpu.BASE_ADDRESS+p.state.DataCounter, KIND_DATA)

	text := p.line.Args
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' || strings.Count(text, "\"") != 2 {
		p.report(CATEGORY_SYNTAX, ErrStringSyntax)
		return
	}

	text = text[1 : len(text)-1]
	values := make([]int, 0, len(text)+1)
	for n := range len(text) {
		values = append(values, int(text[n]))
	}
	values = append(values, 0)

	p.appendData(values...)
}

func (p *pass) directiveExtern() {
	p.ignoreLabel()

	name, ok := p.symbolArg()
	if !ok {
		return
	}

	err := p.symbols.Add(name, 0, KIND_EXTERNAL)
	if err != nil {
		p.report(CATEGORY_SYMBOL, err)
	}
}

// memoryFull returns true once the images no longer fit the machine.
func (p *pass) memoryFull() bool {
	return cpu.BASE_ADDRESS+p.state.InstructionCounter+p.state.DataCounter > cpu.MEMORY_SIZE
}

// FirstPass builds the symbol table, sizes the code image and builds the
// data image. Diagnostics are collected in state and returned joined.
func (asm *Assembler) FirstPass(src *Source, state *State, symbols *SymbolTable) (err error) {
	p := &pass{asm: asm, src: src, state: state, symbols: symbols}
	start := len(state.Errors)

	defer func() {
		err = joinFrom(state, start)
	}()

	for n := range src.Lines {
		p.line = &src.Lines[n]
		p.trace("first")

		if p.line.Err != nil {
			p.report(CATEGORY_SYNTAX, p.line.Err)
			continue
		}

		switch p.line.Directive {
		case DIRECTIVE_DATA:
			p.directiveData()
		case DIRECTIVE_STRING:
			p.directiveString()
		case DIRECTIVE_EXTERN:
			p.directiveExtern()
		case DIRECTIVE_ENTRY:
			p.ignoreLabel()
			p.symbolArg()
		case "":
			p.addSymbol(cpu.BASE_ADDRESS+state.InstructionCounter, KIND_CODE)
			state.InstructionCounter += 2
		default:
			p.report(CATEGORY_DIRECTIVE, ErrDirectiveUnknown(p.line.Directive))
		}

		if p.memoryFull() {
			p.report(CATEGORY_MEMORY, ErrMemoryFull)
			return
		}
	}

	p.line = nil

	perr := symbols.PromoteDataAddresses(state.InstructionCounter)
	if perr != nil {
		p.report(CATEGORY_GENERAL, perr)
	}

	verr := symbols.Validate()
	if verr != nil {
		p.report(CATEGORY_SYMBOL, verr)
	}

	return
}

// joinFrom joins the diagnostics collected since start.
func joinFrom(state *State, start int) error {
	if len(state.Errors) == start {
		return nil
	}
	return errors.Join(state.Errors[start:]...)
}
