package asm

import (
	"strings"

	"github.com/ezrec/asm24/cpu"
)

// operand is one parsed instruction operand.
type operand struct {
	Text  string
	Mode  cpu.Mode
	Reg   int    // Register number for MODE_REGISTER.
	Value string // Number text for MODE_IMMEDIATE, symbol name otherwise.
}

// extra returns true if the operand needs a word after the instruction.
func (opd *operand) extra() bool {
	return opd.Mode != cpu.MODE_REGISTER
}

// parseOperand classifies an operand by its addressing mode.
func parseOperand(text string) (opd operand, err error) {
	opd.Text = text

	switch {
	case strings.HasPrefix(text, "#"):
		opd.Mode = cpu.MODE_IMMEDIATE
		opd.Value = text[1:]
		if len(opd.Value) == 0 {
			err = ErrOperandSyntax(text)
		}
		return
	case strings.HasPrefix(text, "&"):
		opd.Mode = cpu.MODE_RELATIVE
		opd.Value = text[1:]
		if checkName(opd.Value) != nil {
			err = ErrOperandSyntax(text)
		}
		return
	}

	reg, ok := cpu.ParseRegister(text)
	if ok {
		opd.Mode = cpu.MODE_REGISTER
		opd.Reg = reg
		return
	}

	if checkName(text) != nil {
		err = ErrOperandSyntax(text)
		return
	}

	opd.Mode = cpu.MODE_DIRECT
	opd.Value = text
	return
}

// resolve encodes the extra word of an operand at address, for the
// instruction at ip.
func (p *pass) resolve(opd *operand, ip, address int) (word cpu.Word, ok bool) {
	if opd.Mode == cpu.MODE_IMMEDIATE {
		value, err := evalNumber(opd.Value)
		if err != nil {
			p.report(numberCategory(err), err)
			return
		}
		return cpu.MakeWord(value, cpu.TAG_ABSOLUTE), true
	}

	sym, found := p.symbols.Get(opd.Value)
	if !found {
		p.report(CATEGORY_SYMBOL, ErrSymbolMissing(opd.Value))
		return
	}

	switch {
	case opd.Mode == cpu.MODE_RELATIVE && sym.Kind == KIND_EXTERNAL:
		p.report(CATEGORY_SYMBOL, ErrRelativeExternal(sym.Name))
		return
	case opd.Mode == cpu.MODE_RELATIVE:
		word = cpu.MakeWord(sym.Value-ip, cpu.TAG_ABSOLUTE)
	case sym.Kind == KIND_EXTERNAL:
		word = cpu.MakeWord(0, cpu.TAG_EXTERNAL)
		p.state.Externals = append(p.state.Externals, External{Name: sym.Name, Address: address})
	default:
		word = cpu.MakeWord(sym.Value, cpu.TAG_RELOCATABLE)
	}

	ok = true
	return
}

// encode builds the two-word slot of the instruction at ip.
func (p *pass) encode(ip int) (slot [2]cpu.Word, ok bool) {
	line := p.line

	op, found := cpu.LookupOpcode(line.Mnemonic)
	if !found {
		p.report(CATEGORY_INSTRUCTION, ErrOpcodeUnknown(line.Mnemonic))
		return
	}

	if len(line.Operands) != op.Operands() {
		p.report(CATEGORY_INSTRUCTION, ErrOperandCount{Mnemonic: op.Mnemonic, Want: op.Operands(), Got: len(line.Operands)})
		return
	}

	var src, dst *operand
	modes := []cpu.ModeSet{op.Source, op.Target}
	if op.Source.Empty() {
		modes = modes[1:]
	}

	var operands []*operand
	for n, text := range line.Operands {
		opd, err := parseOperand(text)
		if err != nil {
			p.report(CATEGORY_SYNTAX, err)
			return
		}
		if !modes[n].Has(opd.Mode) {
			p.report(CATEGORY_INSTRUCTION, ErrModeInvalid{Mnemonic: op.Mnemonic, Operand: text})
			return
		}
		operands = append(operands, &opd)
	}

	switch len(operands) {
	case 2:
		src, dst = operands[0], operands[1]
	case 1:
		dst = operands[0]
	}

	var extras []*operand
	for _, opd := range operands {
		if opd.extra() {
			extras = append(extras, opd)
		}
	}
	if len(extras) > len(slot)-1 {
		p.report(CATEGORY_INSTRUCTION, ErrSlotExhausted)
		return
	}

	var src_mode, dst_mode cpu.Mode
	var src_reg, dst_reg int
	if src != nil {
		src_mode, src_reg = src.Mode, src.Reg
	}
	if dst != nil {
		dst_mode, dst_reg = dst.Mode, dst.Reg
	}
	slot[0] = cpu.MakeCodeInstruction(op, src_mode, src_reg, dst_mode, dst_reg)
	slot[1] = cpu.MakeWord(0, cpu.TAG_ABSOLUTE)

	if len(extras) == 1 {
		slot[1], ok = p.resolve(extras[0], ip, ip+1)
		return
	}

	ok = true
	return
}

// SecondPass marks entries and encodes every instruction into the code
// image, against the symbol table completed by FirstPass.
func (asm *Assembler) SecondPass(src *Source, state *State, symbols *SymbolTable) (err error) {
	p := &pass{asm: asm, src: src, state: state, symbols: symbols}
	start := len(state.Errors)

	defer func() {
		err = joinFrom(state, start)
	}()

	state.Code = state.Code[:0]
	state.Externals = state.Externals[:0]

	ic := 0
	for n := range src.Lines {
		p.line = &src.Lines[n]
		p.trace("second")

		if p.line.Err != nil {
			continue
		}

		switch p.line.Directive {
		case DIRECTIVE_ENTRY:
			merr := symbols.MarkEntry(p.line.Args)
			if merr != nil {
				p.report(CATEGORY_SYMBOL, merr)
			}
		case "":
			ip := cpu.BASE_ADDRESS + ic
			slot, ok := p.encode(ip)
			if !ok {
				zero := cpu.MakeWord(0, cpu.TAG_ABSOLUTE)
				slot = [2]cpu.Word{zero, zero}
			}
			state.Code = append(state.Code, slot[:]...)
			ic += len(slot)
		}
	}

	p.line = nil

	if ic != state.InstructionCounter {
		p.report(CATEGORY_GENERAL, ErrCounterDrift)
	}

	verr := symbols.Validate()
	if verr != nil {
		p.report(CATEGORY_SYMBOL, verr)
	}

	return
}
