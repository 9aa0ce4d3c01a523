package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/asm24/translate"
)

var f = translate.From

// Category classifies a diagnostic.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CATEGORY_FILE        = Category(0) // File
	CATEGORY_MEMORY      = Category(1) // Memory
	CATEGORY_SYNTAX      = Category(2) // Syntax
	CATEGORY_RANGE       = Category(3) // Range
	CATEGORY_SYMBOL      = Category(4) // Symbol
	CATEGORY_DIRECTIVE   = Category(5) // Directive
	CATEGORY_MACRO       = Category(6) // Macro
	CATEGORY_INSTRUCTION = Category(7) // Instruction
	CATEGORY_GENERAL     = Category(8) // General
)

var (
	// Macro errors
	ErrMacroNesting    = errors.New(f("mcro in mcro prohibited"))
	ErrMacroDuplicate  = errors.New(f("mcro duplicated"))
	ErrMacroLonely     = errors.New(f("mcro without endmcro"))
	ErrMacroLonelyEnd  = errors.New(f("endmcro without mcro"))
	ErrMacroEndSyntax  = errors.New(f("endmcro takes no arguments"))
	ErrMacroArguments  = errors.New(f("macro invocation takes no arguments"))
	ErrMacroLimit      = errors.New(f("too many macros"))
	ErrMacroNameMissed = errors.New(f("mcro name missing"))

	// Line errors
	ErrLabelLonely   = errors.New(f("label without a statement"))
	ErrOperandEmpty  = errors.New(f("empty operand"))
	ErrStringSyntax  = errors.New(f(".string requires one quoted literal"))
	ErrDataEmpty     = errors.New(f("empty .data value"))
	ErrMemoryFull    = errors.New(f("program exceeds machine memory"))
	ErrSlotExhausted = errors.New(f("operands need more than the two-word slot"))
	ErrCounterDrift  = errors.New(f("instruction counter differs between passes"))

	// Symbol table errors
	ErrSymbolTableFull = errors.New(f("symbol table full"))
	ErrSymbolPromoted  = errors.New(f("data addresses already promoted"))
)

// ErrLine locates a diagnostic in a source file.
type ErrLine struct {
	Category Category
	File     string
	LineNo   int
	Line     string
	Err      error
}

func (err *ErrLine) Error() string {
	var sb strings.Builder
	sb.WriteString(f("[Error - %v]", err.Category))
	if len(err.File) != 0 {
		sb.WriteString(f(" in file \"%v\"", err.File))
	}
	if err.LineNo > 0 {
		sb.WriteString(f(" at line %d", err.LineNo))
	}
	sb.WriteString(f(": %v", err.Err))
	if len(err.Line) != 0 {
		sb.WriteString(f(" '%v'", err.Line))
	}
	return sb.String()
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// Is matches another *ErrLine of the same category.
func (err *ErrLine) Is(target error) bool {
	other, ok := target.(*ErrLine)
	return ok && other.Category == err.Category
}

// CategoryOf returns the category of the first located diagnostic in err.
func CategoryOf(err error) (cat Category, ok bool) {
	var el *ErrLine
	if errors.As(err, &el) {
		return el.Category, true
	}
	return CATEGORY_GENERAL, false
}

type ErrMacroName string

func (err ErrMacroName) Error() string {
	return f("'%v' is not a valid macro name", string(err))
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a valid label", string(err))
}

type ErrLabelReserved string

func (err ErrLabelReserved) Error() string {
	return f("'%v' is a reserved word", string(err))
}

type ErrDirectiveUnknown string

func (err ErrDirectiveUnknown) Error() string {
	return f("unknown directive %v", string(err))
}

type ErrDirectiveArgs string

func (err ErrDirectiveArgs) Error() string {
	return f("%v requires arguments", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("%v is outside the 21-bit content range", string(err))
}

type ErrOperandSyntax string

func (err ErrOperandSyntax) Error() string {
	return f("'%v' is not a valid operand", string(err))
}

type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown instruction '%v'", string(err))
}

type ErrOperandCount struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %d operand(s), got %d", err.Mnemonic, err.Want, err.Got)
}

type ErrModeInvalid struct {
	Mnemonic string
	Operand  string
}

func (err ErrModeInvalid) Error() string {
	return f("%v does not accept operand '%v'", err.Mnemonic, err.Operand)
}

type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v already exists", string(err))
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v not found", string(err))
}

type ErrSymbolExternEntry string

func (err ErrSymbolExternEntry) Error() string {
	return f("symbol %v cannot be both extern and entry", string(err))
}

type ErrRelativeExternal string

func (err ErrRelativeExternal) Error() string {
	return f("relative reference to external symbol %v", string(err))
}
