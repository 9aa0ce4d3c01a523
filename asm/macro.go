package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the first macro line.
	Lines  []string // Lines of macro text to expand.
}

// MacroExpander substitutes mcro/endmcro definitions into their
// invocation sites. A macro must be defined before it is invoked.
type MacroExpander struct {
	Name  string            // Source name for diagnostics.
	Limit int               // Maximum number of macros, 0 for no limit.
	Macro map[string]*Macro // Map of macros.
}

// Expand reads source from input and writes the expanded source to output.
// Expansion stops at the first error.
func (mx *MacroExpander) Expand(input io.Reader, output io.Writer) (err error) {
	scanner := bufio.NewScanner(input)
	writer := bufio.NewWriter(output)

	var text string
	var lineno int
	var macro *Macro

	category := CATEGORY_MACRO
	defer func() {
		if err != nil {
			err = &ErrLine{Category: category, File: mx.Name, LineNo: lineno, Line: text, Err: err}
		}
	}()

	if mx.Macro == nil {
		mx.Macro = make(map[string]*Macro)
	}
	clear(mx.Macro)

	for scanner.Scan() {
		text = scanner.Text()
		lineno++

		line := normalize(text)
		word, rest, _ := strings.Cut(normalize(stripComment(text)), " ")

		switch {
		case word == MACRO_START:
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(rest) == 0 {
				err = ErrMacroNameMissed
				return
			}
			if !isIdentifier(rest) || IsReserved(rest) {
				err = ErrMacroName(rest)
				return
			}
			if _, ok := mx.Macro[rest]; ok {
				err = ErrMacroDuplicate
				return
			}
			if mx.Limit > 0 && len(mx.Macro) >= mx.Limit {
				err = ErrMacroLimit
				return
			}
			macro = &Macro{LineNo: lineno + 1}
			mx.Macro[rest] = macro
		case word == MACRO_END:
			category = CATEGORY_SYNTAX
			if macro == nil {
				err = ErrMacroLonelyEnd
				return
			}
			if len(rest) != 0 {
				err = ErrMacroEndSyntax
				return
			}
			category = CATEGORY_MACRO
			macro = nil
		case macro != nil:
			macro.Lines = append(macro.Lines, line)
		default:
			invoked, ok := mx.Macro[word]
			if !ok {
				fmt.Fprintln(writer, text)
				continue
			}
			if len(rest) != 0 {
				err = ErrMacroArguments
				return
			}
			for _, body := range invoked.Lines {
				fmt.Fprintln(writer, body)
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		category = CATEGORY_FILE
		return
	}

	if macro != nil {
		category = CATEGORY_SYNTAX
		err = ErrMacroLonely
		return
	}

	return writer.Flush()
}
