package asm

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/ezrec/asm24/cpu"
)

const (
	DIRECTIVE_DATA   = ".data"
	DIRECTIVE_STRING = ".string"
	DIRECTIVE_ENTRY  = ".entry"
	DIRECTIVE_EXTERN = ".extern"

	MACRO_START = "mcro"
	MACRO_END   = "endmcro"

	COMMENT_CHAR = ';'
)

// reserved words that cannot name a label or a macro.
var reserved = map[string]bool{
	MACRO_START: true,
	MACRO_END:   true,
	"data":      true,
	"string":    true,
	"entry":     true,
	"extern":    true,
}

func init() {
	for mnemonic := range cpu.Mnemonics() {
		reserved[mnemonic] = true
	}
	for n := range cpu.REGISTER_COUNT {
		reserved["r"+string(rune('0'+n))] = true
	}
}

// IsReserved returns true for mnemonics, registers, directive names and
// macro keywords.
func IsReserved(word string) bool {
	return reserved[word]
}

// isIdentifier checks for a letter followed by letters, digits or '_', at
// most cpu.LABEL_LIMIT long.
func isIdentifier(word string) bool {
	if len(word) == 0 || len(word) > cpu.LABEL_LIMIT {
		return false
	}
	for n, ch := range word {
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		digit := ch >= '0' && ch <= '9'
		if n == 0 && !letter {
			return false
		}
		if !letter && !digit && ch != '_' {
			return false
		}
	}
	return true
}

// checkName validates a label or symbol name.
func checkName(name string) (err error) {
	if !isIdentifier(name) {
		err = ErrLabelInvalid(name)
		return
	}
	if IsReserved(name) {
		err = ErrLabelReserved(name)
	}
	return
}

// stripComment removes a comment that is not inside a string literal.
func stripComment(text string) string {
	quoted := false
	for n, ch := range text {
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == COMMENT_CHAR && !quoted:
			return text[:n]
		}
	}
	return text
}

// normalize trims the text and collapses whitespace outside string
// literals to single spaces.
func normalize(text string) string {
	var sb strings.Builder
	quoted := false
	space := false
	for _, ch := range strings.TrimSpace(text) {
		if ch == '"' {
			quoted = !quoted
		}
		if !quoted && unicode.IsSpace(ch) {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// splitArgs splits on commas outside string literals and parentheses.
func splitArgs(text string) (args []string) {
	quoted := false
	depth := 0
	start := 0
	for n, ch := range text {
		switch {
		case ch == '"':
			quoted = !quoted
		case quoted:
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		case ch == ',' && depth == 0:
			args = append(args, strings.TrimSpace(text[start:n]))
			start = n + 1
		}
	}
	args = append(args, strings.TrimSpace(text[start:]))
	return
}

// Line is one parsed statement of expanded source.
type Line struct {
	LineNo    int
	Text      string   // Normalized text without comment.
	Label     string   // Label, without the ':'.
	Directive string   // Directive with its leading '.', empty for instructions.
	Args      string   // Directive arguments.
	Mnemonic  string   // Instruction mnemonic.
	Operands  []string // Instruction operands.
	Err       error    // Lexical error, if any.
}

// parse splits normalized text into its label, directive or instruction.
func (line *Line) parse(text string) (err error) {
	line.Text = text

	word, rest, _ := strings.Cut(text, " ")
	if n := strings.IndexByte(word, ':'); n >= 0 && !strings.ContainsRune(word[:n], '"') {
		line.Label = word[:n]
		err = checkName(line.Label)
		if err != nil {
			return
		}
		text = strings.TrimSpace(word[n+1:] + " " + rest)
		if len(text) == 0 {
			err = ErrLabelLonely
			return
		}
	}

	if text[0] == '.' {
		line.Directive, line.Args, _ = strings.Cut(text, " ")
		return
	}

	line.Mnemonic, rest, _ = strings.Cut(text, " ")
	if len(rest) == 0 {
		return
	}

	for _, operand := range splitArgs(rest) {
		if len(operand) == 0 {
			err = ErrOperandEmpty
			return
		}
		if strings.ContainsRune(operand, ' ') && !strings.Contains(operand, "$(") {
			err = ErrOperandSyntax(operand)
			return
		}
		line.Operands = append(line.Operands, operand)
	}

	return
}

// Source is expanded source parsed once and shared by both passes.
// Blank and comment-only lines are dropped.
type Source struct {
	Name  string
	Lines []Line
}

// Parse reads expanded source. Lexical errors are kept on each Line; the
// returned error only reports read failures.
func Parse(name string, input io.Reader) (src *Source, err error) {
	src = &Source{Name: name}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := normalize(stripComment(scanner.Text()))
		if len(text) == 0 {
			continue
		}

		line := Line{LineNo: lineno}
		line.Err = line.parse(text)
		src.Lines = append(src.Lines, line)
	}

	err = scanner.Err()
	return
}
