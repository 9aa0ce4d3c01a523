package io

import (
	"fmt"
	"io"

	"github.com/ezrec/asm24/asm"
	"github.com/ezrec/asm24/cpu"
)

// ReportKind is a kind of assembler output file. Its name is both the output
// subdirectory and the file extension.
type ReportKind int

//go:generate go tool stringer -linecomment -type=ReportKind
const (
	REPORT_EXPANDED  = ReportKind(0) // am
	REPORT_OBJECT    = ReportKind(1) // ob
	REPORT_ENTRIES   = ReportKind(2) // ent
	REPORT_EXTERNALS = ReportKind(3) // ext
)

// Ext returns the file extension of the report.
func (report ReportKind) Ext() string {
	return "." + report.String()
}

// WriteObject writes the object report: a header with the code and data
// word counts, then every word at its load address.
func WriteObject(w io.Writer, obj *asm.Object, enc cpu.Encoding) (err error) {
	_, err = fmt.Fprintf(w, "%d %d\n", len(obj.State.Code), len(obj.State.Data))
	if err != nil {
		return
	}

	for address, word := range obj.State.Words() {
		_, err = fmt.Fprintf(w, "%04d %v\n", address, word.Encode(enc))
		if err != nil {
			return
		}
	}

	return
}

// WriteEntries writes one line per entry symbol.
func WriteEntries(w io.Writer, obj *asm.Object) (err error) {
	for sym := range obj.Symbols.Entries() {
		_, err = fmt.Fprintf(w, "%v %04d\n", sym.Name, sym.Value)
		if err != nil {
			return
		}
	}

	return
}

// WriteExternals writes one line per reference to an external symbol.
func WriteExternals(w io.Writer, obj *asm.Object) (err error) {
	for ext := range obj.ExternalRefs() {
		_, err = fmt.Fprintf(w, "%v %04d\n", ext.Name, ext.Address)
		if err != nil {
			return
		}
	}

	return
}
