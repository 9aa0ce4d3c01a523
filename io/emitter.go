package io

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/ezrec/asm24/asm"
	"github.com/ezrec/asm24/cpu"
)

// Emitter writes the reports of assembled objects into an output tree, one
// subdirectory per report kind.
type Emitter struct {
	FS       CreateFS     // Output tree.
	Encoding cpu.Encoding // Word rendering for the object report.
}

// BaseName strips the directory and extension from a source name.
func BaseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// dir returns the report subdirectory, creating it if needed.
func (em *Emitter) dir(report ReportKind) (sub CreateFS, err error) {
	name := report.String()
	sub, err = em.FS.Sub(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return
		}
		// Create the directory
		err = em.FS.Mkdir(name, 0755)
		if err != nil {
			return
		}
		sub, err = em.FS.Sub(name)
	}

	return
}

// write creates the report file for a source name and fills it with writer.
func (em *Emitter) write(report ReportKind, name string, writer func(w io.Writer) error) (err error) {
	filename := path.Join(report.String(), BaseName(name)+report.Ext())

	defer func() {
		if err != nil {
			err = &asm.ErrLine{Category: asm.CATEGORY_FILE, File: filename, Err: err}
		}
	}()

	sub, err := em.dir(report)
	if err != nil {
		return
	}

	file, err := sub.Create(BaseName(name) + report.Ext())
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = writer(file)
	return
}

// WriteExpanded writes the macro-expanded source of name.
func (em *Emitter) WriteExpanded(name string, text []byte) (err error) {
	return em.write(REPORT_EXPANDED, name, func(w io.Writer) (err error) {
		_, err = w.Write(text)
		return
	})
}

// Emit writes the object, entries and externals reports of obj. Every
// report is attempted; the failures are returned joined.
func (em *Emitter) Emit(obj *asm.Object) (err error) {
	if obj == nil || obj.State == nil || obj.Symbols == nil {
		err = ErrObjectMissing
		return
	}

	errs := []error{
		em.write(REPORT_OBJECT, obj.Name, func(w io.Writer) error {
			return WriteObject(w, obj, em.Encoding)
		}),
		em.write(REPORT_ENTRIES, obj.Name, func(w io.Writer) error {
			return WriteEntries(w, obj)
		}),
		em.write(REPORT_EXTERNALS, obj.Name, func(w io.Writer) error {
			return WriteExternals(w, obj)
		}),
	}

	return errors.Join(errs...)
}
