// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/ezrec/asm24/asm"
	"github.com/ezrec/asm24/config"
	asm_io "github.com/ezrec/asm24/io"
	"github.com/ezrec/asm24/translate"
)

const VERSION = "2025A"

// runner assembles files one at a time with shared settings.
type runner struct {
	asm     *asm.Assembler
	emitter *asm_io.Emitter
	symbols bool // Print the symbol table of each assembled file.

	stdout io.Writer
	stderr io.Writer
}

// report prints every diagnostic in err, one per line.
func (r *runner) report(err error) {
	fmt.Fprintln(r.stderr, err)
}

// printSymbols renders the symbol table of obj.
func (r *runner) printSymbols(obj *asm.Object) {
	tw := table.NewWriter()
	tw.SetTitle(obj.Name)
	tw.AppendHeader(table.Row{f("Symbol"), f("Value"), f("Kind"), f("Entry")})
	for sym := range obj.Symbols.All() {
		tw.AppendRow(table.Row{sym.Name, fmt.Sprintf("%04d", sym.Value), sym.Kind, sym.Entry})
	}
	fmt.Fprintln(r.stdout, tw.Render())
}

// process assembles one source file and writes its reports.
func (r *runner) process(filename string) (ok bool) {
	translate.Fprintf(r.stdout, "Processing file: %v\n", filename)
	defer func() {
		if ok {
			translate.Fprintf(r.stdout, "Finished: %v\n", filename)
		} else {
			translate.Fprintf(r.stdout, "Error processing file: %v\n", filename)
		}
	}()

	inf, err := os.Open(filename)
	if err != nil {
		r.report(&asm.ErrLine{Category: asm.CATEGORY_FILE, File: filename, Err: err})
		return
	}
	defer inf.Close()

	obj, err := r.asm.Assemble(filename, inf)
	if obj != nil {
		werr := r.emitter.WriteExpanded(filename, obj.Expanded)
		if werr != nil {
			r.report(werr)
			return
		}
	}
	if err != nil {
		r.report(err)
		return
	}

	err = r.emitter.Emit(obj)
	if err != nil {
		r.report(err)
		return
	}

	if r.symbols {
		r.printSymbols(obj)
	}

	ok = true
	return
}

// run processes every file, returning the number that failed.
func (r *runner) run(filenames []string) (failed int) {
	for _, filename := range filenames {
		if !r.process(filename) {
			failed++
		}
	}
	return
}

var f = translate.From

func main() {
	var config_file string
	var output string
	var encoding string
	var verbose bool
	var symbols bool
	var version bool

	flag.Usage = func() {
		translate.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] file.as ...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&config_file, "config", "", "YAML configuration file")
	flag.StringVar(&output, "o", "", "Output directory")
	flag.StringVar(&encoding, "encoding", "", "Object word encoding: hex, binary or base64")
	flag.BoolVar(&verbose, "verbose", false, "Verbose mode")
	flag.BoolVar(&symbols, "symbols", false, "Print the symbol table of each file")
	flag.BoolVar(&version, "v", false, "Print the version and exit")
	flag.BoolVar(&version, "version", false, "Print the version and exit")

	flag.Parse()

	if version {
		translate.Fprintf(os.Stdout, "%v version %v\n", os.Args[0], VERSION)
		atexit.Exit(0)
	}

	if flag.NArg() == 0 {
		translate.Fprintf(os.Stderr, "No input files provided.\n")
		flag.Usage()
		atexit.Exit(1)
	}

	cfg := config.Default()
	if len(config_file) != 0 {
		var err error
		cfg, err = config.Load(config_file)
		if err != nil {
			log.Fatalf("%v: %v", config_file, err)
		}
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			cfg.OutputDir = output
		case "encoding":
			cfg.Encoding = encoding
		case "verbose":
			cfg.Verbose = verbose
		}
	})

	err := cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	enc, _ := cfg.WordEncoding()

	r := &runner{
		asm: &asm.Assembler{
			Verbose:     cfg.Verbose,
			SymbolLimit: cfg.SymbolLimit,
			MacroLimit:  cfg.MacroLimit,
		},
		emitter: &asm_io.Emitter{
			FS:       asm_io.DirFS(cfg.OutputDir),
			Encoding: enc,
		},
		symbols: symbols,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	err = os.MkdirAll(cfg.OutputDir, 0755)
	if err != nil {
		log.Fatalf("%v: %v", cfg.OutputDir, err)
	}

	if r.run(flag.Args()) != 0 {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
