// Package config holds the assembler settings loaded from YAML.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/asm24/cpu"
	"github.com/ezrec/asm24/translate"
)

var f = translate.From

var (
	ErrLimitNegative = errors.New(f("limits cannot be negative"))
)

// Config is the assembler configuration.
type Config struct {
	OutputDir   string `yaml:"output_dir"`   // Root of the report tree.
	Encoding    string `yaml:"encoding"`     // Object word rendering: hex, binary or base64.
	SymbolLimit int    `yaml:"symbol_limit"` // Symbols per file, 0 for no limit.
	MacroLimit  int    `yaml:"macro_limit"`  // Macros per file, 0 for no limit.
	Verbose     bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:   "output_files",
		Encoding:    cpu.ENCODING_HEX.String(),
		SymbolLimit: 1000,
	}
}

// Decode reads YAML over the defaults. Keys that are absent keep their
// default values.
func Decode(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}
	return
}

// Load reads a YAML configuration file.
func Load(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Validate checks the encoding name and the limits.
func (cfg *Config) Validate() (err error) {
	_, err = cfg.WordEncoding()
	if err != nil {
		return
	}

	if cfg.SymbolLimit < 0 || cfg.MacroLimit < 0 {
		err = ErrLimitNegative
	}
	return
}

// WordEncoding returns the configured word rendering.
func (cfg *Config) WordEncoding() (enc cpu.Encoding, err error) {
	return cpu.ParseEncoding(cfg.Encoding)
}
