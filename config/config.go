// Package config loads asm16 settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/asm16/asm"
)

// Config holds the settings of an assembly run.
type Config struct {
	Verbose      bool           `toml:"verbose" yaml:"verbose"`             // Log each assembled line.
	StrictLabels bool           `toml:"strict_labels" yaml:"strict_labels"` // Reject duplicate labels.
	Jobs         int            `toml:"jobs" yaml:"jobs"`                   // Second pass workers, 0 for one per CPU.
	Format       string         `toml:"format" yaml:"format"`               // Output format.
	Locale       string         `toml:"locale" yaml:"locale"`               // Message language, empty to detect.
	Symbols      string         `toml:"symbols" yaml:"symbols"`             // Symbol listing path, empty for none.
	Define       map[string]any `toml:"define" yaml:"define"`               // Predefines for $(...) expressions.
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Format: asm.FORMAT_HEX,
	}
}

// Load reads a configuration file over the defaults. The decoder is chosen
// by the file extension, and keys the Config does not have are rejected.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var md toml.MetaData
		md, err = toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make(ErrKeyUnknown, len(undecoded))
			for n, key := range undecoded {
				keys[n] = key.String()
			}
			return nil, keys
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrExtension
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return
}

// Validate checks the settings for values the assembler cannot use.
func (cfg *Config) Validate() (err error) {
	if cfg.Jobs < 0 {
		return ErrJobs
	}

	if !slices.Contains(asm.Formats(), cfg.Format) {
		return ErrFormat(cfg.Format)
	}

	if len(cfg.Locale) != 0 {
		_, err = language.Parse(cfg.Locale)
		if err != nil {
			return ErrLocale(cfg.Locale)
		}
	}

	_, err = cfg.Defines()
	return
}

// Defines returns the predefines as text, integers in decimal.
func (cfg *Config) Defines() (defines map[string]string, err error) {
	defines = make(map[string]string, len(cfg.Define))
	for name, value := range cfg.Define {
		switch value := value.(type) {
		case string:
			defines[name] = value
		case int:
			defines[name] = strconv.Itoa(value)
		case int64:
			defines[name] = strconv.FormatInt(value, 10)
		case uint64:
			defines[name] = strconv.FormatUint(value, 10)
		default:
			return nil, ErrDefine(name)
		}
	}

	return
}
