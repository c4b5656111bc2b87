package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, text string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.Validate())
	assert.Equal("hex", cfg.Format)
	assert.Equal(0, cfg.Jobs)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	expected := &Config{
		Verbose:      true,
		StrictLabels: true,
		Jobs:         4,
		Format:       "listing",
		Locale:       "fr-FR",
		Symbols:      "out.sym",
	}
	defines := map[string]string{"BASE": "16384", "NAME": "demo"}

	table := [...]struct {
		name string
		text string
	}{
		{"asm16.toml", `
verbose = true
strict_labels = true
jobs = 4
format = "listing"
locale = "fr-FR"
symbols = "out.sym"

[define]
BASE = 0x4000
NAME = "demo"
`},
		{"asm16.yaml", `
verbose: true
strict_labels: true
jobs: 4
format: listing
locale: fr-FR
symbols: out.sym
define:
  BASE: 0x4000
  NAME: demo
`},
	}

	for _, entry := range table {
		cfg, err := Load(writeFile(t, entry.name, entry.text))
		if !assert.NoError(err, entry.name) {
			continue
		}

		got, err := cfg.Defines()
		assert.NoError(err, entry.name)
		assert.Equal(defines, got, entry.name)

		cfg.Define = nil
		assert.Equal(expected, cfg, entry.name)
	}
}

func TestLoadPartial(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(writeFile(t, "asm16.yml", "jobs: 2\n"))
	assert.NoError(err)
	assert.Equal("hex", cfg.Format)
	assert.Equal(2, cfg.Jobs)

	cfg, err = Load(writeFile(t, "empty.yaml", ""))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoadError(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(writeFile(t, "asm16.toml", "verbose = true\ncolour = \"red\"\n"))
	var ek ErrKeyUnknown
	if assert.True(errors.As(err, &ek)) {
		assert.Equal(ErrKeyUnknown{"colour"}, ek)
	}

	_, err = Load(writeFile(t, "asm16.yaml", "colour: red\n"))
	assert.Error(err)

	_, err = Load(writeFile(t, "asm16.json", "{}"))
	assert.ErrorIs(err, ErrExtension)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	_, err = Load(writeFile(t, "asm16.toml", "format = \"srec\"\n"))
	assert.ErrorIs(err, ErrFormat("srec"))

	_, err = Load(writeFile(t, "asm16.toml", "jobs = -1\n"))
	assert.ErrorIs(err, ErrJobs)

	_, err = Load(writeFile(t, "asm16.toml", "locale = \"not a locale\"\n"))
	assert.ErrorIs(err, ErrLocale("not a locale"))

	_, err = Load(writeFile(t, "asm16.toml", "[define]\nPI = 3.14\n"))
	assert.ErrorIs(err, ErrDefine("PI"))
}
