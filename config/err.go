package config

import (
	"errors"
	"strings"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrExtension = errors.New(f("configuration file must be .toml, .yaml or .yml"))
	ErrJobs      = errors.New(f("jobs must not be negative"))
)

// ErrKeyUnknown lists configuration keys that have no meaning.
type ErrKeyUnknown []string

func (err ErrKeyUnknown) Error() string {
	return f("unknown configuration keys: %v", strings.Join(err, ", "))
}

// ErrFormat is an unsupported output format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("output format %v unknown", string(err))
}

// ErrLocale is a locale that is not a BCP 47 language tag.
type ErrLocale string

func (err ErrLocale) Error() string {
	return f("locale %v invalid", string(err))
}

// ErrDefine is a predefine whose value is neither an integer nor a string.
type ErrDefine string

func (err ErrDefine) Error() string {
	return f("define %v must be an integer or a string", string(err))
}
