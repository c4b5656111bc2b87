// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/config"
	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrTerminal = errors.New(f("refusing to write binary to a terminal; use -o or redirect"))
)

// ErrDefineSyntax is a --define argument without '='.
type ErrDefineSyntax string

func (err ErrDefineSyntax) Error() string {
	return f("define %v is not NAME=VALUE", string(err))
}

// ErrFailed reports how many source lines failed to assemble.
type ErrFailed int

func (err ErrFailed) Error() string {
	return f("%d errors", int(err))
}

type options struct {
	config  string
	output  string
	format  string
	symbols string
	verbose bool
	strict  bool
	jobs    int
	defines []string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "asm16 [flags] SOURCE",
		Short: "Assembler for the asm16 16-bit instruction set",
		Long: `asm16 assembles one source file into 16-bit machine words.

Labels are written '(0x1000)Name' and carry their own address. Operands
are registers (R0-R15), pointers (*R1), post-increment pointers (*R1+),
and absolute addresses (@Name or 0x1234). Text after ';' is a comment.
Use '-' as SOURCE to read standard input.

A line that fails to assemble is reported and left out of the output;
the remaining lines are still written and asm16 exits with status 1.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "Configuration file (.toml, .yaml or .yml)")
	flags.StringVarP(&opts.output, "output", "o", "-", "Output file")
	flags.StringVarP(&opts.format, "format", "f", asm.FORMAT_HEX, "Output format: "+strings.Join(asm.Formats(), ", "))
	flags.StringVar(&opts.symbols, "symbols", "", "Write the symbol table to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVar(&opts.strict, "strict", false, "Reject duplicate labels and unresolved jump displacements")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "Concurrent workers, 0 for one per CPU")
	flags.StringArrayVarP(&opts.defines, "define", "D", []string{}, "Predefine NAME=VALUE for $(...) expressions")

	return cmd
}

// settings merges the configuration file with the flags set on the command line.
func settings(cmd *cobra.Command, opts *options) (cfg *config.Config, err error) {
	cfg = config.Default()
	if len(opts.config) != 0 {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("symbols") {
		cfg.Symbols = opts.symbols
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("strict") {
		cfg.StrictLabels = opts.strict
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}

	for _, define := range opts.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			err = ErrDefineSyntax(define)
			return
		}
		if cfg.Define == nil {
			cfg.Define = map[string]any{}
		}
		cfg.Define[name] = value
	}

	err = cfg.Validate()
	return
}

// create opens a named output, where '-' is the command's standard output.
func create(cmd *cobra.Command, path string) (w io.Writer, closer func() error, err error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	return ouf, ouf.Close, nil
}

func run(cmd *cobra.Command, opts *options, source string) (err error) {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return
	}

	if len(cfg.Locale) != 0 {
		translate.SetLocales(cfg.Locale)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	assembler := &asm.Assembler{
		Verbose: cfg.Verbose,
		Strict:  cfg.StrictLabels,
		Jobs:    cfg.Jobs,
		Logger:  logger,
	}

	defines, err := cfg.Defines()
	if err != nil {
		return
	}
	for name, value := range defines {
		assembler.Predefine(name, value)
	}

	var input io.Reader = cmd.InOrStdin()
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	prog, err := assembler.Parse(input)
	var merr interface{ WrappedErrors() []error }
	if err != nil && !errors.As(err, &merr) {
		return
	}

	// Lines that failed are left out of the output, and the run still fails.
	var failed error
	if merr != nil {
		failed = ErrFailed(len(merr.WrappedErrors()))
	}

	out, closer, err := create(cmd, opts.output)
	if err != nil {
		return
	}
	defer func() {
		cerr := closer()
		if err == nil {
			err = cerr
		}
		if err == nil {
			err = failed
		}
	}()

	if cfg.Format == asm.FORMAT_BIN {
		if fi, ok := out.(*os.File); ok && term.IsTerminal(int(fi.Fd())) {
			err = ErrTerminal
			return
		}
	}

	err = prog.WriteFormat(out, cfg.Format)
	if err != nil {
		return
	}

	if len(cfg.Symbols) != 0 {
		var sym io.Writer
		var symCloser func() error
		sym, symCloser, err = create(cmd, cfg.Symbols)
		if err != nil {
			return
		}
		err = prog.WriteSymbols(sym)
		cerr := symCloser()
		if err == nil {
			err = cerr
		}
	}

	return
}

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err != nil {
		cmd.PrintErrln(cmd.ErrPrefix(), err)
		os.Exit(1)
	}
}
