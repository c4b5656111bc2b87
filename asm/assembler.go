// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/parser"
)

// Assembler is a two pass assembler. The first pass collects labels, the
// second parses and encodes every instruction line against them.
type Assembler struct {
	Verbose bool               // If set, logs each assembled line.
	Strict  bool               // If set, duplicate labels and unresolved jumps are errors.
	Jobs    int                // Concurrent second pass workers. Defaults to GOMAXPROCS.
	Logger  logrus.FieldLogger // Diagnostic stream. Defaults to the logrus standard logger.

	Symbols isa.SymbolTable // Labels found by the last Parse.

	predefine map[string]string // Predefines
}

// Predefine defines a name visible to $(...) expressions, or redefines it.
// Integer values are visible as integers, anything else as a string.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

func (asm *Assembler) logger() logrus.FieldLogger {
	if asm.Logger == nil {
		return logrus.StandardLogger()
	}
	return asm.Logger
}

func (asm *Assembler) jobs() int {
	if asm.Jobs < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return asm.Jobs
}

// uncomment removes a ';' comment and surrounding blanks from a line.
func uncomment(text string) string {
	line, _, _ := strings.Cut(text, ";")
	return strings.TrimSpace(line)
}

// ScanLabels builds the symbol table from the label lines of a source.
// A later definition of a label replaces an earlier one.
func ScanLabels(lines []string) isa.SymbolTable {
	symbols, _ := (&Assembler{}).ScanLabels(lines)
	return symbols
}

// ScanLabels builds the symbol table from the label lines of a source.
//
// Lines that are not labels are logged at debug level and skipped. A
// duplicate label replaces the earlier definition with a warning, or when
// Strict is set keeps the first definition and reports ErrLabelDuplicate.
func (asm *Assembler) ScanLabels(lines []string) (symbols isa.SymbolTable, err error) {
	var errs *multierror.Error

	symbols = isa.SymbolTable{}
	for n, text := range lines {
		lineno := n + 1
		line := uncomment(text)
		if len(line) == 0 {
			continue
		}

		lbl, perr := parser.ParseLabel(line)
		if perr != nil {
			asm.logger().WithField("line", lineno).Debugf("not a label: %v", perr)
			continue
		}

		if addr, ok := symbols[lbl.Name]; ok {
			if asm.Strict {
				errs = multierror.Append(errs, ErrSyntax{LineNo: lineno, Line: line, Err: ErrLabelDuplicate})
				continue
			}
			asm.logger().WithFields(logrus.Fields{
				"line":     lineno,
				"label":    lbl.Name,
				"previous": fmt.Sprintf("%#04x", addr),
			}).Warn(f("label %v redefined", lbl.Name))
		}

		symbols[lbl.Name] = lbl.Address
	}

	err = errs.ErrorOrNil()
	return
}

// environment returns the values visible to $(...) expressions: every
// predefine, then every label.
func (asm *Assembler) environment(symbols isa.SymbolTable) (env starlark.StringDict) {
	env = starlark.StringDict{}
	for name, str := range asm.predefine {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			env[name] = starlark.String(str)
			continue
		}
		env[name] = starlark.MakeInt64(value)
	}

	for name, addr := range symbols {
		env[name] = starlark.MakeInt(int(addr))
	}

	env.Freeze()
	return
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string, env starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, env)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// expand replaces each $(...) in a line with its value as hex text.
func expand(line string, env starlark.StringDict) (expanded string, err error) {
	expanded = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2:len(str)-1], env)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		if value < 0 {
			return fmt.Sprintf("-0x%x", -value)
		}
		return fmt.Sprintf("0x%x", value)
	})
	return
}

// assembleLine parses and encodes one source line. Blank, comment and label
// lines produce no opcode.
func (asm *Assembler) assembleLine(lineno int, text string, symbols isa.SymbolTable, env starlark.StringDict) (op *Opcode, err error) {
	line := uncomment(text)
	if len(line) == 0 {
		return
	}

	defer func() {
		if err != nil {
			op = nil
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if _, lerr := parser.ParseLabel(line); lerr == nil {
		return
	}

	expanded, err := expand(line, env)
	if err != nil {
		return
	}

	inst, err := parser.ParseLine(expanded)
	if err != nil {
		return
	}

	codes, err := isa.Encode(inst, symbols)
	if err != nil {
		return
	}

	op = &Opcode{
		LineNo:      lineno,
		Line:        line,
		Instruction: inst,
		Codes:       codes,
	}
	return
}

// checkRelative reports a Format VI displacement that encoded as zero
// because it has no literal value. It is a warning, or an error when Strict
// is set.
func (asm *Assembler) checkRelative(op *Opcode) (err error) {
	vi, ok := op.Instruction.(isa.InstructionVI)
	if !ok {
		return
	}

	_, err = isa.ResolveRelative(vi.Displacement)
	if err == nil {
		return
	}

	if asm.Strict {
		return ErrSyntax{LineNo: op.LineNo, Line: op.Line, Err: err}
	}

	asm.logger().WithField("line", op.LineNo).Warn(err)
	return nil
}

// Assemble assembles source lines into a Program.
//
// A line that fails to assemble is reported and left out of the program;
// every other line is still assembled. The returned error aggregates the
// failure of every such line as ErrSyntax values, and the returned Program
// holds the lines that succeeded.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	var errs *multierror.Error

	symbols, err := asm.ScanLabels(lines)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	asm.Symbols = symbols

	env := asm.environment(symbols)

	type result struct {
		op  *Opcode
		err error
	}
	results := make([]result, len(lines))

	var group errgroup.Group
	group.SetLimit(asm.jobs())
	for n, text := range lines {
		group.Go(func() error {
			op, err := asm.assembleLine(n+1, text, symbols, env)
			results[n] = result{op: op, err: err}
			return nil
		})
	}
	_ = group.Wait()

	prog = &Program{Symbols: symbols}
	offset := 0
	for n, res := range results {
		if res.err == nil && res.op != nil {
			res.err = asm.checkRelative(res.op)
		}
		if res.err != nil {
			asm.logger().WithField("line", n+1).Error(res.err)
			errs = multierror.Append(errs, res.err)
			continue
		}
		if res.op == nil {
			continue
		}
		if asm.Verbose {
			asm.logger().WithField("line", res.op.LineNo).Info(res.op.Line)
		}
		res.op.Offset = offset
		offset += len(res.op.Codes)
		prog.Opcodes = append(prog.Opcodes, *res.op)
	}

	err = errs.ErrorOrNil()
	return
}

// Parse reads a source stream and assembles it into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}
