package isa

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler parses assembly source for the 8-bit instruction set, one
// instruction per line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the scanned lines.
}

// parenEval does assemble-time $(...) evaluations. No names are
// predefined; these are constant expressions only.
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}

// foldExpressions replaces each $(...) in the line with the decimal
// value of the evaluated expression.
func foldExpressions(line string) (out string, err error) {
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	out = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	return
}

// splitLine splits a preprocessed line into its mnemonic and the
// ordered operand tokens. Operands separate on commas and whitespace;
// empty fragments are dropped.
func splitLine(line string) (mnemonic string, tokens []string) {
	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		mnemonic = line
		return
	}

	mnemonic = line[:cut]
	tokens = strings.FieldsFunc(line[cut:], func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return
}

// tokenCursor hands out operand tokens in the order the mnemonic's
// shape consumes them.
type tokenCursor struct {
	tokens []string
}

func (tc *tokenCursor) next() (token string, ok bool) {
	if len(tc.tokens) == 0 {
		return
	}
	token = tc.tokens[0]
	tc.tokens = tc.tokens[1:]
	return token, true
}

// getValue parses an immediate token to a wide intermediate, so that
// non-numeric text and out-of-range values stay distinct errors. An
// optional '#' prefix is stripped first.
func getValue(tc *tokenCursor) (value int32, err error) {
	token, ok := tc.next()
	if !ok {
		err = ErrImmediateMissing
		return
	}

	token = strings.TrimPrefix(token, "#")
	v64, perr := strconv.ParseInt(token, 10, 32)
	if perr != nil {
		err = ErrImmediateSyntax(token)
		return
	}

	value = int32(v64)
	return
}

func getImm5(tc *tokenCursor) (imm Imm5, err error) {
	value, err := getValue(tc)
	if err != nil {
		return
	}
	imm, ok := NewImm5(value)
	if !ok {
		err = ErrImmediateRange(value)
	}
	return
}

func getImm3(tc *tokenCursor) (imm Imm3, err error) {
	value, err := getValue(tc)
	if err != nil {
		return
	}
	imm, ok := NewImm3(value)
	if !ok {
		err = ErrImmediateRange(value)
	}
	return
}

func getImm4(tc *tokenCursor) (imm Imm4, err error) {
	value, err := getValue(tc)
	if err != nil {
		return
	}
	imm, ok := NewImm4(value)
	if !ok {
		err = ErrImmediateRange(value)
	}
	return
}

func getReg(tc *tokenCursor) (reg Reg, err error) {
	token, ok := tc.next()
	if !ok {
		err = ErrRegisterMissing
		return
	}

	reg, rerr := RegFromText(token)
	if rerr != nil {
		err = &ErrRegisterInvalid{Token: token, Err: rerr}
	}
	return
}

// parseLine parses one preprocessed, non-empty line into an
// instruction. Mnemonic matching is case-sensitive and exact.
func parseLine(line string) (op Op, err error) {
	mnemonic, tokens := splitLine(line)
	tc := &tokenCursor{tokens: tokens}

	switch mnemonic {
	case "BR":
		var off Imm5
		off, err = getImm5(tc)
		op = MakeBr(off)
	case "BRZ":
		var off Imm5
		off, err = getImm5(tc)
		op = MakeBrz(off)
	case "ADDI":
		var dst Reg
		var val Imm3
		dst, err = getReg(tc)
		if err == nil {
			val, err = getImm3(tc)
		}
		op = MakeAddi(dst, val)
	case "SUBI":
		var dst Reg
		var val Imm3
		dst, err = getReg(tc)
		if err == nil {
			val, err = getImm3(tc)
		}
		op = MakeSubi(dst, val)
	case "SR0":
		var sh Imm4
		sh, err = getImm4(tc)
		op = MakeSr0(sh)
	case "SRH0":
		var sh Imm4
		sh, err = getImm4(tc)
		op = MakeSrh0(sh)
	case "CLR":
		var dst Reg
		dst, err = getReg(tc)
		op = MakeClr(dst)
	case "MOV":
		var dst, src Reg
		dst, err = getReg(tc)
		if err == nil {
			src, err = getReg(tc)
		}
		op = MakeMov(dst, src)
	case "MOVA":
		var dst Reg
		dst, err = getReg(tc)
		op = MakeMova(dst)
	case "MOVR":
		var dst Reg
		dst, err = getReg(tc)
		op = MakeMovr(dst)
	case "MOVRHS":
		var dst Reg
		dst, err = getReg(tc)
		op = MakeMovrhs(dst)
	case "PAUSE":
		op = MakePause()
	default:
		err = ErrMnemonic(mnemonic)
		return
	}
	if err != nil {
		return
	}

	// Extra tokens report only after every operand slot succeeded.
	if extra, ok := tc.next(); ok {
		err = ErrExtraToken(extra)
	}
	return
}

// Parse parses an input stream into a Program. Errors are collected
// per line rather than aborting at the first, and any error suppresses
// Program construction entirely.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, errs []error) {
	scanner := bufio.NewScanner(input)

	var ops []Op
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line := strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		line, err := foldExpressions(line)
		if err == nil {
			var op Op
			op, err = parseLine(line)
			if err == nil {
				ops = append(ops, op)
				continue
			}
		}

		errs = append(errs, &ErrSyntax{LineNo: lineno, Line: line, Err: err})
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		prog = &Program{Ops: ops}
	}

	return
}
