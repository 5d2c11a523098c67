package isa

import (
	"errors"

	"github.com/BlakeFreer/asp/translate"
)

var f = translate.From

var (
	// Register codec errors
	ErrRegisterPrefix = errors.New(f("register prefix missing"))
	ErrRegisterNumber = errors.New(f("register number invalid"))
	ErrRegisterRange  = errors.New(f("register out of range"))

	// Assembler errors
	ErrImmediateMissing = errors.New(f("immediate missing"))
	ErrRegisterMissing  = errors.New(f("register missing"))

	// Serializer errors
	ErrProgramTooLong = errors.New(f("program exceeds memory depth"))
)

type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("invalid mnemonic '%v'", string(err))
}

type ErrImmediateSyntax string

func (err ErrImmediateSyntax) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrImmediateRange int32

func (err ErrImmediateRange) Error() string {
	return f("immediate %v is out of range", int32(err))
}

type ErrExtraToken string

func (err ErrExtraToken) Error() string {
	return f("unexpected token '%v'", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRegisterInvalid wraps one of the register codec errors with the
// offending operand token.
type ErrRegisterInvalid struct {
	Token string
	Err   error
}

func (err ErrRegisterInvalid) Error() string {
	return f("invalid register '%v' (%v)", err.Token, err.Err)
}

func (err ErrRegisterInvalid) Unwrap() error {
	return err.Err
}

type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("invalid opcode %08b", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax tags an assembly error with its 1-based source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrBinary tags a decode error with its 0-based byte offset.
type ErrBinary struct {
	Offset int
	Err    error
}

func (err ErrBinary) Error() string {
	return f("byte 0x%04x %v", err.Offset, err.Err)
}

func (err ErrBinary) Unwrap() error {
	return err.Err
}
