package isa

import (
	"strconv"
	"strings"
)

// Reg is a general purpose register operand.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_R0 = Reg(0) // r0
	REG_R1 = Reg(1) // r1
	REG_R2 = Reg(2) // r2
	REG_R3 = Reg(3) // r3
)

// RegFromCode converts a numeric register code in [0,3] to a Reg.
func RegFromCode(code uint8) (reg Reg, err error) {
	if code > uint8(REG_R3) {
		err = ErrRegisterRange
		return
	}
	reg = Reg(code)
	return
}

// RegFromText parses the canonical 'r0'..'r3' register syntax. The
// missing prefix, non-numeric suffix, and out-of-range cases report
// distinct errors.
func RegFromText(text string) (reg Reg, err error) {
	number, found := strings.CutPrefix(text, "r")
	if !found {
		err = ErrRegisterPrefix
		return
	}

	code, perr := strconv.ParseUint(number, 10, 8)
	if perr != nil {
		err = ErrRegisterNumber
		return
	}

	return RegFromCode(uint8(code))
}
