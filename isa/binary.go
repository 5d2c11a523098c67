package isa

import (
	"io"
)

// DecodeProgram decodes a raw opcode stream, one byte per instruction.
// Invalid opcodes are collected with their byte offsets rather than
// aborting at the first, and any error suppresses Program construction
// entirely.
func DecodeProgram(input io.Reader) (prog *Program, errs []error) {
	contents, err := io.ReadAll(input)
	if err != nil {
		errs = append(errs, err)
		return
	}

	ops := make([]Op, 0, len(contents))
	for offset, opcode := range contents {
		op, err := DecodeOp(opcode)
		if err != nil {
			errs = append(errs, &ErrBinary{Offset: offset, Err: err})
			continue
		}
		ops = append(ops, op)
	}

	if len(errs) == 0 {
		prog = &Program{Ops: ops}
	}

	return
}
