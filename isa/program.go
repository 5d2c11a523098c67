package isa

import (
	"fmt"
	"iter"
	"strings"
)

// Memory image geometry for the memory initialization output.
const (
	MIF_WIDTH = 8
	MIF_DEPTH = 256
)

// Program is an ordered instruction sequence; the order is execution
// order.
type Program struct {
	Ops []Op
}

// Codes iterates the program's instructions with their addresses.
func (prog *Program) Codes() iter.Seq2[int, Op] {
	return func(yield func(addr int, op Op) bool) {
		for n, op := range prog.Ops {
			if !yield(n, op) {
				return
			}
		}
	}
}

// Text renders the canonical assembly form, one instruction per line.
// The assembler parses it back with identical semantics.
func (prog *Program) Text() string {
	lines := make([]string, 0, len(prog.Ops))
	for _, op := range prog.Ops {
		lines = append(lines, op.String())
	}

	return strings.Join(lines, "\n")
}

// Binary packs the program into one opcode byte per instruction.
func (prog *Program) Binary() (bins []byte) {
	for _, op := range prog.Codes() {
		bins = append(bins, op.Binary())
	}

	return
}

// Mif renders a memory initialization file preloading a 256 word by
// 8 bit memory: instruction n at address n, zeros above the program.
// A program longer than the memory is an error, not a truncation.
func (prog *Program) Mif() (out string, err error) {
	if len(prog.Ops) > MIF_DEPTH {
		err = ErrProgramTooLong
		return
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "WIDTH=%d;\n", MIF_WIDTH)
	fmt.Fprintf(&sb, "DEPTH=%d;\n", MIF_DEPTH)
	fmt.Fprintf(&sb, "\n")
	fmt.Fprintf(&sb, "ADDRESS_RADIX=UNS;\n")
	fmt.Fprintf(&sb, "DATA_RADIX=BIN;\n")
	fmt.Fprintf(&sb, "\n")
	fmt.Fprintf(&sb, "CONTENT BEGIN\n")

	for addr, op := range prog.Codes() {
		fmt.Fprintf(&sb, "\t%d\t:\t%08b;\n", addr, op.Binary())
	}

	// Zero fill for the unused address range, as a point or a span.
	switch len(prog.Ops) {
	case MIF_DEPTH:
	case MIF_DEPTH - 1:
		fmt.Fprintf(&sb, "\t%d\t:\t%08b;\n", MIF_DEPTH-1, 0)
	default:
		fmt.Fprintf(&sb, "\t[%d..%d]\t:\t%08b;\n", len(prog.Ops), MIF_DEPTH-1, 0)
	}

	fmt.Fprintf(&sb, "END;\n")

	out = sb.String()
	return
}
