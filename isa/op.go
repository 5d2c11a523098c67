package isa

import (
	"fmt"
)

// OpKind is the instruction variant tag.
type OpKind int

//go:generate go tool stringer -linecomment -type=OpKind
const (
	OP_BR     = OpKind(0)  // BR
	OP_BRZ    = OpKind(1)  // BRZ
	OP_ADDI   = OpKind(2)  // ADDI
	OP_SUBI   = OpKind(3)  // SUBI
	OP_SR0    = OpKind(4)  // SR0
	OP_SRH0   = OpKind(5)  // SRH0
	OP_CLR    = OpKind(6)  // CLR
	OP_MOV    = OpKind(7)  // MOV
	OP_MOVA   = OpKind(8)  // MOVA
	OP_MOVR   = OpKind(9)  // MOVR
	OP_MOVRHS = OpKind(10) // MOVRHS
	OP_PAUSE  = OpKind(11) // PAUSE
)

// Op is a single instruction. Operand fields a kind does not use stay
// at their zero values, so Op values compare with ==.
type Op struct {
	Kind OpKind
	Dst  Reg  // destination, or the sole register operand
	Src  Reg  // MOV source register
	Off  Imm5 // BR/BRZ offset
	Val  Imm3 // ADDI/SUBI immediate
	Sh   Imm4 // SR0/SRH0 shift count
}

// MakeBr creates a relative branch instruction.
func MakeBr(off Imm5) Op {
	return Op{Kind: OP_BR, Off: off}
}

// MakeBrz creates a branch-if-zero instruction.
func MakeBrz(off Imm5) Op {
	return Op{Kind: OP_BRZ, Off: off}
}

// MakeAddi creates an add-immediate instruction.
func MakeAddi(dst Reg, val Imm3) Op {
	return Op{Kind: OP_ADDI, Dst: dst, Val: val}
}

// MakeSubi creates a subtract-immediate instruction.
func MakeSubi(dst Reg, val Imm3) Op {
	return Op{Kind: OP_SUBI, Dst: dst, Val: val}
}

// MakeSr0 creates a shift-register load instruction.
func MakeSr0(sh Imm4) Op {
	return Op{Kind: OP_SR0, Sh: sh}
}

// MakeSrh0 creates a shift-register-high load instruction.
func MakeSrh0(sh Imm4) Op {
	return Op{Kind: OP_SRH0, Sh: sh}
}

// MakeClr creates a register clear instruction.
func MakeClr(dst Reg) Op {
	return Op{Kind: OP_CLR, Dst: dst}
}

// MakeMov creates a register-to-register move instruction.
func MakeMov(dst, src Reg) Op {
	return Op{Kind: OP_MOV, Dst: dst, Src: src}
}

// MakeMova creates a motor-A move instruction.
func MakeMova(dst Reg) Op {
	return Op{Kind: OP_MOVA, Dst: dst}
}

// MakeMovr creates a motor-R move instruction.
func MakeMovr(dst Reg) Op {
	return Op{Kind: OP_MOVR, Dst: dst}
}

// MakeMovrhs creates a motor-RHS move instruction.
func MakeMovrhs(dst Reg) Op {
	return Op{Kind: OP_MOVRHS, Dst: dst}
}

// MakePause creates the zero-operand pause instruction.
func MakePause() Op {
	return Op{Kind: OP_PAUSE}
}

// Binary packs the instruction into its 8-bit opcode: the kind's fixed
// prefix bits OR'd with each operand field in its designated position.
func (op Op) Binary() byte {
	switch op.Kind {
	case OP_BR:
		return 0x80 | byte(op.Off.Get())&0x1f
	case OP_BRZ:
		return 0xa0 | byte(op.Off.Get())&0x1f
	case OP_ADDI:
		return 0x00 | op.Val.Get()<<2 | byte(op.Dst)
	case OP_SUBI:
		return 0x20 | op.Val.Get()<<2 | byte(op.Dst)
	case OP_SR0:
		return 0x40 | op.Sh.Get()
	case OP_SRH0:
		return 0x50 | op.Sh.Get()
	case OP_CLR:
		return 0x60 | byte(op.Dst)
	case OP_MOV:
		return 0x70 | byte(op.Dst)<<2 | byte(op.Src)
	case OP_MOVA:
		return 0xc0 | byte(op.Dst)
	case OP_MOVR:
		return 0xc4 | byte(op.Dst)
	case OP_MOVRHS:
		return 0xc8 | byte(op.Dst)
	case OP_PAUSE:
		return 0xff
	}

	panic(fmt.Sprintf("unknown op kind %d", int(op.Kind)))
}

// DecodeOp decodes a raw opcode byte. The prefix masks partition the
// byte space, so at most one test can match; a byte matching none is
// an ErrOpcode.
func DecodeOp(opcode byte) (op Op, err error) {
	// Register fields are 2-bit extracts, so RegFromCode cannot fail
	// here; immediate fields are masked into range the same way.
	reg := func(raw byte) Reg {
		r, _ := RegFromCode(raw & 0x03)
		return r
	}

	switch {
	case opcode>>5 == 0b100:
		off, _ := NewImm5(int32(signExtend5(opcode & 0x1f)))
		op = MakeBr(off)
	case opcode>>5 == 0b101:
		off, _ := NewImm5(int32(signExtend5(opcode & 0x1f)))
		op = MakeBrz(off)
	case opcode>>5 == 0b000:
		val, _ := NewImm3(int32((opcode >> 2) & 0x07))
		op = MakeAddi(reg(opcode), val)
	case opcode>>5 == 0b001:
		val, _ := NewImm3(int32((opcode >> 2) & 0x07))
		op = MakeSubi(reg(opcode), val)
	case opcode>>4 == 0b0100:
		sh, _ := NewImm4(int32(opcode & 0x0f))
		op = MakeSr0(sh)
	case opcode>>4 == 0b0101:
		sh, _ := NewImm4(int32(opcode & 0x0f))
		op = MakeSrh0(sh)
	case opcode>>2 == 0b011000:
		op = MakeClr(reg(opcode))
	case opcode>>4 == 0b0111:
		op = MakeMov(reg(opcode>>2), reg(opcode))
	case opcode>>2 == 0b110000:
		op = MakeMova(reg(opcode))
	case opcode>>2 == 0b110001:
		op = MakeMovr(reg(opcode))
	case opcode>>2 == 0b110010:
		op = MakeMovrhs(reg(opcode))
	case opcode == 0xff:
		op = MakePause()
	default:
		err = ErrOpcode(opcode)
	}

	return
}

// String returns the canonical assembly form of the instruction, the
// form the assembler parses back to an equal Op.
func (op Op) String() string {
	switch op.Kind {
	case OP_BR, OP_BRZ:
		return fmt.Sprintf("%v %v", op.Kind, op.Off.Get())
	case OP_ADDI, OP_SUBI:
		return fmt.Sprintf("%v %v, %v", op.Kind, op.Dst, op.Val.Get())
	case OP_SR0, OP_SRH0:
		return fmt.Sprintf("%v %v", op.Kind, op.Sh.Get())
	case OP_CLR, OP_MOVA, OP_MOVR, OP_MOVRHS:
		return fmt.Sprintf("%v %v", op.Kind, op.Dst)
	case OP_MOV:
		return fmt.Sprintf("%v %v, %v", op.Kind, op.Dst, op.Src)
	default:
		return op.Kind.String()
	}
}
