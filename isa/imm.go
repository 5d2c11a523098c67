package isa

// Bounded immediate operand types. Each keeps its value behind an
// unexported field, so the range-checked constructors are the only way
// to build one; the decoder and the assembler share the same path.

// Imm5 is the signed 5-bit branch offset operand.
type Imm5 struct {
	value int8
}

// Imm3 is the unsigned 3-bit ADDI/SUBI operand.
type Imm3 struct {
	value uint8
}

// Imm4 is the unsigned 4-bit shift count operand.
type Imm4 struct {
	value uint8
}

// signedRange returns the inclusive bounds of a signed n-bit field.
func signedRange(n uint) (min, max int32) {
	return -(1 << (n - 1)), 1<<(n-1) - 1
}

// unsignedRange returns the inclusive bounds of an unsigned n-bit field.
func unsignedRange(n uint) (min, max int32) {
	return 0, 1<<n - 1
}

// NewImm5 constructs a signed 5-bit immediate, if value is in range.
func NewImm5(value int32) (imm Imm5, ok bool) {
	min, max := signedRange(5)
	if value < min || value > max {
		return
	}
	return Imm5{value: int8(value)}, true
}

// NewImm3 constructs an unsigned 3-bit immediate, if value is in range.
func NewImm3(value int32) (imm Imm3, ok bool) {
	min, max := unsignedRange(3)
	if value < min || value > max {
		return
	}
	return Imm3{value: uint8(value)}, true
}

// NewImm4 constructs an unsigned 4-bit immediate, if value is in range.
func NewImm4(value int32) (imm Imm4, ok bool) {
	min, max := unsignedRange(4)
	if value < min || value > max {
		return
	}
	return Imm4{value: uint8(value)}, true
}

// Get returns the branch offset.
func (imm Imm5) Get() int8 {
	return imm.value
}

// Get returns the 3-bit value.
func (imm Imm3) Get() uint8 {
	return imm.value
}

// Get returns the shift count.
func (imm Imm4) Get() uint8 {
	return imm.value
}

// signExtend5 widens a raw 5-bit field to an int8 by replicating bit 4
// into bits 5-7.
func signExtend5(raw uint8) int8 {
	raw &= 0x1f
	if raw&0x10 != 0 {
		raw |= 0xe0
	}
	return int8(raw)
}
