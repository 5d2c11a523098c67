package isa

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeProgram(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0b000_001_00, // ADDI r0, 1
		0b100_11011,  // BR -5
		0b0100_0011,  // SR0 3
		0b0111_11_01, // MOV r3, r1
		0b11111111,   // PAUSE
	}

	prog, errs := DecodeProgram(bytes.NewReader(data))
	assert.Empty(errs)
	if prog == nil {
		t.Fatal("no program")
	}

	expected := []Op{
		MakeAddi(REG_R0, imm3(t, 1)),
		MakeBr(imm5(t, -5)),
		MakeSr0(imm4(t, 3)),
		MakeMov(REG_R3, REG_R1),
		MakePause(),
	}
	assert.Equal(expected, prog.Ops)
}

func TestDecodeProgramEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, errs := DecodeProgram(bytes.NewReader(nil))
	assert.Empty(errs)
	if prog == nil {
		t.Fatal("no program")
	}
	assert.Equal(0, len(prog.Ops))
}

func TestDecodeProgramErrors(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0b11111111,  // PAUSE
		0b11111110,  // invalid
		0b11001100,  // invalid
		0b011000_01, // CLR r1
	}

	prog, errs := DecodeProgram(bytes.NewReader(data))

	// Each bad byte reports its offset; no program is built.
	assert.Nil(prog)
	if !assert.Equal(2, len(errs)) {
		return
	}

	offsets := []int{1, 2}
	for n, err := range errs {
		var be *ErrBinary
		assert.True(errors.As(err, &be), err)
		assert.Equal(offsets[n], be.Offset, err)
		assert.ErrorIs(err, ErrOpcode(0), err)
	}
}
