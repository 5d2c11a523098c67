package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegFromCode(t *testing.T) {
	assert := assert.New(t)

	for code := uint8(0); code <= 3; code++ {
		reg, err := RegFromCode(code)
		assert.NoError(err, code)
		assert.Equal(Reg(code), reg, code)
	}

	for _, code := range []uint8{4, 5, 20, 255} {
		_, err := RegFromCode(code)
		assert.ErrorIs(err, ErrRegisterRange, code)
	}
}

func TestRegFromText(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		reg  Reg
		err  error
	}{
		{"r0", REG_R0, nil},
		{"r1", REG_R1, nil},
		{"r2", REG_R2, nil},
		{"r3", REG_R3, nil},
		{"x0", 0, ErrRegisterPrefix},
		{"0", 0, ErrRegisterPrefix},
		{"", 0, ErrRegisterPrefix},
		{"r", 0, ErrRegisterNumber},
		{"ra", 0, ErrRegisterNumber},
		{"r3r2", 0, ErrRegisterNumber},
		{"r-1", 0, ErrRegisterNumber},
		{"r4", 0, ErrRegisterRange},
		{"r10", 0, ErrRegisterRange},
	}

	for _, entry := range table {
		reg, err := RegFromText(entry.text)
		if entry.err == nil {
			assert.NoError(err, entry.text)
			assert.Equal(entry.reg, reg, entry.text)
		} else {
			assert.ErrorIs(err, entry.err, entry.text)
		}
	}
}

func TestRegString(t *testing.T) {
	assert := assert.New(t)

	// The text form is lossless: it parses back to the same register.
	for _, reg := range []Reg{REG_R0, REG_R1, REG_R2, REG_R3} {
		back, err := RegFromText(reg.String())
		assert.NoError(err, reg)
		assert.Equal(reg, back, reg)
	}

	assert.Equal("r2", REG_R2.String())
}
