package isa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pauses(count int) []Op {
	ops := make([]Op, count)
	for n := range ops {
		ops[n] = MakePause()
	}
	return ops
}

func TestProgramText(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Ops: []Op{
			MakeAddi(REG_R3, imm3(t, 7)),
			MakeMov(REG_R3, REG_R2),
			MakeBr(imm5(t, -14)),
			MakePause(),
		},
	}

	text := prog.Text()
	assert.Equal("ADDI r3, 7\nMOV r3, r2\nBR -14\nPAUSE", text)

	// The canonical text re-reads with identical semantics.
	asm := &Assembler{}
	back, errs := asm.Parse(strings.NewReader(text))
	assert.Empty(errs)
	if back == nil {
		t.Fatal("no program")
	}
	assert.Equal(prog.Ops, back.Ops)
}

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Ops: []Op{
			MakeAddi(REG_R0, imm3(t, 1)),
			MakeSrh0(imm4(t, 9)),
			MakePause(),
		},
	}

	expected := []byte{0b000_001_00, 0b0101_1001, 0b11111111}
	assert.Equal(expected, prog.Binary())
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Ops: []Op{
			MakeClr(REG_R0),
			MakeMova(REG_R1),
		},
	}

	var addrs []int
	for addr, op := range prog.Codes() {
		assert.Equal(prog.Ops[addr], op)
		addrs = append(addrs, addr)
	}
	assert.Equal([]int{0, 1}, addrs)
}

func TestProgramMif(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Ops: []Op{
			MakeAddi(REG_R0, imm3(t, 1)),
			MakePause(),
		},
	}

	out, err := prog.Mif()
	assert.NoError(err)

	expected := strings.Join([]string{
		"WIDTH=8;",
		"DEPTH=256;",
		"",
		"ADDRESS_RADIX=UNS;",
		"DATA_RADIX=BIN;",
		"",
		"CONTENT BEGIN",
		"\t0\t:\t00000100;",
		"\t1\t:\t11111111;",
		"\t[2..255]\t:\t00000000;",
		"END;",
		"",
	}, "\n")
	assert.Equal(expected, out)
}

func TestProgramMifFill(t *testing.T) {
	assert := assert.New(t)

	// One address remaining: a single point, not a range.
	prog := &Program{Ops: pauses(255)}
	out, err := prog.Mif()
	assert.NoError(err)
	assert.Contains(out, "\t254\t:\t11111111;\n")
	assert.Contains(out, "\t255\t:\t00000000;\n")
	assert.NotContains(out, "[")

	// Exactly full: no fill line at all.
	prog = &Program{Ops: pauses(256)}
	out, err = prog.Mif()
	assert.NoError(err)
	assert.Contains(out, "\t255\t:\t11111111;\n")
	assert.NotContains(out, "00000000")
	assert.NotContains(out, "[")
}

func TestProgramMifTooLong(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Ops: pauses(257)}
	out, err := prog.Mif()
	assert.ErrorIs(err, ErrProgramTooLong)
	assert.Equal("", out)
}
