// Package isa models a small fixed 8-bit instruction set and
// translates programs between three representations: line-oriented
// assembly text, a one-byte-per-instruction binary encoding, and the
// memory initialization text format used to preload hardware
// simulators.
//
// The instruction set is closed at twelve variants. Each variant owns
// a disjoint masked region of the 256-value opcode space, so every
// encodable instruction decodes back to itself and every byte either
// decodes uniquely or is invalid.
package isa
