package vm

/*
 * nanopond - VM definitions
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

import "fmt"

const (
	// Codon opcode definitions.
	OpZero   = 0x0 // Clear register, pointer and facing
	OpFwd    = 0x1 // Advance data pointer one codon
	OpBack   = 0x2 // Move data pointer back one codon
	OpInc    = 0x3 // Increment register
	OpDec    = 0x4 // Decrement register
	OpReadG  = 0x5 // Read codon at pointer from genome
	OpWriteG = 0x6 // Write register to genome at pointer
	OpReadB  = 0x7 // Read codon at pointer from output buffer
	OpWriteB = 0x8 // Write register to output buffer at pointer
	OpLoop   = 0x9 // Begin loop if register nonzero
	OpRep    = 0xa // Repeat loop if register nonzero
	OpTurn   = 0xb // Set facing from register
	OpXchg   = 0xc // Exchange register with next codon
	OpKill   = 0xd // Attempt to kill facing neighbor
	OpShare  = 0xe // Attempt to share energy with facing neighbor
	OpStop   = 0xf // End execution

	// Execution begins past the reserved logo codon at word 0, bit 0.
	ExecStartWord = 0
	ExecStartBit  = 4
)

// Default interaction and mutation parameters.
const (
	DefaultMutationRate      = 5000 // Per-fetch probability over 2^32
	DefaultFailedKillPenalty = 3    // Self energy divisor on failed kill
)

// Codon mnemonics, indexed by opcode.
var mnemonics = [16]string{
	"ZERO", "FWD", "BACK", "INC", "DEC", "READG", "WRITEG", "READB",
	"WRITEB", "LOOP", "REP", "TURN", "XCHG", "KILL", "SHARE", "STOP",
}

// Number of bits set in a 4-bit value. Used by the interaction gate.
var popCount4 = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

var (
	mutationRate      uint32 = DefaultMutationRate
	failedKillPenalty uint64 = DefaultFailedKillPenalty
)

// Mnemonic returns the name of a codon opcode.
func Mnemonic(codon uint8) string {
	return mnemonics[codon&0xf]
}

// SetMutationRate sets the per-fetch mutation probability numerator
// over 2^32.
func SetMutationRate(rate uint32) {
	mutationRate = rate
}

// SetFailedKillPenalty sets the divisor applied to the actor's energy
// when a kill of a viable cell is denied.
func SetFailedKillPenalty(penalty uint64) error {
	if penalty == 0 {
		return fmt.Errorf("failed kill penalty can't be zero")
	}
	failedKillPenalty = penalty
	return nil
}
