/*
 * nanopond - Genome buffer test cases.
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

package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Depth must stay a multiple of the codons in one word.
func TestDepthAligned(t *testing.T) {
	assert.Zero(t, Depth%CodonsPerWord)
	assert.Equal(t, Depth/CodonsPerWord, DepthWords)
}

// A write followed by a read at the same spot returns the value.
func TestSetGetCodon(t *testing.T) {
	var g Genome
	g.FillOnes()

	for word := uint(0); word < DepthWords; word += 7 {
		for shift := uint(0); shift < WordBits; shift += 4 {
			codon := uint8((word + shift) & 0xf)
			g.SetCodon(word, shift, codon)
			assert.Equal(t, codon, g.Codon(word, shift))
		}
	}
}

// A write touches only its own codon.
func TestSetCodonIsolated(t *testing.T) {
	var g Genome
	g.FillOnes()

	g.SetCodon(3, 24, 0x5)
	assert.Equal(t, uint8(0x5), g.Codon(3, 24))
	assert.Equal(t, uint8(0xf), g.Codon(3, 20))
	assert.Equal(t, uint8(0xf), g.Codon(3, 28))
	assert.Equal(t, ^uint64(0), g[2])
	assert.Equal(t, ^uint64(0), g[4])
}

func TestFillOnes(t *testing.T) {
	var g Genome
	g[0] = 0x1234
	g.FillOnes()
	for i := range g {
		assert.Equal(t, ^uint64(0), g[i])
	}
}

func TestFirst(t *testing.T) {
	var g Genome
	g.FillOnes()
	assert.Equal(t, uint8(0xf), g.First())
	g.SetCodon(0, 0, 0x3)
	assert.Equal(t, uint8(0x3), g.First())
}

// Randomize pulls one word per storage word from the source.
func TestRandomize(t *testing.T) {
	var g Genome
	next := uint64(0)
	g.Randomize(func() uint64 {
		next++
		return next
	})
	assert.Equal(t, uint64(1), g[0])
	assert.Equal(t, uint64(DepthWords), g[DepthWords-1])
}
