package genome

/*
 * nanopond - Packed codon buffer
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

const (
	// Genome length in codons. Must be a multiple of the codons per word.
	Depth = 1024

	// Width of a storage word in bits.
	WordBits = 64

	// Codons held in one storage word.
	CodonsPerWord = WordBits / 4

	// Number of storage words in a genome.
	DepthWords = Depth / CodonsPerWord
)

// A genome is a fixed array of words holding 4-bit codons. The codon at
// shift s of a word occupies bits [s, s+4). Cursors into a genome advance
// the shift by 4 until the word width, then move to the next word.
type Genome [DepthWords]uint64

// Codon returns the codon at the given word and shift.
func (g *Genome) Codon(word, shift uint) uint8 {
	return uint8((g[word] >> shift) & 0xf)
}

// SetCodon overwrites the codon at the given word and shift.
func (g *Genome) SetCodon(word, shift uint, codon uint8) {
	g[word] &= ^(uint64(0xf) << shift)
	g[word] |= uint64(codon&0xf) << shift
}

// First returns the codon at word 0, shift 0. Interactions compare this
// codon against the actor's register guess.
func (g *Genome) First() uint8 {
	return uint8(g[0] & 0xf)
}

// FillOnes sets every codon to 0xf, the initial and "blank" pattern.
func (g *Genome) FillOnes() {
	for i := range g {
		g[i] = ^uint64(0)
	}
}

// Randomize fills the genome with words drawn from the given source.
func (g *Genome) Randomize(random func() uint64) {
	for i := range g {
		g[i] = random()
	}
}
