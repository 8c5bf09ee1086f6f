package vm

/*
 * nanopond - Genome disassembler
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

import (
	"fmt"
	"strings"

	"github.com/rountree/npcc/sim/genome"
)

var hexMap = "0123456789abcdef"

// DumpHex renders a genome as one hex digit per codon, in execution
// order.
func DumpHex(g *genome.Genome) string {
	var str strings.Builder
	for word := uint(0); word < genome.DepthWords; word++ {
		for shift := uint(0); shift < genome.WordBits; shift += 4 {
			str.WriteByte(hexMap[g.Codon(word, shift)])
		}
	}
	return str.String()
}

// Disassemble renders a genome as mnemonic listing lines, one storage
// word per line, prefixed with the codon index.
func Disassemble(g *genome.Genome) []string {
	lines := make([]string, 0, genome.DepthWords)
	for word := uint(0); word < genome.DepthWords; word++ {
		var str strings.Builder
		fmt.Fprintf(&str, "%04x:", word*genome.CodonsPerWord)
		for shift := uint(0); shift < genome.WordBits; shift += 4 {
			str.WriteByte(' ')
			str.WriteString(Mnemonic(g.Codon(word, shift)))
		}
		lines = append(lines, str.String())
	}
	return lines
}
