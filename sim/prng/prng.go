package prng

/*
 * nanopond - Pseudo random number generator
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
	"math/rand"
)

// xorshift+ generator. State is process wide; the scheduler is the only
// caller during simulation, so no locking is done.
var state [2]uint64

// Seed the generator. The first state word is the seed itself, the second
// comes from a stdlib generator seeded in lockstep so the whole stream is
// deterministic given the seed.
func Seed(seed uint64) {
	state[0] = seed
	second := rand.New(rand.NewSource(int64(seed)))
	state[1] = second.Uint64()
	// Both words zero would lock the generator at zero forever.
	if state[0] == 0 && state[1] == 0 {
		state[1] = 1
	}
}

// Return next random word.
func Random() uint64 {
	x := state[0]
	y := state[1]
	state[0] = y
	x ^= x << 23
	z := x ^ y ^ (x >> 17) ^ (y >> 26)
	state[1] = z
	return z + y
}
