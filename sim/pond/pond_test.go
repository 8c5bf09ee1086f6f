/*
 * nanopond - Pond grid test cases.
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

package pond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, x, y int) {
	t.Helper()
	require.NoError(t, SetSize(x, y))
	Initialize()
}

// Every slot starts blank: zero identity, no energy, all ones genome.
func TestInitialize(t *testing.T) {
	setup(t, 16, 12)

	assert.Equal(t, 16, SizeX())
	assert.Equal(t, 12, SizeY())
	for y := 0; y < SizeY(); y++ {
		for x := 0; x < SizeX(); x++ {
			cell := GetCell(x, y)
			assert.Zero(t, cell.ID)
			assert.Zero(t, cell.ParentID)
			assert.Zero(t, cell.Lineage)
			assert.Zero(t, cell.Generation)
			assert.Zero(t, cell.Energy)
			assert.False(t, cell.Alive())
			assert.False(t, cell.Viable())
			for i := range cell.Genome {
				assert.Equal(t, ^uint64(0), cell.Genome[i])
			}
		}
	}
}

func TestSetSizeInvalid(t *testing.T) {
	assert.Error(t, SetSize(0, 10))
	assert.Error(t, SetSize(10, 0))
}

// The four edges wrap around.
func TestNeighborWrap(t *testing.T) {
	setup(t, 16, 12)

	assert.Same(t, GetCell(15, 5), Neighbor(0, 5, Left))
	assert.Same(t, GetCell(0, 5), Neighbor(15, 5, Right))
	assert.Same(t, GetCell(7, 11), Neighbor(7, 0, Up))
	assert.Same(t, GetCell(7, 0), Neighbor(7, 11, Down))
}

// Interior neighbors are the obvious four.
func TestNeighborInterior(t *testing.T) {
	setup(t, 16, 12)

	assert.Same(t, GetCell(4, 5), Neighbor(5, 5, Left))
	assert.Same(t, GetCell(6, 5), Neighbor(5, 5, Right))
	assert.Same(t, GetCell(5, 4), Neighbor(5, 5, Up))
	assert.Same(t, GetCell(5, 6), Neighbor(5, 5, Down))
}

// Ids are assigned strictly increasing and restart on Initialize.
func TestNextID(t *testing.T) {
	setup(t, 4, 4)

	last := uint64(0)
	for i := 0; i < 100; i++ {
		id := NextID()
		assert.Greater(t, id, last)
		last = id
	}
	assert.Equal(t, last, IDCounter())

	Initialize()
	assert.Zero(t, IDCounter())
	assert.Equal(t, uint64(1), NextID())
}

// Viability needs more than two generations.
func TestViable(t *testing.T) {
	cell := Cell{Generation: 2, Energy: 1}
	assert.False(t, cell.Viable())
	cell.Generation = 3
	assert.True(t, cell.Viable())
}
