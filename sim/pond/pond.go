package pond

/*
 * nanopond - Pond cell grid
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

	"github.com/rountree/npcc/sim/genome"
)

// Neighbor directions. The facing register of the VM maps onto these.
const (
	Left = iota
	Right
	Up
	Down
)

// Default pond dimensions.
const (
	DefaultSizeX = 800
	DefaultSizeY = 600
)

// One grid location. Slots are never deleted; a dead slot is one with
// zero energy.
type Cell struct {
	ID         uint64 // Unique id, assigned at creation.
	ParentID   uint64 // Id of producing cell, 0 for seeded or killed cells.
	Lineage    uint64 // Id of the first ancestor, inherited by offspring.
	Generation uint64 // 0 for seeded cells, parent+1 for offspring.
	Energy     uint64 // Cell is alive while nonzero.
	Genome     genome.Genome
}

// Alive reports whether the cell holds any energy.
func (cell *Cell) Alive() bool {
	return cell.Energy > 0
}

// Viable reports whether the cell descends from sustained replication.
func (cell *Cell) Viable() bool {
	return cell.Generation > 2
}

type pondState struct {
	cells []Cell
	sizeX int
	sizeY int
	// Next cell id to assign. Monotonic over the whole run.
	idCounter uint64
}

var pond pondState

// Set pond dimensions. Takes effect at the next Initialize.
func SetSize(x, y int) error {
	if x < 1 || y < 1 {
		return fmt.Errorf("invalid pond size %dx%d", x, y)
	}
	pond.sizeX = x
	pond.sizeY = y
	return nil
}

// Initialize allocates the grid and resets every slot to the blank state:
// zero ids and energy, genome all ones. The id counter restarts.
func Initialize() {
	if pond.sizeX == 0 {
		pond.sizeX = DefaultSizeX
	}
	if pond.sizeY == 0 {
		pond.sizeY = DefaultSizeY
	}
	pond.cells = make([]Cell, pond.sizeX*pond.sizeY)
	for i := range pond.cells {
		pond.cells[i] = Cell{}
		pond.cells[i].Genome.FillOnes()
	}
	pond.idCounter = 0
}

// Return pond width in cells.
func SizeX() int {
	return pond.sizeX
}

// Return pond height in cells.
func SizeY() int {
	return pond.sizeY
}

// Get the cell at a grid location. Coordinates must be in range.
func GetCell(x, y int) *Cell {
	return &pond.cells[y*pond.sizeX+x]
}

// Get the cell next to (x,y) in the given direction. The grid is toroidal,
// all four edges wrap.
func Neighbor(x, y, dir int) *Cell {
	switch dir {
	case Left:
		if x == 0 {
			x = pond.sizeX
		}
		return GetCell(x-1, y)
	case Right:
		if x == pond.sizeX-1 {
			return GetCell(0, y)
		}
		return GetCell(x+1, y)
	case Up:
		if y == 0 {
			y = pond.sizeY
		}
		return GetCell(x, y-1)
	case Down:
		if y == pond.sizeY-1 {
			return GetCell(x, 0)
		}
		return GetCell(x, y+1)
	}
	return GetCell(x, y)
}

// NextID hands out the next cell id. Ids start at 1 so that 0 always
// means a slot that was never created.
func NextID() uint64 {
	pond.idCounter++
	return pond.idCounter
}

// IDCounter returns the last id assigned.
func IDCounter() uint64 {
	return pond.idCounter
}
