/*
   VM: per cell fetch and execute loop.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   ROBERT M SUPNIK BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

package vm

import (
	"errors"
	"strings"

	"github.com/rountree/npcc/sim/genome"
	"github.com/rountree/npcc/sim/pond"
	"github.com/rountree/npcc/sim/prng"
	"github.com/rountree/npcc/sim/stats"
	"github.com/rountree/npcc/util/debug"
)

/*
   Each cell holds a program of 4-bit codons packed into machine words.
   One execution walks the genome starting past the logo codon, spending
   one unit of the cell's energy per codon, until the energy is gone or a
   STOP executes. Codons written into the output buffer during execution
   may become an offspring genome placed into the facing neighbor.

   The register file lives only for the duration of one execution. Nothing
   of it is persisted in the cell.
*/

// Interaction sense for the access gate.
const (
	senseNegative = iota // Kill, offspring placement
	sensePositive        // Energy sharing
)

// Debug trace masks.
const (
	debugExec = 1 << iota
	debugInteract
)

var debugMsk int

// Enable a debug tracing option.
func Debug(option string) error {
	switch strings.ToUpper(option) {
	case "EXEC":
		debugMsk |= debugExec
	case "INTERACT":
		debugMsk |= debugInteract
	default:
		return errors.New("unknown VM debug option: " + option)
	}
	return nil
}

// Registers for one cell execution.
type vmState struct {
	execWord  uint // Execution cursor word index
	execShift uint // Execution cursor bit offset
	ptrWord   uint // Data pointer word index
	ptrShift  uint // Data pointer bit offset
	reg       uint8
	facing    int
	loopPtr   int  // Loop stack depth
	falseLoop int  // Nonzero while skipping a false LOOP body
	stop      bool

	loopWord  [genome.Depth]uint // Loop stack, exec cursor words
	loopShift [genome.Depth]uint // Loop stack, exec cursor shifts

	outputBuf genome.Genome
}

// ExecuteCell runs the cell at (x,y) until its energy is exhausted or it
// stops, then tries to place any emitted offspring into the facing
// neighbor.
func ExecuteCell(x, y int) {
	cell := pond.GetCell(x, y)

	var vm vmState
	vm.outputBuf.FillOnes()
	vm.execWord = ExecStartWord
	vm.execShift = ExecStartBit

	// Cache of the word under the execution cursor. Refreshed whenever
	// the cursor changes words or the genome is written.
	currentWord := cell.Genome[vm.execWord]

	for cell.Energy > 0 && !vm.stop {
		inst := uint8((currentWord >> vm.execShift) & 0xf)

		// Maybe frob the fetched codon or the register.
		if uint32(prng.Random()) < mutationRate {
			frob := prng.Random()
			if frob&0x80 != 0 {
				inst = uint8(frob & 0xf)
			} else {
				vm.reg = uint8(frob & 0xf)
			}
		}

		// Each codon processed costs one unit of energy.
		cell.Energy--

		if vm.falseLoop > 0 {
			// Skipping a false loop body. Only track nesting.
			switch inst {
			case OpLoop:
				vm.falseLoop++
			case OpRep:
				vm.falseLoop--
			}
		} else {
			stats.CountInstr(inst)
			switch inst {
			case OpZero:
				vm.reg = 0
				vm.ptrWord = 0
				vm.ptrShift = 0
				vm.facing = pond.Left
			case OpFwd:
				vm.ptrShift += 4
				if vm.ptrShift >= genome.WordBits {
					vm.ptrShift = 0
					vm.ptrWord++
					if vm.ptrWord >= genome.DepthWords {
						vm.ptrWord = 0
					}
				}
			case OpBack:
				if vm.ptrShift > 0 {
					vm.ptrShift -= 4
				} else {
					vm.ptrShift = genome.WordBits - 4
					if vm.ptrWord > 0 {
						vm.ptrWord--
					} else {
						vm.ptrWord = genome.DepthWords - 1
					}
				}
			case OpInc:
				vm.reg = (vm.reg + 1) & 0xf
			case OpDec:
				vm.reg = (vm.reg - 1) & 0xf
			case OpReadG:
				vm.reg = cell.Genome.Codon(vm.ptrWord, vm.ptrShift)
			case OpWriteG:
				cell.Genome.SetCodon(vm.ptrWord, vm.ptrShift, vm.reg)
				// The write may have landed in the word under the
				// execution cursor.
				currentWord = cell.Genome[vm.execWord]
			case OpReadB:
				vm.reg = vm.outputBuf.Codon(vm.ptrWord, vm.ptrShift)
			case OpWriteB:
				vm.outputBuf.SetCodon(vm.ptrWord, vm.ptrShift, vm.reg)
			case OpLoop:
				if vm.reg != 0 {
					if vm.loopPtr >= genome.Depth {
						// Stack overflow ends execution.
						vm.stop = true
					} else {
						vm.loopWord[vm.loopPtr] = vm.execWord
						vm.loopShift[vm.loopPtr] = vm.execShift
						vm.loopPtr++
					}
				} else {
					vm.falseLoop = 1
				}
			case OpRep:
				if vm.loopPtr > 0 {
					vm.loopPtr--
					if vm.reg != 0 {
						vm.execWord = vm.loopWord[vm.loopPtr]
						vm.execShift = vm.loopShift[vm.loopPtr]
						currentWord = cell.Genome[vm.execWord]
						// Rerun the LOOP without advancing the cursor.
						continue
					}
				}
			case OpTurn:
				vm.facing = int(vm.reg & 3)
			case OpXchg:
				// Exchange the register with the codon following the
				// execution cursor.
				vm.execShift += 4
				if vm.execShift >= genome.WordBits {
					vm.execWord++
					if vm.execWord >= genome.DepthWords {
						vm.execWord = ExecStartWord
						vm.execShift = ExecStartBit
					} else {
						vm.execShift = 0
					}
				}
				swap := vm.reg
				vm.reg = cell.Genome.Codon(vm.execWord, vm.execShift)
				cell.Genome.SetCodon(vm.execWord, vm.execShift, swap)
				currentWord = cell.Genome[vm.execWord]
			case OpKill:
				neighbor := pond.Neighbor(x, y, vm.facing)
				if accessAllowed(neighbor, vm.reg, senseNegative) {
					if neighbor.Viable() {
						stats.CountViableKilled()
					}
					debug.Debugf("VM", debugMsk, debugInteract,
						"cell %d killed %d", cell.ID, neighbor.ID)
					// Blanking the first two words is enough to stop
					// the victim from being a working program.
					neighbor.Genome[0] = ^uint64(0)
					neighbor.Genome[1] = ^uint64(0)
					neighbor.ID = pond.NextID()
					neighbor.ParentID = 0
					neighbor.Lineage = neighbor.ID
					neighbor.Generation = 0
				} else if neighbor.Viable() {
					// A denied kill of a viable cell costs the actor.
					penalty := cell.Energy / failedKillPenalty
					if cell.Energy > penalty {
						cell.Energy -= penalty
					} else {
						cell.Energy = 0
					}
				}
			case OpShare:
				neighbor := pond.Neighbor(x, y, vm.facing)
				if accessAllowed(neighbor, vm.reg, sensePositive) {
					if neighbor.Viable() {
						stats.CountViableShared()
					}
					debug.Debugf("VM", debugMsk, debugInteract,
						"cell %d shared with %d", cell.ID, neighbor.ID)
					total := cell.Energy + neighbor.Energy
					neighbor.Energy = total / 2
					cell.Energy = total - neighbor.Energy
				}
			case OpStop:
				vm.stop = true
			}
		}

		// On stop the cursor stays on the codon that stopped us.
		if vm.stop {
			break
		}

		// Advance the execution cursor, wrapping past the end of the
		// genome to the start position.
		vm.execShift += 4
		if vm.execShift >= genome.WordBits {
			vm.execWord++
			if vm.execWord >= genome.DepthWords {
				vm.execWord = ExecStartWord
				vm.execShift = ExecStartBit
			} else {
				vm.execShift = 0
			}
			currentWord = cell.Genome[vm.execWord]
		}
	}

	debug.Debugf("VM", debugMsk, debugExec,
		"cell %d at (%d,%d) ran, energy %d", cell.ID, x, y, cell.Energy)

	// If anything was emitted into the first two codons of the output
	// buffer, try to place the offspring into the facing neighbor.
	if vm.outputBuf[0]&0xff != 0xff {
		neighbor := pond.Neighbor(x, y, vm.facing)
		if neighbor.Alive() && accessAllowed(neighbor, vm.reg, senseNegative) {
			if neighbor.Viable() {
				stats.CountViableReplaced()
			}
			debug.Debugf("VM", debugMsk, debugInteract,
				"cell %d spawned into %d", cell.ID, neighbor.ID)
			neighbor.ID = pond.NextID()
			neighbor.ParentID = cell.ID
			neighbor.Lineage = cell.Lineage
			neighbor.Generation = cell.Generation + 1
			neighbor.Genome = vm.outputBuf
		}
	}
}

// The access gate for cell interactions. The first codon of the target is
// compared against the actor's register guess; negative interactions are
// more probable the more the two differ, positive ones the more they
// match. Cells that never had a parent are always accessible. Exactly one
// random draw is made per call.
func accessAllowed(target *pond.Cell, guess uint8, sense int) bool {
	distance := popCount4[(target.Genome.First()^guess)&0xf]
	roll := uint8(prng.Random() & 0xf)
	if sense == sensePositive {
		return roll >= distance || target.ParentID == 0
	}
	return roll <= distance || target.ParentID == 0
}
