package stats

/*
 * nanopond - Statistics aggregation
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
	"log/slog"
	"strings"

	"github.com/rountree/npcc/sim/pond"
)

// Counters for the current reporting window.
type Snapshot struct {
	Instr          [16]uint64 // Executions per codon
	CellExecutions uint64     // Cells run this window
	ViableReplaced uint64     // Viable cells overwritten by offspring
	ViableKilled   uint64     // Viable cells blanked by KILL
	ViableShares   uint64     // Viable cells that received a SHARE
}

var counters Snapshot

// Viable replicator count at the previous report. Used to detect the
// pond coming to life or dying out.
var lastViable uint64

// Totals from one full scan of the pond.
type PondTotals struct {
	Energy            uint64 // Energy summed over alive cells
	ActiveCells       uint64 // Cells with nonzero energy
	ViableReplicators uint64 // Alive cells with generation > 2
	MaxGeneration     uint64 // Highest generation among alive cells
}

// Count one instruction execution.
func CountInstr(codon uint8) {
	counters.Instr[codon&0xf]++
}

// Count one cell execution.
func CountExecution() {
	counters.CellExecutions++
}

// Count a viable cell overwritten by offspring.
func CountViableReplaced() {
	counters.ViableReplaced++
}

// Count a viable cell blanked by a kill.
func CountViableKilled() {
	counters.ViableKilled++
}

// Count a viable cell that took part in an energy share.
func CountViableShared() {
	counters.ViableShares++
}

// Current returns a copy of the window counters.
func Current() Snapshot {
	return counters
}

// Reset zeroes the window counters.
func Reset() {
	counters = Snapshot{}
}

// ScanPond visits every cell once and returns the totals.
func ScanPond() PondTotals {
	var totals PondTotals
	for y := 0; y < pond.SizeY(); y++ {
		for x := 0; x < pond.SizeX(); x++ {
			cell := pond.GetCell(x, y)
			if !cell.Alive() {
				continue
			}
			totals.Energy += cell.Energy
			totals.ActiveCells++
			if cell.Viable() {
				totals.ViableReplicators++
			}
			if cell.Generation > totals.MaxGeneration {
				totals.MaxGeneration = cell.Generation
			}
		}
	}
	return totals
}

// Report scans the pond, formats the CSV row for the current window and
// resets the window counters. Life and extinction transitions are logged
// as they are detected.
func Report(clock uint64) string {
	totals := ScanPond()

	if lastViable == 0 && totals.ViableReplicators > 0 {
		slog.Info(fmt.Sprintf("Pond came to life at clock %d", clock))
	} else if lastViable > 0 && totals.ViableReplicators == 0 {
		slog.Info(fmt.Sprintf("Viable replicators died out at clock %d", clock))
	}
	lastViable = totals.ViableReplicators

	row := Row(clock, totals)
	Reset()
	return row
}

// Row formats the CSV row for the given totals without touching the
// window counters. Used for reports requested between windows.
func Row(clock uint64, totals PondTotals) string {
	var row strings.Builder
	fmt.Fprintf(&row, "%d,%d,%d,%d,%d,%d,%d,%d",
		clock, totals.Energy, totals.ActiveCells, totals.ViableReplicators,
		totals.MaxGeneration, counters.ViableReplaced, counters.ViableKilled,
		counters.ViableShares)

	totalMetabolism := uint64(0)
	for _, count := range counters.Instr {
		totalMetabolism += count
		fmt.Fprintf(&row, ",%.4f", perExecution(count))
	}
	fmt.Fprintf(&row, ",%.4f", perExecution(totalMetabolism))

	return row.String()
}

func perExecution(count uint64) float64 {
	if counters.CellExecutions == 0 {
		return 0
	}
	return float64(count) / float64(counters.CellExecutions)
}
