/*
 * nanopond - Statistics test cases.
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

package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rountree/npcc/sim/pond"
)

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, pond.SetSize(8, 8))
	pond.Initialize()
	Reset()
	lastViable = 0
}

// The scan counts only alive cells and viability needs generation
// above two.
func TestScanPond(t *testing.T) {
	setup(t)

	alive := pond.GetCell(1, 1)
	alive.Energy = 10
	alive.Generation = 1

	viable := pond.GetCell(2, 2)
	viable.Energy = 5
	viable.Generation = 7

	dead := pond.GetCell(3, 3)
	dead.Energy = 0
	dead.Generation = 9 // Dead cells count for nothing.

	totals := ScanPond()
	assert.Equal(t, uint64(15), totals.Energy)
	assert.Equal(t, uint64(2), totals.ActiveCells)
	assert.Equal(t, uint64(1), totals.ViableReplicators)
	assert.Equal(t, uint64(7), totals.MaxGeneration)
}

// A report row carries exactly 25 comma separated fields.
func TestReportFieldCount(t *testing.T) {
	setup(t)

	row := Report(200000)
	fields := strings.Split(row, ",")
	require.Len(t, fields, 25)
	assert.Equal(t, "200000", fields[0])
	// No executions this window, all ratios are guarded.
	for _, field := range fields[8:] {
		assert.Equal(t, "0.0000", field)
	}
}

// Instruction ratios are per cell execution with four decimals.
func TestReportRatios(t *testing.T) {
	setup(t)

	for i := 0; i < 4; i++ {
		CountExecution()
	}
	CountInstr(0x0)
	CountInstr(0x0)
	CountInstr(0x3)
	CountViableKilled()
	CountViableShared()
	CountViableReplaced()

	row := Report(100)
	fields := strings.Split(row, ",")
	require.Len(t, fields, 25)
	assert.Equal(t, "1", fields[5]) // replaced
	assert.Equal(t, "1", fields[6]) // killed
	assert.Equal(t, "1", fields[7]) // shares
	assert.Equal(t, "0.5000", fields[8])
	assert.Equal(t, "0.2500", fields[11])
	assert.Equal(t, "0.0000", fields[9])
	// Metabolism is the summed ratio.
	assert.Equal(t, "0.7500", fields[24])
}

// Report resets the window, Row does not.
func TestReportResets(t *testing.T) {
	setup(t)

	CountExecution()
	CountInstr(0x5)

	_ = Row(1, ScanPond())
	assert.Equal(t, uint64(1), Current().CellExecutions)

	_ = Report(1)
	snap := Current()
	assert.Zero(t, snap.CellExecutions)
	assert.Zero(t, snap.Instr[0x5])
}

// Totals in the row reflect the pond at scan time.
func TestReportTotals(t *testing.T) {
	setup(t)

	cell := pond.GetCell(0, 0)
	cell.Energy = 123
	cell.Generation = 4

	row := Report(50)
	fields := strings.Split(row, ",")
	assert.Equal(t, "50", fields[0])
	assert.Equal(t, "123", fields[1])
	assert.Equal(t, "1", fields[2])
	assert.Equal(t, "1", fields[3])
	assert.Equal(t, "4", fields[4])
}
