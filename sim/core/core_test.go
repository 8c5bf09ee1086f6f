/*
 * nanopond - Scheduler test cases.
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

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rountree/npcc/sim/master"
	"github.com/rountree/npcc/sim/pond"
)

// Build a simulator over a fresh pond without starting its goroutine.
func newTestCore(t *testing.T, x, y int) *Core {
	t.Helper()
	require.NoError(t, pond.SetSize(x, y))
	core := NewCore(make(chan master.Packet))
	core.initialize()
	t.Cleanup(func() {
		reportFrequency = DefaultReportFrequency
		inflowFrequency = DefaultInflowFrequency
		inflowBase = DefaultInflowBase
		inflowVariation = DefaultInflowVariation
		seed = DefaultSeed
	})
	return core
}

// Count cells that have been seeded: assigned an id but no parent.
func countSeeded() int {
	count := 0
	for y := 0; y < pond.SizeY(); y++ {
		for x := 0; x < pond.SizeX(); x++ {
			cell := pond.GetCell(x, y)
			if cell.ID != 0 && cell.ParentID == 0 && cell.Generation == 0 {
				count++
			}
		}
	}
	return count
}

// Starting from an empty pond, the first seeding lands exactly at the
// inflow frequency.
func TestFirstSeeding(t *testing.T) {
	core := newTestCore(t, 256, 256)

	for i := 0; i < DefaultInflowFrequency-1; i++ {
		core.tick()
	}
	assert.Zero(t, countSeeded())

	core.tick()
	assert.Equal(t, uint64(DefaultInflowFrequency), core.Clock())
	assert.Equal(t, 1, countSeeded())

	// Find it and check the seeded state.
	for y := 0; y < pond.SizeY(); y++ {
		for x := 0; x < pond.SizeX(); x++ {
			cell := pond.GetCell(x, y)
			if cell.ID == 0 {
				continue
			}
			assert.Zero(t, cell.ParentID)
			assert.Zero(t, cell.Generation)
			assert.Equal(t, cell.ID, cell.Lineage)
			assert.GreaterOrEqual(t, cell.Energy, uint64(DefaultInflowBase))
			assert.Less(t, cell.Energy,
				uint64(DefaultInflowBase+DefaultInflowVariation))
		}
	}
}

// Seeding adds energy on top of what the slot already holds.
func TestSeedingAdds(t *testing.T) {
	core := newTestCore(t, 16, 12)

	cell := pond.GetCell(2, 3)
	cell.Energy = 50
	core.seedCell(2, 3)

	assert.GreaterOrEqual(t, cell.Energy, uint64(50+DefaultInflowBase))
	assert.NotZero(t, cell.ID)
	assert.Equal(t, cell.ID, cell.Lineage)

	// A random genome is practically never still all ones.
	allOnes := true
	for _, word := range cell.Genome {
		if word != ^uint64(0) {
			allOnes = false
			break
		}
	}
	assert.False(t, allOnes)
}

// With variation disabled the inflow is fixed.
func TestSeedingFixedInflow(t *testing.T) {
	core := newTestCore(t, 16, 12)
	SetInflowVariation(0)

	cell := pond.GetCell(4, 4)
	core.seedCell(4, 4)
	assert.Equal(t, uint64(DefaultInflowBase), cell.Energy)
}

// Reports come out on the configured cadence with the full field set.
func TestReportCadence(t *testing.T) {
	core := newTestCore(t, 16, 12)
	require.NoError(t, SetReportFrequency(10))

	var rows []string
	core.AddReportSink(func(row string) {
		rows = append(rows, row)
	})

	for i := 0; i < 25; i++ {
		core.tick()
	}

	require.Len(t, rows, 2)
	fields := strings.Split(rows[0], ",")
	assert.Len(t, fields, 25)
	assert.Equal(t, "10", fields[0])
	assert.Equal(t, "20", strings.Split(rows[1], ",")[0])
}

// Control packets pause and resume the scheduler.
func TestStartStopPackets(t *testing.T) {
	core := newTestCore(t, 16, 12)
	core.running = true

	core.processPacket(master.Packet{Msg: master.Stop})
	assert.False(t, core.running)
	core.processPacket(master.Packet{Msg: master.Start})
	assert.True(t, core.running)
}

// Queries answer on their reply channel.
func TestQueries(t *testing.T) {
	core := newTestCore(t, 16, 12)

	reply := make(chan string, 1)
	core.processPacket(master.Packet{Msg: master.ShowPond, Reply: reply})
	assert.Contains(t, <-reply, "clock 0")

	core.processPacket(master.Packet{Msg: master.SeedCell, X: 1, Y: 1, Reply: reply})
	assert.Contains(t, <-reply, "seeded (1,1)")
	assert.NotZero(t, pond.GetCell(1, 1).ID)

	core.processPacket(master.Packet{Msg: master.ShowCell, X: 1, Y: 1, Reply: reply})
	text := <-reply
	assert.Contains(t, text, "cell (1,1)")
	assert.Contains(t, text, "generation 0")

	core.processPacket(master.Packet{Msg: master.DumpCell, X: 0, Y: 0, Reply: reply})
	assert.Contains(t, <-reply, "STOP")

	core.processPacket(master.Packet{Msg: master.ShowCell, X: 99, Y: 0, Reply: reply})
	assert.Equal(t, "cell out of range", <-reply)

	core.processPacket(master.Packet{Msg: master.Report, Reply: reply})
	assert.Len(t, strings.Split(<-reply, ","), 25)
}

// The running simulator answers queries over the master channel and
// shuts down cleanly.
func TestRunningCore(t *testing.T) {
	require.NoError(t, pond.SetSize(64, 48))
	core := NewCore(make(chan master.Packet))

	go core.Start()

	text := core.Query(master.ShowPond, 0, 0)
	assert.Contains(t, text, "clock")

	core.Post(master.Stop)
	clock := core.Query(master.Report, 0, 0)
	assert.NotEmpty(t, clock)

	core.Stop()
}
