/*
   Core simulator loop.

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

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rountree/npcc/display"
	"github.com/rountree/npcc/sim/event"
	"github.com/rountree/npcc/sim/master"
	"github.com/rountree/npcc/sim/pond"
	"github.com/rountree/npcc/sim/prng"
	"github.com/rountree/npcc/sim/stats"
	"github.com/rountree/npcc/sim/vm"
	"github.com/rountree/npcc/util/debug"
)

// Default scheduler parameters.
const (
	DefaultReportFrequency = 200000 // Ticks between reports
	DefaultInflowFrequency = 100    // Ticks between seedings
	DefaultInflowBase      = 600    // Base seed energy
	DefaultInflowVariation = 1000   // Uniform extra seed energy, exclusive
	DefaultSeed            = 13     // PRNG seed

	// Ticks between full repaints of the visualization sink.
	refreshInterval = 100000
)

var (
	reportFrequency uint64 = DefaultReportFrequency
	inflowFrequency uint64 = DefaultInflowFrequency
	inflowBase      uint64 = DefaultInflowBase
	inflowVariation uint64 = DefaultInflowVariation
	seed            uint64 = DefaultSeed
	statPath        string
)

// Debug trace masks.
const (
	debugSeed = 1 << iota
	debugReport
)

var debugMsk int

// Enable a debug tracing option.
func Debug(option string) error {
	switch strings.ToUpper(option) {
	case "SEED":
		debugMsk |= debugSeed
	case "REPORT":
		debugMsk |= debugReport
	default:
		return errors.New("unknown CORE debug option: " + option)
	}
	return nil
}

// SetReportFrequency sets the ticks between reports.
func SetReportFrequency(freq uint64) error {
	if freq == 0 {
		return errors.New("report frequency can't be zero")
	}
	reportFrequency = freq
	return nil
}

// SetInflowFrequency sets the ticks between seedings.
func SetInflowFrequency(freq uint64) error {
	if freq == 0 {
		return errors.New("inflow frequency can't be zero")
	}
	inflowFrequency = freq
	return nil
}

// SetInflowBase sets the base energy added by a seeding.
func SetInflowBase(base uint64) {
	inflowBase = base
}

// SetInflowVariation sets the exclusive bound on the uniform extra
// seeding energy. Zero disables the variation for a fixed inflow.
func SetInflowVariation(variation uint64) {
	inflowVariation = variation
}

// SetSeed sets the PRNG seed used at startup.
func SetSeed(value uint64) {
	seed = value
}

// SetStatFile sets the CSV report output path.
func SetStatFile(path string) {
	statPath = path
}

type Core struct {
	wg       sync.WaitGroup
	done     chan struct{} // Signal to shutdown simulator.
	running  bool          // Indicate when simulator should run or not.
	master   chan master.Packet
	clock    uint64
	statFile *os.File
	// Receivers of report rows beyond the CSV file.
	reportSinks []func(string)
}

// Create instance of the simulator.
func NewCore(master chan master.Packet) *Core {
	return &Core{
		master: master,
		done:   make(chan struct{}),
	}
}

// AddReportSink registers a receiver for report rows. Must be called
// before Start.
func (core *Core) AddReportSink(sink func(string)) {
	core.reportSinks = append(core.reportSinks, sink)
}

// Clock returns the current tick count.
func (core *Core) Clock() uint64 {
	return core.clock
}

// Post sends a control message to the simulator.
func (core *Core) Post(msg int) {
	core.master <- master.Packet{Msg: msg}
}

// Query sends a request to the simulator and waits for its reply.
func (core *Core) Query(msg, x, y int) string {
	reply := make(chan string, 1)
	core.master <- master.Packet{Msg: msg, X: x, Y: y, Reply: reply}
	select {
	case text := <-reply:
		return text
	case <-time.After(time.Second):
		return "no response from simulator"
	}
}

// Initialize the world: PRNG, pond and statistics window.
func (core *Core) initialize() {
	prng.Seed(seed)
	pond.Initialize()
	stats.Reset()

	if statPath != "" {
		file, err := os.Create(statPath)
		if err != nil {
			slog.Error("unable to create stat file: " + err.Error())
		} else {
			core.statFile = file
		}
	}
}

// Start the simulator running.
func (core *Core) Start() {
	core.wg.Add(1)
	defer core.wg.Done()
	core.initialize()
	core.running = true
	event.AddEvent(core, core.refresh, refreshInterval, 0)
	for {
		if core.running {
			core.tick()
			event.Advance(1)
		}
		select {
		case <-core.done:
			core.shutdown()
			return
		case packet := <-core.master:
			core.processPacket(packet)
		default:
		}
	}
}

// Stop a running simulator.
func (core *Core) Stop() {
	close(core.done)
	done := make(chan struct{})
	go func() {
		core.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for simulator to finish.")
		return
	}
}

// One scheduler tick: possible report, possible energy inflow, then one
// random cell execution.
func (core *Core) tick() {
	core.clock++

	if core.clock%reportFrequency == 0 {
		core.report()
	}

	if core.clock%inflowFrequency == 0 {
		x := int(prng.Random() % uint64(pond.SizeX()))
		y := int(prng.Random() % uint64(pond.SizeY()))
		core.seedCell(x, y)
	}

	r := prng.Random()
	x := int(r % uint64(pond.SizeX()))
	y := int(((r / uint64(pond.SizeX())) >> 1) % uint64(pond.SizeY()))
	stats.CountExecution()
	vm.ExecuteCell(x, y)
	display.Update(x, y, pond.GetCell(x, y))
}

// Emit a report row for the window just ended and reset the window.
func (core *Core) report() {
	row := stats.Report(core.clock)
	debug.Debugf("CORE", debugMsk, debugReport, "report at clock %d", core.clock)
	if core.statFile != nil {
		fmt.Fprintln(core.statFile, row)
	}
	for _, sink := range core.reportSinks {
		sink(row)
	}
}

// Seed a slot: fresh identity, added energy, random genome.
func (core *Core) seedCell(x, y int) {
	cell := pond.GetCell(x, y)
	cell.ID = pond.NextID()
	cell.ParentID = 0
	cell.Lineage = cell.ID
	cell.Generation = 0
	add := inflowBase
	if inflowVariation > 0 {
		add += prng.Random() % inflowVariation
	}
	cell.Energy += add
	cell.Genome.Randomize(prng.Random)
	debug.Debugf("CORE", debugMsk, debugSeed,
		"seeded cell %d at (%d,%d) energy %d", cell.ID, x, y, cell.Energy)
	display.Update(x, y, cell)
}

// Repaint the whole visualization and reschedule.
func (core *Core) refresh(int) {
	display.Refresh()
	event.AddEvent(core, core.refresh, refreshInterval, 0)
}

func (core *Core) shutdown() {
	if core.statFile != nil {
		core.statFile.Close()
	}
	slog.Info("Shutdown simulator core")
}

func (core *Core) valid(x, y int) bool {
	return x >= 0 && x < pond.SizeX() && y >= 0 && y < pond.SizeY()
}

// Process a packet sent to the simulator.
func (core *Core) processPacket(packet master.Packet) {
	reply := func(text string) {
		if packet.Reply != nil {
			packet.Reply <- text
		}
	}

	switch packet.Msg {
	case master.Start:
		core.running = true
	case master.Stop:
		core.running = false
	case master.Report:
		reply(stats.Row(core.clock, stats.ScanPond()))
	case master.SeedCell:
		if !core.valid(packet.X, packet.Y) {
			reply("cell out of range")
			return
		}
		core.seedCell(packet.X, packet.Y)
		reply(fmt.Sprintf("seeded (%d,%d)", packet.X, packet.Y))
	case master.ShowCell:
		if !core.valid(packet.X, packet.Y) {
			reply("cell out of range")
			return
		}
		cell := pond.GetCell(packet.X, packet.Y)
		reply(fmt.Sprintf(
			"cell (%d,%d): id %d parent %d lineage %d generation %d energy %d",
			packet.X, packet.Y, cell.ID, cell.ParentID, cell.Lineage,
			cell.Generation, cell.Energy))
	case master.DumpCell:
		if !core.valid(packet.X, packet.Y) {
			reply("cell out of range")
			return
		}
		cell := pond.GetCell(packet.X, packet.Y)
		reply(strings.Join(vm.Disassemble(&cell.Genome), "\n"))
	case master.ShowPond:
		totals := stats.ScanPond()
		reply(fmt.Sprintf(
			"clock %d: %d alive, %d viable, max generation %d, total energy %d",
			core.clock, totals.ActiveCells, totals.ViableReplicators,
			totals.MaxGeneration, totals.Energy))
	case master.ShowStats:
		window := stats.Current()
		reply(fmt.Sprintf(
			"window: %d executions, %d replaced, %d killed, %d shares",
			window.CellExecutions, window.ViableReplaced,
			window.ViableKilled, window.ViableShares))
	}
}
