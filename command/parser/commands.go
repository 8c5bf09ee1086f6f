/*
 * nanopond - Commands.
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

package parser

import (
	"errors"
	"strings"

	core "github.com/rountree/npcc/sim/core"
	"github.com/rountree/npcc/sim/master"
)

// Resume the scheduler.
func start(_ *cmdLine, core *core.Core) (bool, string, error) {
	core.Post(master.Start)
	return false, "running", nil
}

// Pause the scheduler.
func stop(_ *cmdLine, core *core.Core) (bool, string, error) {
	core.Post(master.Stop)
	return false, "stopped", nil
}

// Print a report row for the current moment. The reporting window is
// left alone.
func report(_ *cmdLine, core *core.Core) (bool, string, error) {
	return false, core.Query(master.Report, 0, 0), nil
}

// Show pond totals, window counters or one cell.
func show(line *cmdLine, core *core.Core) (bool, string, error) {
	what := strings.ToLower(line.getWord())
	switch what {
	case "pond":
		return false, core.Query(master.ShowPond, 0, 0), nil
	case "stats":
		return false, core.Query(master.ShowStats, 0, 0), nil
	case "cell":
		x, y, err := line.getCoords()
		if err != nil {
			return false, "", err
		}
		return false, core.Query(master.ShowCell, x, y), nil
	}
	return false, "", errors.New("show requires pond, stats or cell x y")
}

// Completion for the show subcommands.
func showComplete(line *cmdLine) []string {
	prefix := line.line[:line.pos]
	word := strings.ToLower(line.getWord())
	matches := []string{}
	for _, sub := range []string{"pond", "stats", "cell"} {
		if strings.HasPrefix(sub, word) {
			matches = append(matches, prefix+sub+" ")
		}
	}
	return matches
}

// Print a disassembled genome listing of one cell.
func dump(line *cmdLine, core *core.Core) (bool, string, error) {
	x, y, err := line.getCoords()
	if err != nil {
		return false, "", err
	}
	return false, core.Query(master.DumpCell, x, y), nil
}

// Manually seed a slot with energy and a random genome.
func seedCmd(line *cmdLine, core *core.Core) (bool, string, error) {
	x, y, err := line.getCoords()
	if err != nil {
		return false, "", err
	}
	return false, core.Query(master.SeedCell, x, y), nil
}

// Leave the simulator.
func quit(_ *cmdLine, _ *core.Core) (bool, string, error) {
	return true, "", nil
}
