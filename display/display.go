/*
 * nanopond - Visualization sink
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

package display

import (
	"github.com/rountree/npcc/sim/pond"
)

// Sink receives pixel updates as the pond changes. Renderers attach one
// with SetSink; the default discards updates.
type Sink interface {
	UpdatePixel(x, y int, color uint8)
}

type nullSink struct{}

func (nullSink) UpdatePixel(int, int, uint8) {}

var sink Sink = nullSink{}

// Attach a visualization sink.
func SetSink(s Sink) {
	if s == nil {
		sink = nullSink{}
		return
	}
	sink = s
}

// ColorOf maps a cell to a display color. Dead slots are black,
// non-viable cells a dim fixed shade, viable cells a color keyed off
// their lineage so clones shade alike.
func ColorOf(cell *pond.Cell) uint8 {
	if !cell.Alive() {
		return 0
	}
	if !cell.Viable() {
		return 0x10
	}
	color := uint8(cell.Lineage * 5)
	if color == 0 {
		color = 1
	}
	return color
}

// Update publishes one cell's pixel to the attached sink.
func Update(x, y int, cell *pond.Cell) {
	sink.UpdatePixel(x, y, ColorOf(cell))
}

// Refresh republishes every pixel in the pond.
func Refresh() {
	for y := 0; y < pond.SizeY(); y++ {
		for x := 0; x < pond.SizeX(); x++ {
			sink.UpdatePixel(x, y, ColorOf(pond.GetCell(x, y)))
		}
	}
}
