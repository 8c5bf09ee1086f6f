/*
 * nanopond - Master channel packets
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

package master

// Messages the simulator core accepts from front ends.
const (
	Start    = 1 + iota // Resume the scheduler
	Stop                // Pause the scheduler
	Report              // Emit a report row outside the window
	SeedCell            // Inject energy and a random genome into a slot
	ShowCell            // Reply with the state of one cell
	DumpCell            // Reply with a genome listing of one cell
	ShowPond            // Reply with pond totals
	ShowStats           // Reply with window counters
)

// Packet sent to the core over the master channel. Queries carry a Reply
// channel the core answers on.
type Packet struct {
	Msg   int
	X, Y  int
	Reply chan string
}
