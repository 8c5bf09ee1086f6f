/*
 * nanopond - Monitor sessions.
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

package telnet

import (
	"bufio"
	"net"
	"strings"
	"sync"

	"github.com/rountree/npcc/command/parser"
)

// Telnet protocol bytes we need to strip from the input stream.
const (
	tnIAC  byte = 255 // protocol delim
	tnDONT byte = 254 // dont
	tnDO   byte = 253 // do
	tnWONT byte = 252 // wont
	tnWILL byte = 251 // will
	tnSB   byte = 250 // Sub negotiations begin
	tnSE   byte = 240 // Sub negotiations end

	// Input line states.
	tnStateData int = 1 + iota // normal
	tnStateIAC                 // IAC seen
	tnStateOPT                 // WILL/WONT/DO/DONT seen
	tnStateSB                  // Waiting for SE
)

// Connected monitor clients.
var clients = map[net.Conn]struct{}{}
var clientsLock sync.Mutex

// Broadcast a line to every connected monitor client.
func Broadcast(line string) {
	clientsLock.Lock()
	defer clientsLock.Unlock()
	for conn := range clients {
		_, err := conn.Write([]byte(line + "\r\n"))
		if err != nil {
			conn.Close()
			delete(clients, conn)
		}
	}
}

func addClient(conn net.Conn) {
	clientsLock.Lock()
	defer clientsLock.Unlock()
	clients[conn] = struct{}{}
}

func removeClient(conn net.Conn) {
	clientsLock.Lock()
	defer clientsLock.Unlock()
	delete(clients, conn)
}

// Run one monitor session: stream report rows, accept commands.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	defer removeClient(conn)
	addClient(conn)

	_, _ = conn.Write([]byte("npcc monitor\r\n"))

	state := tnStateData
	line := ""
	reader := bufio.NewReader(conn)
	for {
		by, err := reader.ReadByte()
		if err != nil {
			return
		}

		// Strip telnet option negotiation from the stream.
		switch state {
		case tnStateIAC:
			switch by {
			case tnWILL, tnWONT, tnDO, tnDONT:
				state = tnStateOPT
			case tnSB:
				state = tnStateSB
			default:
				state = tnStateData
			}
			continue
		case tnStateOPT:
			state = tnStateData
			continue
		case tnStateSB:
			if by == tnSE {
				state = tnStateData
			}
			continue
		}

		switch by {
		case tnIAC:
			state = tnStateIAC
		case '\r':
		case '\n':
			s.runCommand(conn, strings.TrimSpace(line))
			line = ""
		default:
			line += string(by)
		}
	}
}

// Execute one command line from a monitor client.
func (s *Server) runCommand(conn net.Conn, line string) {
	if line == "" {
		return
	}

	quit, output, err := parser.ProcessCommand(line, s.core)
	if err != nil {
		output = "Error: " + err.Error()
	}
	if output != "" {
		output = strings.ReplaceAll(output, "\n", "\r\n")
		_, _ = conn.Write([]byte(output + "\r\n"))
	}
	if quit {
		// Quit only ends the session, not the simulator.
		conn.Close()
	}
}
