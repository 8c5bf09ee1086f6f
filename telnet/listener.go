/*
 * nanopond - Monitor server listener.
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
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	config "github.com/rountree/npcc/config/configparser"
	"github.com/rountree/npcc/sim/core"
)

type Server struct {
	wg         sync.WaitGroup
	listener   net.Listener
	shutdown   chan struct{}
	connection chan net.Conn
	core       *core.Core
}

var server *Server

// Monitor port, empty when the monitor is disabled.
var port string

// register the monitor option on initialize.
func init() {
	config.RegisterOption("MONITOR", setPort)
}

// Set monitor port.
func setPort(value string, _ []config.Option) error {
	if _, err := strconv.ParseUint(value, 10, 16); err != nil {
		return fmt.Errorf("invalid monitor port: %s", value)
	}
	port = value
	return nil
}

// Start the monitor server if a port was configured.
func Start(core *core.Core) error {
	if port == "" {
		return nil
	}

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	server = &Server{
		listener:   listener,
		shutdown:   make(chan struct{}),
		connection: make(chan net.Conn),
		core:       core,
	}

	slog.Info("Monitor started on port " + port)

	server.wg.Add(2)
	go server.acceptConnections()
	go server.handleConnections()
	return nil
}

// Stop a running monitor server.
func Stop() {
	if server == nil {
		return
	}

	slog.Info("Shutdown monitor port: " + port)

	close(server.shutdown)
	server.listener.Close()

	done := make(chan struct{})
	go func() {
		server.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for monitor connections to finish")
	}
	server = nil
}

// Accept incoming connections until shutdown.
func (s *Server) acceptConnections() {
	defer s.wg.Done()
	for {
		select {
		case <-s.shutdown:
			return
		default:
			conn, err := s.listener.Accept()
			if err != nil {
				continue
			}
			s.connection <- conn
		}
	}
}

// Hand accepted connections to their session handlers.
func (s *Server) handleConnections() {
	defer s.wg.Done()

	for {
		select {
		case <-s.shutdown:
			return
		case conn := <-s.connection:
			go s.handleConnection(conn)
		}
	}
}
