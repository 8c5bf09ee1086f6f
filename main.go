/*
 * nanopond - Main process.
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

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	reader "github.com/rountree/npcc/command/reader"
	config "github.com/rountree/npcc/config/configparser"
	core "github.com/rountree/npcc/sim/core"
	master "github.com/rountree/npcc/sim/master"
	telnet "github.com/rountree/npcc/telnet"
	logger "github.com/rountree/npcc/util/logger"

	_ "github.com/rountree/npcc/config/simconfig"
	_ "github.com/rountree/npcc/util/debug"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "npcc.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optStatFile := getopt.StringLong("stats", 's', "", "CSV report file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}))
	slog.SetDefault(Logger)

	Logger.Info("nanopond started")

	_, err := os.Stat(*optConfig)
	if os.IsNotExist(err) {
		Logger.Error("Configuration file " + *optConfig + " can't be found")
		os.Exit(0)
	}

	err = config.LoadConfigFile(*optConfig)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(0)
	}

	// Command line overrides the config file.
	if *optStatFile != "" {
		core.SetStatFile(*optStatFile)
	}

	masterChannel := make(chan master.Packet)

	// Create new routine to run the simulator.
	sim := core.NewCore(masterChannel)

	// Start the monitor server if configured.
	err = telnet.Start(sim)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	sim.AddReportSink(telnet.Broadcast)

	// Start main simulator.
	go sim.Start()

	// Wait for a SIGINT or SIGTERM signal to gracefully shut down
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	consoleDone := make(chan struct{})
	go func() {
		// Receive commands from the console.
		reader.ConsoleReader(sim)
		close(consoleDone)
	}()

	select {
	case <-sigChan:
		Logger.Info("Got quit signal")
	case <-consoleDone:
	}

	Logger.Info("Shutting down simulator")
	sim.Stop()
	Logger.Info("Shutting down monitor...")
	telnet.Stop()
	Logger.Info("Servers stopped.")
}
