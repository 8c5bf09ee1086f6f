/*
 * nanopond - Simulator options configuration.
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

package simconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	config "github.com/rountree/npcc/config/configparser"
	"github.com/rountree/npcc/sim/core"
	"github.com/rountree/npcc/sim/pond"
	"github.com/rountree/npcc/sim/vm"
)

// register simulator options on initialize.
func init() {
	config.RegisterOptions("POND", setPond)
	config.RegisterOptions("REPORT", setReport)
	config.RegisterOptions("INFLOW", setInflow)
	config.RegisterOptions("MUTATION", setMutation)
	config.RegisterOptions("KILL", setKill)
	config.RegisterOption("SEED", setSeed)
	config.RegisterFile("STATFILE", setStatFile)
	config.RegisterOptions("DEBUG", setDebug)
}

// Parse the value after an option's equal sign as a number.
func optValue(opt config.Option) (uint64, error) {
	if opt.EqualOpt == "" || len(opt.Value) != 0 {
		return 0, fmt.Errorf("option %s requires a single =value", opt.Name)
	}
	value, err := strconv.ParseUint(opt.EqualOpt, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("option %s must be a number: %s", opt.Name, opt.EqualOpt)
	}
	return value, nil
}

// Set pond dimensions: POND X=800 Y=600.
func setPond(_ string, options []config.Option) error {
	x := pond.DefaultSizeX
	y := pond.DefaultSizeY
	for _, opt := range options {
		value, err := optValue(opt)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "X":
			x = int(value)
		case "Y":
			y = int(value)
		default:
			return errors.New("unknown POND option: " + opt.Name)
		}
	}
	return pond.SetSize(x, y)
}

// Set reporting cadence: REPORT FREQUENCY=200000.
func setReport(_ string, options []config.Option) error {
	for _, opt := range options {
		value, err := optValue(opt)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "FREQUENCY":
			if err := core.SetReportFrequency(value); err != nil {
				return err
			}
		default:
			return errors.New("unknown REPORT option: " + opt.Name)
		}
	}
	return nil
}

// Set energy inflow: INFLOW FREQUENCY=100 BASE=600 VARIATION=1000.
func setInflow(_ string, options []config.Option) error {
	for _, opt := range options {
		value, err := optValue(opt)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "FREQUENCY":
			if err := core.SetInflowFrequency(value); err != nil {
				return err
			}
		case "BASE":
			core.SetInflowBase(value)
		case "VARIATION":
			core.SetInflowVariation(value)
		default:
			return errors.New("unknown INFLOW option: " + opt.Name)
		}
	}
	return nil
}

// Set mutation probability: MUTATION RATE=5000.
func setMutation(_ string, options []config.Option) error {
	for _, opt := range options {
		value, err := optValue(opt)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "RATE":
			if value > 0xffffffff {
				return errors.New("mutation rate out of range: " + opt.EqualOpt)
			}
			vm.SetMutationRate(uint32(value))
		default:
			return errors.New("unknown MUTATION option: " + opt.Name)
		}
	}
	return nil
}

// Set kill penalty: KILL PENALTY=3.
func setKill(_ string, options []config.Option) error {
	for _, opt := range options {
		value, err := optValue(opt)
		if err != nil {
			return err
		}
		switch opt.Name {
		case "PENALTY":
			if err := vm.SetFailedKillPenalty(value); err != nil {
				return err
			}
		default:
			return errors.New("unknown KILL option: " + opt.Name)
		}
	}
	return nil
}

// Set the PRNG seed: SEED 13.
func setSeed(value string, _ []config.Option) error {
	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return errors.New("seed must be a number: " + value)
	}
	core.SetSeed(seed)
	return nil
}

// Set the CSV report file: STATFILE "npcc.csv".
func setStatFile(fileName string, _ []config.Option) error {
	core.SetStatFile(fileName)
	return nil
}

// Enable debug traces: DEBUG VM=EXEC,INTERACT CORE=SEED.
func setDebug(_ string, options []config.Option) error {
	for _, opt := range options {
		var set func(string) error
		switch opt.Name {
		case "VM":
			set = vm.Debug
		case "CORE":
			set = core.Debug
		default:
			return errors.New("unknown DEBUG module: " + opt.Name)
		}
		if opt.EqualOpt == "" {
			return errors.New("DEBUG " + opt.Name + " requires =option")
		}
		if err := set(strings.ToUpper(opt.EqualOpt)); err != nil {
			return err
		}
		for _, value := range opt.Value {
			if err := set(strings.ToUpper(*value)); err != nil {
				return err
			}
		}
	}
	return nil
}
