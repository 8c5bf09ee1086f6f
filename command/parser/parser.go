/*
 * nanopond - Command line parser.
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
	"strconv"
	"unicode"

	core "github.com/rountree/npcc/sim/core"
)

type cmd struct {
	name     string // Command name.
	min      int    // Minimum match size.
	process  func(*cmdLine, *core.Core) (bool, string, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var cmdList = []cmd{
	{name: "start", min: 3, process: start},
	{name: "stop", min: 3, process: stop},
	{name: "report", min: 1, process: report},
	{name: "show", min: 2, process: show, complete: showComplete},
	{name: "dump", min: 1, process: dump},
	{name: "seed", min: 3, process: seedCmd},
	{name: "quit", min: 1, process: quit},
}

// Execute the command line given. Returns whether the process should
// quit and any output to print.
func ProcessCommand(commandLine string, core *core.Core) (bool, string, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()

	match := matchList(command)
	if len(match) == 0 {
		return false, "", errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, "", errors.New("unique command not found: " + command)
	}

	return match[0].process(&line, core)
}

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	// We have a command, let it try and complete it.
	if !line.isEOL() && line.line[line.pos] == ' ' {
		// Skip leading spaces.
		line.skipSpace()
		// See if there is a completer for this command.
		match := matchList(name)
		if len(match) != 1 {
			return nil
		}

		if match[0].complete != nil {
			return match[0].complete(&line)
		}
		return nil
	}

	matches := []string{}
	for _, m := range matchList(name) {
		matches = append(matches, m.name)
	}

	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.name) {
		return false
	}
	l := 0
	for l = 0; l < len(command); l++ {
		if match.name[l] != command[l] {
			return false
		}
	}
	return l >= match.min
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// Try and match one command.
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Grab next word on line.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	word := ""
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			word += string([]byte{by})
			line.pos++
			continue
		}
		break
	}
	return word
}

// Grab a decimal number from the line.
func (line *cmdLine) getNumber() (int, error) {
	word := line.getWord()
	if word == "" {
		return 0, errors.New("number missing")
	}
	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, errors.New("not a number: " + word)
	}
	return value, nil
}

// Grab a pair of cell coordinates from the line.
func (line *cmdLine) getCoords() (int, int, error) {
	x, err := line.getNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err := line.getNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
