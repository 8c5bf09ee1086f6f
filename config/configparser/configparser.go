/*
 * nanopond - Configuration file parser
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Extra comma separated values.
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <name> |
 *           <name> <whitespace> <value> |
 *           <name> <whitespace> <quoteopt> |
 *           <name> *(<whitespace> <option>)
 * <name> ::= <letter> *(<letter> | <number>)
 * <value> ::= *(<letter> | <number>)
 * <option> ::= <name> ['=' <quoteopt> *(',' *(<whitespace>) <name>)]
 * <quoteopt> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <string> ::= *(<letter> | <number>)
 */

const (
	TypeSwitch  = 1 + iota // Bare option that sets a flag.
	TypeOption             // Accepts one value parameter.
	TypeFile               // Accepts a possibly quoted file name.
	TypeOptions            // Accepts a list of name=value options.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var registered = map[string]optionDef{}

var lineNumber int

// Register should be called from init functions.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	registered[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeSwitch}
}

// Register should be called from init functions.
func RegisterOption(name string, fn func(string, []Option) error) {
	registered[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeOption}
}

// Register should be called from init functions.
func RegisterFile(name string, fn func(string, []Option) error) {
	registered[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeFile}
}

// Register should be called from init functions.
func RegisterOptions(name string, fn func(string, []Option) error) {
	registered[strings.ToUpper(name)] = optionDef{create: fn, ty: TypeOptions}
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	name := line.parseName()
	if name == "" {
		return nil
	}

	opt, ok := registered[name]
	if !ok {
		return fmt.Errorf("no option: %s registered, line: %d", name, lineNumber)
	}

	switch opt.ty {
	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by values, line: %d", name, lineNumber)
		}
		return opt.create("", nil)

	case TypeOption:
		value := line.parseValue()
		line.skipSpace()
		if value == "" || !line.isEOL() {
			return fmt.Errorf("option: %s requires a single value, line: %d", name, lineNumber)
		}
		return opt.create(value, nil)

	case TypeFile:
		line.skipSpace()
		if line.isEOL() {
			return fmt.Errorf("option: %s requires a file name, line: %d", name, lineNumber)
		}
		line.pos--
		value, ok := line.parseQuoteString()
		if !ok || value == "" {
			return fmt.Errorf("invalid file name for option: %s, line: %d", name, lineNumber)
		}
		return opt.create(value, nil)

	case TypeOptions:
		options, err := line.parseOptions()
		if err != nil {
			return err
		}
		return opt.create("", options)
	}
	return nil
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
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
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Return next letter or digit in line. 0 if EOL or space.
func (line *optionLine) getNext(inQuote bool) byte {
	line.pos++
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) || inQuote {
		return by
	}
	return 0
}

// Peek at next character.
func (line *optionLine) getPeek() byte {
	if (line.pos + 1) >= len(line.line) {
		return 0
	}
	return line.line[line.pos+1]
}

// Parse leading option name.
func (line *optionLine) parseName() string {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return ""
	}

	name := ""
	for {
		if line.isEOL() {
			break
		}
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			name += string([]byte{by})
			line.pos++
			continue
		}
		break
	}

	return strings.ToUpper(name)
}

// Parse single value parameter.
func (line *optionLine) parseValue() string {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return ""
	}

	value := ""
	for {
		if line.isEOL() {
			break
		}
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			value += string([]byte{by})
			line.pos++
			continue
		}
		break
	}
	return value
}

// Parse string that is "string" or just string.
func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	// If quote, set we are in quoted string
	if line.getPeek() == '"' {
		inQuote = true
		_ = line.getNext(true)
	}

	for {
		by := line.getNext(inQuote)
		// If processing a quoted string "" gets replaced by signal quote
		if by == '"' && inQuote {
			by = line.getNext(inQuote)
			if by != '"' {
				// Hit end of string.
				return value, true
			}
		}

		space := unicode.IsSpace(rune(by))
		// Space or comma terminates a no quoted string.
		if !inQuote && (space || by == 0 || by == ',') {
			return value, true
		}

		value += string(by)
		// If we hit end of line, stop processing.
		if line.isEOL() {
			return value, !inQuote
		}
	}
}

// Parse option name.
func (line *optionLine) getName() (string, error) {
	// Check if end of line.
	if line.isEOL() {
		return "", nil
	}

	// First character must be alphabetic.
	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		if !line.isEOL() {
			return "", fmt.Errorf("invalid option encountered line: %d [%d]", lineNumber, line.pos)
		}
		return "", nil
	}
	value := ""

	// Already verified that first character is letter,
	// so grab until not letter or number.
	for {
		value += string([]byte{by})
		by = line.getNext(false)
		if by == 0 {
			break
		}
	}

	return value, nil
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	// Skip leading space
	line.skipSpace()

	// Grab option name
	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	// Empty option.
	option := Option{Name: strings.ToUpper(value)}

	// If at end of line done.
	if line.isEOL() {
		return &option, nil
	}

	// Check if equals option.
	if line.line[line.pos] == '=' {
		v, ok := line.parseQuoteString()
		if ok {
			option.EqualOpt = v
		} else {
			return nil, fmt.Errorf("invalid quoted string line: %d [%d]", lineNumber, line.pos)
		}
	}

	// Skip any spaces.
	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++ // Skip comma
		// Skip space between , and next option
		line.skipSpace()
		v, err := line.getName()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		// Skip any trailing spaces.
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
