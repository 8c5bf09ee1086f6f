/*
 * nanopond - Simulator options test cases.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/rountree/npcc/config/configparser"
	"github.com/rountree/npcc/sim/pond"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.cfg")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestPondSize(t *testing.T) {
	require.NoError(t, config.LoadConfigFile(writeConfig(t, "POND X=32 Y=24\n")))
	pond.Initialize()
	assert.Equal(t, 32, pond.SizeX())
	assert.Equal(t, 24, pond.SizeY())
}

func TestPondRejectsJunk(t *testing.T) {
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "POND Z=5\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "POND X=wide\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "POND X=0 Y=5\n")))
}

func TestFullConfig(t *testing.T) {
	cfg := `# everything at once
POND X=64 Y=48
REPORT FREQUENCY=1000
INFLOW FREQUENCY=50 BASE=500 VARIATION=200
MUTATION RATE=4000
KILL PENALTY=4
SEED 99
`
	require.NoError(t, config.LoadConfigFile(writeConfig(t, cfg)))
}

func TestRejectsBadValues(t *testing.T) {
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "REPORT FREQUENCY=0\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "INFLOW FREQUENCY=0\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "KILL PENALTY=0\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "MUTATION RATE=9999999999999\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "SEED abc\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "DEBUG NOSUCH=EXEC\n")))
	assert.Error(t, config.LoadConfigFile(writeConfig(t, "DEBUG VM=NOSUCH\n")))
}

func TestDebugOptions(t *testing.T) {
	require.NoError(t, config.LoadConfigFile(writeConfig(t,
		"DEBUG VM=EXEC,INTERACT CORE=SEED\n")))
}
