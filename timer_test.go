/*
* Call timing tests
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerCheckpoint(t *testing.T) {
	timer := NewTimer()
	timer.Record("npeet", 120*time.Millisecond)
	timer.Record("npeet", 80*time.Millisecond)
	timer.Record("gcmi", 10*time.Millisecond)

	fpath := filepath.Join(t.TempDir(), "entropy.txt")
	require.NoError(t, timer.Checkpoint(fpath))

	content, err := os.ReadFile(fpath)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "npeet: calls=2")
	assert.Contains(t, text, "total=0.200000s")
	assert.Contains(t, text, "mean=0.100000s")
	assert.Contains(t, text, "max=0.120000s")
	assert.Contains(t, text, "gcmi: calls=1")

	// a second checkpoint appends, keeping the first block
	require.NoError(t, timer.Checkpoint(fpath))
	appended, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Greater(t, len(appended), len(content))
}

func TestTimerNilSafe(t *testing.T) {
	var timer *Timer
	timer.Record("npeet", time.Second)
	assert.Equal(t, 0, timer.Calls("npeet"))
}

func TestTimerKeepsFirstRecordedOrder(t *testing.T) {
	timer := NewTimer()
	timer.Record("b", time.Millisecond)
	timer.Record("a", time.Millisecond)
	timer.Record("b", time.Millisecond)
	assert.Equal(t, []string{"b", "a"}, timer.names)
}
