/*
* Call timing module
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
	"fmt"
	"os"
	"time"

	"github.com/montanaflynn/stats"
)

// Timer accumulates per-name call durations across a run. It is passed
// explicitly into the harness instead of living as a package-wide singleton.
type Timer struct {
	names   []string
	elapsed map[string][]float64 // seconds per call
}

func NewTimer() *Timer {
	return &Timer{elapsed: make(map[string][]float64)}
}

// Record adds one call duration under the given name. A nil Timer discards
// the measurement, so the harness works without one.
func (t *Timer) Record(name string, d time.Duration) {
	if t == nil {
		return
	}
	if _, seen := t.elapsed[name]; !seen {
		t.names = append(t.names, name)
	}
	t.elapsed[name] = append(t.elapsed[name], d.Seconds())
}

// Calls returns how many durations were recorded under the given name.
func (t *Timer) Calls(name string) int {
	if t == nil {
		return 0
	}
	return len(t.elapsed[name])
}

// Checkpoint appends the cumulative per-name timing statistics to a
// plain-text log file, one line per name in first-recorded order.
func (t *Timer) Checkpoint(fpath string) (err error) {
	file, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if _, err = fmt.Fprintf(file, "=== checkpoint %s ===\n", time.Now().Format(time.RFC3339)); err != nil {
		return err
	}
	for _, name := range t.names {
		seconds := t.elapsed[name]
		total, sumErr := stats.Sum(seconds)
		if sumErr != nil {
			return sumErr
		}
		mean, meanErr := stats.Mean(seconds)
		if meanErr != nil {
			return meanErr
		}
		max, maxErr := stats.Max(seconds)
		if maxErr != nil {
			return maxErr
		}
		_, err = fmt.Fprintf(file, "%s: calls=%d total=%.6fs mean=%.6fs max=%.6fs\n",
			name, len(seconds), total, mean, max)
		if err != nil {
			return err
		}
	}
	return err
}
