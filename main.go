/*
* Main benchmark application file
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
	"log"
	"path/filepath"

	"golang.org/x/exp/rand"
)

const benchmarkSeed = 26

func main() {
	if err := EnsureDirs(); err != nil {
		log.Fatal(err)
	}
	log.Printf("batch size: %d", BatchSize())

	src := rand.NewSource(benchmarkSeed)
	timer := NewTimer()
	estimators := []NamedEstimator{
		{Name: "npeet", Estimate: NpeetEntropy(3, src)},
		{Name: "gcmi", Estimate: GcmiEntropy()},
	}

	cfg := DefaultSweepConfig()
	families := []Family{
		RandintFamily,
		NormalCorrelatedFamily,
		UniformFamily,
		NormalFamily,
		ExponentialFamily,
	}

	for _, family := range families {
		result := RunSweep(family, cfg, estimators, timer, src)
		fpath := filepath.Join(ImagesDir, family.Name+".png")
		if err := PlotSweep(result, fpath); err != nil {
			log.Fatal(err)
		}
		log.Printf("saved %s", fpath)
	}

	logPath := filepath.Join(TimingsDir, "entropy.txt")
	if err := timer.Checkpoint(logPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("timings checkpointed to %s", logPath)
}
