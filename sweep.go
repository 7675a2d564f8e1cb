/*
* Parameter sweep module
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

	"golang.org/x/exp/rand"
)

// SweepConfig fixes the sample size, dimensionality and the ordered parameter
// values for one family sweep.
type SweepConfig struct {
	NSamples  int
	NFeatures int
	Params    []float64
	Verbose   bool
}

// DefaultSweepConfig matches the standard benchmark setup: 10 linearly spaced
// parameter values in [1, 50].
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		NSamples:  1000,
		NFeatures: 10,
		Params:    Linspace(1, 50, 10),
	}
}

// SweepResult accumulates one row per parameter value: the true entropy and
// one column per estimator, NaN where an estimator failed.
type SweepResult struct {
	Family    string
	XLabel    string
	NSamples  int
	NFeatures int
	Params    []float64
	True      []float64
	Names     []string
	Estimated map[string][]float64
}

// RunSweep iterates the configured parameter values in order for one family,
// regenerating samples and running every estimator at each point.
func RunSweep(family Family, cfg SweepConfig, estimators []NamedEstimator, timer *Timer, src rand.Source) *SweepResult {
	result := &SweepResult{
		Family:    family.Name,
		XLabel:    family.XLabel,
		NSamples:  cfg.NSamples,
		NFeatures: cfg.NFeatures,
		Params:    cfg.Params,
		Estimated: make(map[string][]float64, len(estimators)),
	}
	for _, est := range estimators {
		result.Names = append(result.Names, est.Name)
	}

	for _, param := range cfg.Params {
		x, entropyTrue := family.Sample(src, cfg.NSamples, cfg.NFeatures, param)
		test := NewEntropyTest(x, entropyTrue, estimators, timer)
		test.Verbose = cfg.Verbose
		estimated := test.RunAll()

		result.True = append(result.True, entropyTrue)
		for _, name := range result.Names {
			result.Estimated[name] = append(result.Estimated[name], estimated[name])
		}
		log.Printf("%s sweep: param=%.2f true=%.3f", family.Name, param, entropyTrue)
	}
	return result
}
