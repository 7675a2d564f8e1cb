/*
* Estimator harness module
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
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// NamedEstimator pairs an estimator with the name it is reported under.
type NamedEstimator struct {
	Name     string
	Estimate Estimator
}

// EntropyTest runs every configured estimator on one sample matrix and
// compares against the known true entropy.
type EntropyTest struct {
	X           *mat.Dense
	EntropyTrue float64
	Estimators  []NamedEstimator
	Timer       *Timer
	Verbose     bool
}

// NewEntropyTest builds a harness for one sample matrix. Reshape scalar
// sequences with ColumnMatrix before calling.
func NewEntropyTest(x *mat.Dense, entropyTrue float64, estimators []NamedEstimator, timer *Timer) *EntropyTest {
	return &EntropyTest{
		X:           x,
		EntropyTrue: entropyTrue,
		Estimators:  estimators,
		Timer:       timer,
	}
}

// RunAll invokes every estimator on the sample matrix, timing each call. An
// estimator returning an error is recorded as NaN; a failure never aborts the
// remaining estimators.
func (et *EntropyTest) RunAll() map[string]float64 {
	estimated := make(map[string]float64, len(et.Estimators))
	for _, est := range et.Estimators {
		start := time.Now()
		value, err := est.Estimate(et.X)
		et.Timer.Record(est.Name, time.Since(start))
		if err != nil {
			value = math.NaN()
		}
		estimated[est.Name] = value
		if et.Verbose {
			fmt.Printf("%s: H(X)=%.3f (true=%.3f)\n", est.Name, value, et.EntropyTrue)
		}
	}
	return estimated
}
