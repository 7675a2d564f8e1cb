/*
* Estimator harness tests
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func constEstimator(value float64) Estimator {
	return func(*mat.Dense) (float64, error) { return value, nil }
}

func failingEstimator() Estimator {
	return func(*mat.Dense) (float64, error) { return 0, errors.New("estimator blew up") }
}

func TestRunAllRecordsFailureAsNaN(t *testing.T) {
	x := ColumnMatrix([]float64{1, 2, 3})
	timer := NewTimer()
	estimators := []NamedEstimator{
		{Name: "const", Estimate: constEstimator(1.5)},
		{Name: "broken", Estimate: failingEstimator()},
	}

	estimated := NewEntropyTest(x, 1.0, estimators, timer).RunAll()

	require.Len(t, estimated, 2)
	assert.Equal(t, 1.5, estimated["const"])
	assert.True(t, math.IsNaN(estimated["broken"]))
	// a failed call is still timed
	assert.Equal(t, 1, timer.Calls("const"))
	assert.Equal(t, 1, timer.Calls("broken"))
}

func TestRunAllContinuesAfterFailure(t *testing.T) {
	x := ColumnMatrix([]float64{1, 2, 3})
	estimators := []NamedEstimator{
		{Name: "broken", Estimate: failingEstimator()},
		{Name: "const", Estimate: constEstimator(2.0)},
	}
	estimated := NewEntropyTest(x, 1.0, estimators, nil).RunAll()
	assert.Equal(t, 2.0, estimated["const"])
}

func TestColumnMatrixReshape(t *testing.T) {
	x := ColumnMatrix([]float64{4, 5, 6})
	n, d := x.Dims()
	require.Equal(t, 3, n)
	require.Equal(t, 1, d)
	assert.Equal(t, 5.0, x.At(1, 0))
}
