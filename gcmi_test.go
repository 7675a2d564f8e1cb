/*
* Gaussian-copula entropy estimation tests
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestGcmiStandardNormal(t *testing.T) {
	src := rand.NewSource(10)
	x, entropyTrue := NormalFamily.Sample(src, 1000, 2, 1)
	estimate, err := GcmiEntropy()(x)
	require.NoError(t, err)
	// copula marginals are exactly standard normal, so the estimate matches
	// the true value up to sampling error
	assert.InDelta(t, entropyTrue, estimate, 0.2)
}

func TestGcmiMonotoneInvariance(t *testing.T) {
	src := rand.NewSource(11)
	x, _ := ExponentialFamily.Sample(src, 500, 3, 2)
	n, d := x.Dims()

	scaled := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			scaled.Set(i, j, 5*x.At(i, j)+1)
		}
	}

	gcmi := GcmiEntropy()
	base, err := gcmi(x)
	require.NoError(t, err)
	transformed, err := gcmi(scaled)
	require.NoError(t, err)
	// the rank transform is invariant under strictly increasing maps
	assert.InDelta(t, base, transformed, 1e-9)
}

func TestGcmiDegenerateSamples(t *testing.T) {
	// all-identical samples make every copula column equal, so the covariance
	// is singular
	x := mat.NewDense(50, 3, nil)
	_, err := GcmiEntropy()(x)
	require.Error(t, err)
}

func TestGcmiTooFewSamples(t *testing.T) {
	x := mat.NewDense(3, 5, nil)
	_, err := GcmiEntropy()(x)
	require.Error(t, err)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []int{3, 1, 4, 2}, ranks([]float64{2.5, -1, 7, 0}))
	// ties are broken by original position
	assert.Equal(t, []int{1, 2, 3}, ranks([]float64{5, 5, 5}))
}

func TestGcmiEstimateIsFinite(t *testing.T) {
	src := rand.NewSource(12)
	x, _ := RandintFamily.Sample(src, 400, 2, 20)
	estimate, err := GcmiEntropy()(x)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(estimate))
	assert.False(t, math.IsInf(estimate, 0))
}
