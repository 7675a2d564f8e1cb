/*
* k-nearest-neighbor entropy estimation module
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
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// Estimator maps a sample matrix (rows are i.i.d. draws) to an entropy
// estimate in bits.
type Estimator func(x *mat.Dense) (float64, error)

// tie-breaking noise amplitude for integer-valued samples
const noiseIntensity = 1e-10

// NpeetEntropy returns the Kozachenko-Leonenko k-nearest-neighbor entropy
// estimator:
//
//	H(X) = (ψ(n) - ψ(k) + d*ln2 + d*mean(ln ε_k)) / ln2
//
// where ε_k is the Chebyshev distance from each point to its k-th nearest
// neighbor. Low-amplitude uniform noise is added to every coordinate so that
// duplicate points do not produce zero distances. The noise is drawn from src,
// keeping runs reproducible under a fixed seed.
func NpeetEntropy(k int, src rand.Source) Estimator {
	rng := rand.New(src)
	return func(x *mat.Dense) (float64, error) {
		n, d := x.Dims()
		if k >= n {
			return 0, fmt.Errorf("npeet: k=%d must be smaller than the sample size %d", k, n)
		}

		pts := make([][]float64, n)
		for i := 0; i < n; i++ {
			row := make([]float64, d)
			for j := 0; j < d; j++ {
				row[j] = x.At(i, j) + noiseIntensity*rng.Float64()
			}
			pts[i] = row
		}

		var sumLog float64
		for i := 0; i < n; i++ {
			eps := kthNeighborDistance(pts, i, k)
			if eps <= 0 {
				return 0, errors.New("npeet: degenerate sample, zero k-NN distance")
			}
			sumLog += math.Log(eps)
		}

		nats := mathext.Digamma(float64(n)) - mathext.Digamma(float64(k)) +
			float64(d)*math.Ln2 + float64(d)*sumLog/float64(n)
		return nats / math.Ln2, nil
	}
}

// kthNeighborDistance returns the Chebyshev distance from pts[i] to its k-th
// nearest neighbor, keeping the k smallest distances seen so far.
func kthNeighborDistance(pts [][]float64, i, k int) float64 {
	nearest := make([]float64, 0, k)
	for j, q := range pts {
		if j == i {
			continue
		}
		dist := chebyshev(pts[i], q)
		if len(nearest) < k {
			nearest = insertSorted(nearest, dist)
		} else if dist < nearest[k-1] {
			nearest = insertSorted(nearest[:k-1], dist)
		}
	}
	return nearest[len(nearest)-1]
}

func insertSorted(sorted []float64, v float64) []float64 {
	pos := len(sorted)
	for pos > 0 && sorted[pos-1] > v {
		pos--
	}
	sorted = append(sorted, 0)
	copy(sorted[pos+1:], sorted[pos:])
	sorted[pos] = v
	return sorted
}

func chebyshev(p, q []float64) float64 {
	var max float64
	for j := range p {
		if diff := math.Abs(p[j] - q[j]); diff > max {
			max = diff
		}
	}
	return max
}
