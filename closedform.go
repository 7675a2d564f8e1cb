/*
* Closed-form entropy module
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

	"gonum.org/v1/gonum/mat"
)

// EntropyUniform returns the differential entropy, in bits, of nFeatures
// independent Uniform variables of the given width. The placement of the
// interval does not matter: Uniform(0, w) and Uniform(-w/2, w/2) have the
// same entropy.
func EntropyUniform(width float64, nFeatures int) float64 {
	return float64(nFeatures) * math.Log2(width)
}

// EntropyExponential returns the differential entropy, in bits, of nFeatures
// independent Exponential variables with the given scale (inverse rate).
func EntropyExponential(scale float64, nFeatures int) float64 {
	return float64(nFeatures) * (1 + math.Log(scale)) * math.Log2(math.E)
}

// EntropyNormal returns the differential entropy, in bits, of nFeatures
// independent Normal(0, sigma²) variables.
func EntropyNormal(sigma float64, nFeatures int) float64 {
	return float64(nFeatures) * math.Log2(sigma*math.Sqrt(2*math.Pi*math.E))
}

// EntropyNormalCovariance returns the differential entropy, in bits, of a
// multivariate Normal with the given covariance:
//
//	0.5 * (d*log2(2πe) + log2 det Σ)
//
// The log-determinant comes from a sign-log-determinant decomposition rather
// than a naive determinant, which would overflow or underflow for large d.
func EntropyNormalCovariance(cov mat.Symmetric) float64 {
	d := cov.Symmetric()
	logDet, _ := mat.LogDet(cov)
	return 0.5 * (float64(d)*math.Log2(2*math.Pi*math.E) + logDet/math.Ln2)
}

// EntropyRandint returns d*log2(width) for the discrete Uniform{0..width}
// family. This is the continuous log-width formula, an approximation: the
// exact entropy of a discrete uniform over width+1 values is d*log2(width+1).
func EntropyRandint(width float64, nFeatures int) float64 {
	return float64(nFeatures) * math.Log2(width)
}
