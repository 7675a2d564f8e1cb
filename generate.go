/*
* Sample generation module
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
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleFunc draws an nSamples×nFeatures matrix of i.i.d. rows from one
// distribution family and returns it together with the exact differential
// entropy of the sampled distribution, in bits.
type SampleFunc func(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64)

// Family is one parametric distribution under test. XLabel describes the
// swept parameter on the plot axis.
type Family struct {
	Name   string
	XLabel string
	Sample SampleFunc
}

var (
	UniformFamily = Family{
		Name:   "uniform",
		XLabel: "X ~ Uniform(0, x)",
		Sample: sampleUniform,
	}
	UniformCenteredFamily = Family{
		Name:   "uniform_centered",
		XLabel: "X ~ Uniform(-x/2, x/2)",
		Sample: sampleUniformCentered,
	}
	ExponentialFamily = Family{
		Name:   "exponential",
		XLabel: "X ~ Exp(scale=x)",
		Sample: sampleExponential,
	}
	NormalFamily = Family{
		Name:   "normal",
		XLabel: "X ~ N(0, x^2)",
		Sample: sampleNormal,
	}
	NormalCorrelatedFamily = Family{
		Name:   "normal_correlated",
		XLabel: "X ~ N(0, A*A^T), A_ij ~ Uniform(0, x)",
		Sample: sampleNormalCorrelated,
	}
	RandintFamily = Family{
		Name:   "randint",
		XLabel: "X ~ Randint(0, x)",
		Sample: sampleRandint,
	}
)

func fillIID(nSamples, nFeatures int, draw func() float64) *mat.Dense {
	x := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			x.Set(i, j, draw())
		}
	}
	return x
}

func sampleUniform(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	dist := distuv.Uniform{Min: 0, Max: param, Src: src}
	x := fillIID(nSamples, nFeatures, dist.Rand)
	return x, EntropyUniform(param, nFeatures)
}

func sampleUniformCentered(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	dist := distuv.Uniform{Min: -param / 2, Max: param / 2, Src: src}
	x := fillIID(nSamples, nFeatures, dist.Rand)
	return x, EntropyUniform(param, nFeatures)
}

func sampleExponential(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	// param is the scale, the inverse of the rate.
	dist := distuv.Exponential{Rate: 1 / param, Src: src}
	x := fillIID(nSamples, nFeatures, dist.Rand)
	return x, EntropyExponential(param, nFeatures)
}

func sampleNormal(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	dist := distuv.Normal{Mu: 0, Sigma: param, Src: src}
	x := fillIID(nSamples, nFeatures, dist.Rand)
	return x, EntropyNormal(param, nFeatures)
}

func sampleRandint(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	rng := rand.New(src)
	high := int(param)
	x := fillIID(nSamples, nFeatures, func() float64 {
		return float64(rng.Intn(high + 1))
	})
	return x, EntropyRandint(param, nFeatures)
}

// GenerateNormalCorrelated draws from a zero-mean multivariate Normal with a
// random covariance Σ = A·Aᵀ, where A has i.i.d. Uniform(0, sigma) entries.
// The product form guarantees positive semi-definiteness, but the realized
// variances grow with the dimension, so the true entropy is computed from the
// realized Σ rather than from sigma alone. The covariance is returned for
// callers that need it.
func GenerateNormalCorrelated(src rand.Source, nSamples, nFeatures int, sigma float64) (*mat.Dense, float64, *mat.SymDense) {
	entry := distuv.Uniform{Min: 0, Max: sigma, Src: src}
	a := mat.NewDense(nFeatures, nFeatures, nil)
	for i := 0; i < nFeatures; i++ {
		for j := 0; j < nFeatures; j++ {
			a.Set(i, j, entry.Rand())
		}
	}

	var product mat.Dense
	product.Mul(a, a.T())
	cov := mat.NewSymDense(nFeatures, nil)
	for i := 0; i < nFeatures; i++ {
		for j := i; j < nFeatures; j++ {
			cov.SetSym(i, j, product.At(i, j))
		}
	}

	mu := make([]float64, nFeatures)
	normal, ok := distmv.NewNormal(mu, cov, src)
	if !ok {
		// Σ = A·Aᵀ is singular only on a measure-zero set of draws.
		log.Fatalf("generated covariance is not positive definite (sigma=%g, d=%d)", sigma, nFeatures)
	}

	x := mat.NewDense(nSamples, nFeatures, nil)
	row := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		normal.Rand(row)
		x.SetRow(i, row)
	}
	return x, EntropyNormalCovariance(cov), cov
}

func sampleNormalCorrelated(src rand.Source, nSamples, nFeatures int, param float64) (*mat.Dense, float64) {
	x, entropyTrue, _ := GenerateNormalCorrelated(src, nSamples, nFeatures, param)
	return x, entropyTrue
}
