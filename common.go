/*
* Common functions library
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
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const defaultBatchSize = 256

var (
	ResultsDir = "results"
	ImagesDir  = filepath.Join(ResultsDir, "images")
	TimingsDir = filepath.Join(ResultsDir, "timings")
)

// BatchSize reads the BATCH_SIZE environment variable, falling back to the
// default when unset or malformed.
func BatchSize() int {
	raw := os.Getenv("BATCH_SIZE")
	if raw == "" {
		return defaultBatchSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return defaultBatchSize
	}
	return size
}

// EnsureDirs creates the output directory tree for images and timing logs.
func EnsureDirs() error {
	for _, dir := range []string{ImagesDir, TimingsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Linspace returns num evenly spaced values covering [start, stop].
func Linspace(start, stop float64, num int) []float64 {
	return floats.Span(make([]float64, num), start, stop)
}

// ColumnMatrix reshapes a scalar sequence into an n×1 sample matrix so that
// one-dimensional data goes through the same estimator path as multivariate
// data.
func ColumnMatrix(values []float64) *mat.Dense {
	x := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		x.Set(i, 0, v)
	}
	return x
}
