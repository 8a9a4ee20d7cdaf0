// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package marginal provides a small reference catalogue of 1-D input
// distributions satisfying the types.Marginal contract. Marginals are
// treated as an external, caller-supplied collaborator by the engine;
// this package exists so the benchmarks and examples are runnable
// end-to-end without requiring callers to bring their own statistics
// library.
//
// Normal and Gumbel wrap gonum.org/v1/gonum/stat/distuv directly.
// Lognormal is expressed in terms of Normal (CDF/PDF of ln X), and
// Uniform is closed-form; neither distuv.LogNormal nor distuv.Uniform's
// exact field layout could be confirmed against the reference corpus, so
// they are implemented against the well-known closed forms instead.
package marginal
