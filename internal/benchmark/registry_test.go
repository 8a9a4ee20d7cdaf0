// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license

package benchmark

import (
	"testing"

	"github.com/bitjungle/gorelia/pkg/testutil"
	"github.com/bitjungle/gorelia/pkg/types"
)

func TestLinear(t *testing.T) {
	ls := Linear(2, map[string]float64{"c0": 1, "c1": -1, "offset": -3})
	got := ls.Eval(0, []float64{10, 5})
	want := 10 - 5 - 3.0
	testutil.AssertAlmostEqual(t, want, got, testutil.DefaultTolerance, "Linear eval")

	grad := ls.Grad(0, []float64{10, 5})
	testutil.AssertSliceAlmostEqual(t, []float64{1, -1}, grad, testutil.DefaultTolerance, "Linear gradient")
}

func TestQuadraticDiff(t *testing.T) {
	ls := QuadraticDiff(2, nil)
	got := ls.Eval(0, []float64{2, 5})
	testutil.AssertAlmostEqual(t, -1, got, testutil.DefaultTolerance, "QuadraticDiff eval")

	grad := ls.Grad(0, []float64{2, 5})
	testutil.AssertSliceAlmostEqual(t, []float64{4, -1}, grad, testutil.DefaultTolerance, "QuadraticDiff gradient")
}

func TestBuildUnknownName(t *testing.T) {
	_, err := Build(types.LimitStateSpec{Name: "does-not-exist"}, 2)
	if err == nil {
		t.Error("expected error for unknown limit_state name")
	}
}

func TestBuildMarginalAllTypes(t *testing.T) {
	specs := []types.MarginalSpec{
		{Name: "a", Type: "normal", Params: map[string]float64{"mean": 0, "std": 1}},
		{Name: "b", Type: "lognormal", Params: map[string]float64{"mu_log": 0, "sigma_log": 1}},
		{Name: "c", Type: "uniform", Params: map[string]float64{"lo": 0, "hi": 1}},
		{Name: "d", Type: "gumbel", Params: map[string]float64{"mu": 0, "beta": 1}},
	}
	for _, spec := range specs {
		m, err := BuildMarginal(spec)
		if err != nil {
			t.Errorf("BuildMarginal(%s) error: %v", spec.Type, err)
			continue
		}
		if m.Name() != spec.Name {
			t.Errorf("BuildMarginal(%s).Name() = %q, want %q", spec.Type, m.Name(), spec.Name)
		}
	}

	if _, err := BuildMarginal(types.MarginalSpec{Type: "does-not-exist"}); err == nil {
		t.Error("expected error for unknown marginal type")
	}
}
