// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license

package cmd

import (
	"testing"

	"github.com/bitjungle/gorelia/internal/benchmark"
	"github.com/bitjungle/gorelia/internal/config"
	"github.com/bitjungle/gorelia/internal/datasets"
	"github.com/bitjungle/gorelia/pkg/types"
)

func TestFilterDesignPointsEmptySelection(t *testing.T) {
	points := []types.DesignPoint{{Beta: 1}, {Beta: 2}}
	got, err := filterDesignPoints(points, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected all points with empty selection, got %d", len(got))
	}
}

func TestFilterDesignPointsSelection(t *testing.T) {
	points := []types.DesignPoint{{Beta: 1}, {Beta: 2}, {Beta: 3}}
	got, err := filterDesignPoints(points, "1,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Beta != 1 || got[1].Beta != 3 {
		t.Errorf("unexpected selection result: %+v", got)
	}
}

func TestFilterDesignPointsOutOfBounds(t *testing.T) {
	points := []types.DesignPoint{{Beta: 1}}
	if _, err := filterDesignPoints(points, "5"); err == nil {
		t.Error("expected error for out-of-bounds component index")
	}
}

func TestResolveSampler(t *testing.T) {
	for _, name := range []string{"", "random", "antithetic", "lhs"} {
		if _, err := resolveSampler(name); err != nil {
			t.Errorf("resolveSampler(%q): unexpected error: %v", name, err)
		}
	}
	if _, err := resolveSampler("unknown"); err == nil {
		t.Error("expected error for unknown sampler name")
	}
}

func TestLoadModelFileBenchmark(t *testing.T) {
	model, err := loadModelFile("", "linear-2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.Name != "linear-2d" {
		t.Errorf("expected model name 'linear-2d', got %q", model.Name)
	}
}

func TestLoadModelFileUnknownBenchmark(t *testing.T) {
	if _, err := loadModelFile("", "does-not-exist"); err == nil {
		t.Error("expected error for unknown benchmark name")
	}
}

func TestLoadModelFileNeitherProvided(t *testing.T) {
	if _, err := loadModelFile("", ""); err == nil {
		t.Error("expected error when neither --model nor --benchmark is provided")
	}
}

// Importance sampling's result should carry the FORM design point it was
// centered on, so downstream reporting (component filtering, the ellipse
// diagnostic) has something to work with.
func TestRunMethodImportanceCarriesDesignPoint(t *testing.T) {
	model := datasets.MustGetModel("linear-2d")
	cfg := config.DefaultConfig()
	joint, ls, err := benchmark.BuildProblem(model, cfg.Joint)
	if err != nil {
		t.Fatalf("BuildProblem: %v", err)
	}

	result, err := runMethod(joint, ls, "importance", 2000, 7, "", cfg.Optimizer)
	if err != nil {
		t.Fatalf("runMethod: %v", err)
	}
	if len(result.DesignPoints) == 0 {
		t.Fatal("expected importance result to carry a design point from FORM")
	}
}
