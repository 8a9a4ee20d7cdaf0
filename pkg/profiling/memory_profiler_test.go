// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package profiling

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProfileFunc(t *testing.T) {
	os.Setenv("GORELIA_PROFILE", "1")
	defer os.Unsetenv("GORELIA_PROFILE")

	ran := false
	summary := ProfileFunc("test", func() {
		ran = true
		_ = make([]float64, 1000)
	})

	if !ran {
		t.Fatal("ProfileFunc did not run the supplied function")
	}
	if summary.PeakAlloc == 0 {
		t.Error("expected a nonzero peak allocation under GORELIA_PROFILE=1")
	}
}

func TestWriteHeapProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.pprof")
	if err := WriteHeapProfile(path); err != nil {
		t.Fatalf("WriteHeapProfile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a nonempty heap profile")
	}
}

func TestEstimateMatrixMemory(t *testing.T) {
	got := EstimateMatrixMemory(100, 3)
	want := uint64(100*3*8 + 100*24)
	if got != want {
		t.Errorf("EstimateMatrixMemory(100, 3) = %d, want %d", got, want)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{500, "500 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestMonitorGoroutines(t *testing.T) {
	counts := MonitorGoroutines(120*time.Millisecond, 30*time.Millisecond)
	if len(counts) == 0 {
		t.Error("expected at least one goroutine-count sample")
	}
	for _, c := range counts {
		if c <= 0 {
			t.Errorf("unexpected non-positive goroutine count: %d", c)
		}
	}
}
