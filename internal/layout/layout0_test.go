package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-esio/esio/internal/substrate"
)

func TestCreateDenseShape(t *testing.T) {
	if _, err := createDenseShape(0, 1, 1); err == nil {
		t.Fatalf("createDenseShape with a zero extent: want error, got nil")
	}
	shape, err := createDenseShape(2, 3, 4)
	if err != nil {
		t.Fatalf("createDenseShape: %v", err)
	}
	if want := [3]int64{2, 3, 4}; shape != want {
		t.Fatalf("createDenseShape = %v, want %v", shape, want)
	}
}

// TestBuildMemSelectionSingleRank checks layout0's mem-selection union for
// a single rank holding the whole array contiguously (stride already
// resolved to the natural value by the engine).
func TestBuildMemSelectionSingleRank(t *testing.T) {
	c := ResolvedAxis{Global: 2, Start: 0, Local: 2, Stride: 6}
	b := ResolvedAxis{Global: 3, Start: 0, Local: 3, Stride: 2}
	a := ResolvedAxis{Global: 2, Start: 0, Local: 2, Stride: 1}

	mem := buildMemSelection(c, b, a)
	if len(mem.Runs) != int(c.Local*b.Local) {
		t.Fatalf("buildMemSelection produced %d runs, want %d", len(mem.Runs), c.Local*b.Local)
	}

	var total int64
	for _, r := range mem.Runs {
		total += r.Count
	}
	if want := c.Local * b.Local * a.Local; total != want {
		t.Fatalf("buildMemSelection covers %d picks, want %d", total, want)
	}

	want := substrate.MemRun{Offset: 0, Stride: 1, Count: 2}
	if diff := cmp.Diff(want, mem.Runs[0]); diff != "" {
		t.Errorf("buildMemSelection.Runs[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFileSelection(t *testing.T) {
	c := ResolvedAxis{Global: 4, Start: 1, Local: 2, Stride: 0}
	b := ResolvedAxis{Global: 5, Start: 0, Local: 5, Stride: 0}
	a := ResolvedAxis{Global: 6, Start: 2, Local: 3, Stride: 0}

	got := buildFileSelection(c, b, a)
	want := substrate.FileSelection{Start: [3]int64{1, 0, 2}, Count: [3]int64{2, 5, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildFileSelection mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistrySelfCheck(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Register with a mismatched tag: want panic, got none")
		}
	}()
	Register(func(tag int) Strategy { return Strategy{Tag: tag + 1} })
}

func TestLayout0Registered(t *testing.T) {
	strat, err := Get(Layout0Tag)
	if err != nil {
		t.Fatalf("Get(Layout0Tag): %v", err)
	}
	if strat.Tag != Layout0Tag {
		t.Errorf("strat.Tag = %d, want %d", strat.Tag, Layout0Tag)
	}
	if _, err := Get(9999); err == nil {
		t.Errorf("Get(9999): want ESANITY error, got nil")
	}
}
