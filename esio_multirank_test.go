package esio_test

import (
	"path/filepath"
	"testing"

	"github.com/go-esio/esio"
	"github.com/go-esio/esio/internal/rankgroup"
)

// TestMultiRankFieldWriteReadRoundTrip simulates a collective field write
// split across two ranks along the c-axis, using internal/rankgroup to run
// each rank's local write concurrently against one shared Handle — the
// in-process stand-in for "every process in the job calls this". It then
// reads the whole field back from a single rank and checks every value
// landed in its rank's hyperslab.
func TestMultiRankFieldWriteReadRoundTrip(t *testing.T) {
	h, err := esio.Initialize(esio.NewLocalCommunicator("writer"))
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer esio.Finalize(h)

	path := filepath.Join(t.TempDir(), "restart.h5")
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}

	const cGlobal, bGlobal, aGlobal = 4, 2, 2
	const ranks = 2
	const cLocal = cGlobal / ranks

	rankBuf := func(rank int) []float64 {
		buf := make([]float64, cLocal*bGlobal*aGlobal)
		for k := 0; k < cLocal; k++ {
			for b := 0; b < bGlobal; b++ {
				for a := 0; a < aGlobal; a++ {
					buf[(k*bGlobal+b)*aGlobal+a] = float64(100*rank + k*bGlobal*aGlobal + b*aGlobal + a)
				}
			}
		}
		return buf
	}

	writeRank := func(rank int) error {
		buf := rankBuf(rank)
		return esio.WriteFieldDouble(h, "field", buf,
			cGlobal, int64(rank*cLocal), cLocal, 0,
			bGlobal, 0, bGlobal, 0,
			aGlobal, 0, aGlobal, 0)
	}

	// Rank 0 creates the dataset first: concurrent creators would race on
	// metadata.Write, which only one caller may perform — the
	// create-vs-overwrite split assumes a single collective caller
	// observes "absent".
	if err := writeRank(0); err != nil {
		t.Fatalf("writeRank(0): %v", err)
	}

	err = rankgroup.Do(ranks, func(rank int) error {
		return writeRank(rank)
	})
	if err != nil {
		t.Fatalf("rankgroup.Do: %v", err)
	}

	if err := h.FileClose(); err != nil {
		t.Fatalf("FileClose: %v", err)
	}
	if err := h.FileOpen(path, false); err != nil {
		t.Fatalf("FileOpen: %v", err)
	}

	got := make([]float64, cGlobal*bGlobal*aGlobal)
	if err := esio.ReadFieldDouble(h, "field", got, cGlobal, 0, cGlobal, 0, bGlobal, 0, bGlobal, 0, aGlobal, 0, aGlobal, 0); err != nil {
		t.Fatalf("ReadFieldDouble: %v", err)
	}

	for c := 0; c < cGlobal; c++ {
		rank := c / cLocal
		k := c % cLocal
		for b := 0; b < bGlobal; b++ {
			for a := 0; a < aGlobal; a++ {
				want := float64(100*rank + k*bGlobal*aGlobal + b*aGlobal + a)
				got := got[(c*bGlobal+b)*aGlobal+a]
				if got != want {
					t.Errorf("field[%d,%d,%d] = %v, want %v", c, b, a, got, want)
				}
			}
		}
	}
}
