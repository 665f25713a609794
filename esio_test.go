package esio_test

import (
	"path/filepath"
	"testing"

	"github.com/go-esio/esio"
)

func openHandle(t *testing.T) (*esio.Handle, string) {
	t.Helper()
	h, err := esio.Initialize(esio.NewLocalCommunicator(t.Name()))
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { esio.Finalize(h) })
	return h, filepath.Join(t.TempDir(), "restart.h5")
}

// TestFieldWriteReadRoundTrip writes a full field, closes and reopens the
// file, and checks the values and shape come back unchanged.
func TestFieldWriteReadRoundTrip(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if err := esio.WriteFieldDouble(h, "velocity", want, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0); err != nil {
		t.Fatalf("WriteFieldDouble: %v", err)
	}
	if err := h.FileClose(); err != nil {
		t.Fatalf("FileClose: %v", err)
	}

	if err := h.FileOpen(path, false); err != nil {
		t.Fatalf("FileOpen: %v", err)
	}
	got := make([]float64, 8)
	if err := esio.ReadFieldDouble(h, "velocity", got, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0); err != nil {
		t.Fatalf("ReadFieldDouble: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	c, b, a, n, ok, err := esio.FieldSize(h, "velocity")
	if err != nil || !ok {
		t.Fatalf("FieldSize: ok=%v err=%v", ok, err)
	}
	if c != 2 || b != 2 || a != 2 || n != 1 {
		t.Errorf("FieldSize = (%d,%d,%d,%d), want (2,2,2,1)", c, b, a, n)
	}
}

// TestFieldVectorWriteReadRoundTrip checks a vector field (ncomponents>1)
// with more than one point on the fastest axis round-trips correctly: each
// grid point's component group must land at its own offset, not be
// double-scaled by ncomponents on the memory side.
func TestFieldVectorWriteReadRoundTrip(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	defer h.FileClose()

	want := []float64{1, 2, 3, 4}
	if err := esio.WriteFieldVectorDouble(h, "velocity", want,
		1, 0, 1, 0,
		1, 0, 1, 0,
		2, 0, 2, 0, 2); err != nil {
		t.Fatalf("WriteFieldVectorDouble: %v", err)
	}

	got := make([]float64, 4)
	if err := esio.ReadFieldVectorDouble(h, "velocity", got,
		1, 0, 1, 0,
		1, 0, 1, 0,
		2, 0, 2, 0, 2); err != nil {
		t.Fatalf("ReadFieldVectorDouble: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	_, _, a, n, ok, err := esio.FieldSize(h, "velocity")
	if err != nil || !ok {
		t.Fatalf("FieldSize: ok=%v err=%v", ok, err)
	}
	if a != 2 || n != 2 {
		t.Errorf("FieldSize a,ncomponents = (%d,%d), want (2,2)", a, n)
	}
}

// TestWriteShapeMismatchIsRejected checks that writing an existing dataset
// with a different global shape is an error, not silently accepted or
// treated as a new dataset.
func TestWriteShapeMismatchIsRejected(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	defer h.FileClose()

	buf := []float64{1, 2, 3, 4}
	if err := esio.WriteFieldDouble(h, "velocity", buf, 2, 0, 2, 0, 1, 0, 1, 0, 2, 0, 2, 0); err != nil {
		t.Fatalf("WriteFieldDouble: %v", err)
	}
	err := esio.WriteFieldDouble(h, "velocity", buf, 3, 0, 3, 0, 1, 0, 1, 0, 2, 0, 2, 0)
	if err == nil {
		t.Fatalf("WriteFieldDouble with mismatched shape: want error, got nil")
	}
	if kind, ok := esio.KindOf(err); !ok || kind != esio.EINVAL {
		t.Errorf("KindOf(err) = (%v, %v), want (EINVAL, true)", kind, ok)
	}
}

// TestDoubleFileCloseFails checks that closing an already-closed handle
// returns an error instead of succeeding silently.
func TestDoubleFileCloseFails(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	if err := h.FileClose(); err != nil {
		t.Fatalf("FileClose: %v", err)
	}
	if err := h.FileClose(); err == nil {
		t.Errorf("second FileClose: want error, got nil")
	}
}

func TestReadMissingFieldFails(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	defer h.FileClose()

	buf := make([]float64, 4)
	err := esio.ReadFieldDouble(h, "nonexistent", buf, 2, 0, 2, 0, 1, 0, 1, 0, 2, 0, 2, 0)
	if err == nil {
		t.Errorf("ReadFieldDouble of nonexistent field: want error, got nil")
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	defer h.FileClose()

	if err := esio.WriteAttributeVectorInt32(h, "version", []int32{1, 2, 3}); err != nil {
		t.Fatalf("WriteAttributeVectorInt32: %v", err)
	}
	n, ok, err := esio.AttributeSizeV(h, "version")
	if err != nil || !ok || n != 3 {
		t.Fatalf("AttributeSizeV = (%d, %v, %v), want (3, true, nil)", n, ok, err)
	}
	got := make([]int32, 3)
	if err := esio.ReadAttributeVectorInt32(h, "version", got); err != nil {
		t.Fatalf("ReadAttributeVectorInt32: %v", err)
	}
	for i, v := range []int32{1, 2, 3} {
		if got[i] != v {
			t.Errorf("got[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestPlaneAndLineDegenerateToFieldShape(t *testing.T) {
	h, path := openHandle(t)
	if err := h.FileCreate(path, false); err != nil {
		t.Fatalf("FileCreate: %v", err)
	}
	defer h.FileClose()

	line := []float64{1, 2, 3, 4}
	if err := esio.WriteLineDouble(h, "profile", line, 4, 0, 4, 0); err != nil {
		t.Fatalf("WriteLineDouble: %v", err)
	}
	a, n, ok, err := esio.LineSize(h, "profile")
	if err != nil || !ok || a != 4 || n != 1 {
		t.Fatalf("LineSize = (%d,%d,%v), err=%v", a, n, ok, err)
	}
	c, b, _, _, ok, err := esio.FieldSize(h, "profile")
	if err != nil || !ok || c != 1 || b != 1 {
		t.Errorf("FieldSize of a line = (%d,%d), want degenerate (1,1)", c, b)
	}
}
