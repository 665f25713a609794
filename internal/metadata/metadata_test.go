package metadata_test

import (
	"path/filepath"
	"testing"

	"github.com/go-esio/esio/internal/metadata"
	"github.com/go-esio/esio/internal/substrate/filestore"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.esio")
	f, err := filestore.Create(path, false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if err := metadata.Write(f, "velocity", 0, 4, 5, 6, 3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	block, ok, err := metadata.Read(f, "velocity")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok {
		t.Fatalf("Read: ok = false, want true")
	}
	if block.C != 4 || block.B != 5 || block.A != 6 || block.NComponents != 3 || block.LayoutTag != 0 {
		t.Errorf("Read block = %+v, unexpected fields", block)
	}
	if block.Major != metadata.FormatMajor || block.Minor != metadata.FormatMinor || block.Patch != metadata.FormatPatch {
		t.Errorf("Read block version = %d.%d.%d, want %d.%d.%d", block.Major, block.Minor, block.Patch, metadata.FormatMajor, metadata.FormatMinor, metadata.FormatPatch)
	}
}

// TestReadAbsentIsCleanMiss checks that probing a dataset that was never
// written returns ok=false with no error, since the engine depends on this
// to pick create vs overwrite.
func TestReadAbsentIsCleanMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.esio")
	f, err := filestore.Create(path, false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	_, ok, err := metadata.Read(f, "nonexistent")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ok {
		t.Errorf("Read of nonexistent dataset: ok = true, want false")
	}
}

func TestValidateComponents(t *testing.T) {
	if err := metadata.ValidateComponents(0); err == nil {
		t.Errorf("ValidateComponents(0): want error, got nil")
	}
	if err := metadata.ValidateComponents(1); err != nil {
		t.Errorf("ValidateComponents(1): %v", err)
	}
}

func TestValidateLayoutTag(t *testing.T) {
	if err := metadata.ValidateLayoutTag(-1, 1); err == nil {
		t.Errorf("ValidateLayoutTag(-1, 1): want error, got nil")
	}
	if err := metadata.ValidateLayoutTag(1, 1); err == nil {
		t.Errorf("ValidateLayoutTag(1, 1): want error, got nil")
	}
	if err := metadata.ValidateLayoutTag(0, 1); err != nil {
		t.Errorf("ValidateLayoutTag(0, 1): %v", err)
	}
}
