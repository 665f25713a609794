package restart

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(path), 0644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

// TestRotateRetentionWindow checks that rotating into a directory already
// holding the full retention window of restarts evicts the oldest.
func TestRotateRetentionWindow(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "restart-####.h5")
	for i := 0; i < 3; i++ {
		touch(t, filepath.Join(dir, formatName(t, tmpl, i)))
	}
	src := filepath.Join(dir, "pending.h5")
	touch(t, src)

	if err := Rotate(src, tmpl, 3); err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	if exists(t, src) {
		t.Errorf("src file %q should have been renamed away", src)
	}
	// old index 2 (oldest, keep=3) should have been evicted, not renamed to 3.
	if exists(t, filepath.Join(dir, formatName(t, tmpl, 3))) {
		t.Errorf("no file should have been promoted to index 3 with keep=3")
	}
	for i := 0; i < 3; i++ {
		if !exists(t, filepath.Join(dir, formatName(t, tmpl, i))) {
			t.Errorf("expected restart at index %d to exist after rotation", i)
		}
	}
}

// TestRotateWidthPromotion checks that the zero-pad width grows to fit the
// retention count even if the template has fewer '#'s.
func TestRotateWidthPromotion(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "restart-#.h5")
	src := filepath.Join(dir, "pending.h5")
	touch(t, src)

	if err := Rotate(src, tmpl, 15); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if !exists(t, filepath.Join(dir, "restart-00.h5")) {
		t.Errorf("expected restart-00.h5 (width promoted to 2 digits) to exist")
	}
}

func formatName(t *testing.T, tmpl string, index int) string {
	t.Helper()
	parsed, err := ParseTemplate(tmpl)
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	width := parsed.HashCount
	return parsed.format(width, index)
}

func TestRotateRejectsBadKeep(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pending.h5")
	touch(t, src)
	if err := Rotate(src, filepath.Join(dir, "r-#.h5"), 0); err == nil {
		t.Errorf("Rotate with keep=0: want error, got nil")
	}
}

func TestRotateMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := Rotate(filepath.Join(dir, "nope.h5"), filepath.Join(dir, "r-#.h5"), 1); err == nil {
		t.Errorf("Rotate with missing source: want error, got nil")
	}
}
