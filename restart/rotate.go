package restart

import (
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-esio/esio/internal/errs"
)

// ErrUsage is wrapped into any error returned because of a malformed
// template, as opposed to a filesystem failure. Callers that want to tell
// "bad template" apart from "disk trouble" can check with errors.Is or
// KindOf(err) == EINVAL.
var ErrUsage = errs.New(errs.EINVAL, "restart: malformed template")

// Rotate renames srcPath into dstTemplate's index-0 slot, first shifting
// every existing file matching dstTemplate up by one index and dropping
// anything that would land outside [0, keep). A single rank must call this
// after every rank has finished writing src.
//
// Renames already performed are not rolled back if a later rename fails.
func Rotate(srcPath, dstTemplate string, keep int) error {
	if keep < 1 {
		return errs.New(errs.EINVAL, "restart: keep_howmany must be >= 1, got %d", keep)
	}
	if _, err := os.Stat(srcPath); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}

	tmpl, err := ParseTemplate(dstTemplate)
	if err != nil {
		return err
	}

	width := tmpl.HashCount
	if w := decimalWidth(keep); w > width {
		width = w
	}

	dir := tmpl.Dir
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if nextIndex(tmpl.Base, e.Name(), 0) > 0 {
			matches = append(matches, e.Name())
		}
	}
	sort.Slice(matches, func(i, j int) bool { return versionLess(matches[i], matches[j]) })

	for i := len(matches) - 1; i >= 0; i-- {
		name := matches[i]
		next := nextIndex(tmpl.Base, name, -1)
		if next <= 0 || next >= keep {
			continue // outside the retention window: leave it alone
		}
		oldPath := filepath.Join(dir, name)
		newPath := filepath.Join(dir, tmpl.format(width, next))
		if err := os.Rename(oldPath, newPath); err != nil {
			return errs.Wrap(errs.EFAILED, err)
		}
	}

	finalPath := filepath.Join(dir, tmpl.format(width, 0))
	if err := os.Rename(srcPath, finalPath); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	return nil
}

// decimalWidth returns how many decimal digits are needed to print every
// index in [0, keep): the digit count of keep-1, and at least 1.
func decimalWidth(keep int) int {
	if keep <= 1 {
		return 1
	}
	return int(math.Floor(math.Log10(float64(keep-1))) + 1)
}

// versionLess orders names the way GNU strverscmp does: runs of digits
// compare numerically (shorter numeric run first unless leading zeros make
// it longer), everything else compares byte-wise. This is what
// restart_rename relies on scandir+strverscmp for when walking a
// directory's matching restart files in index order.
func versionLess(a, b string) bool {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ca, cb := a[ia], b[ib]
		if isDigit(ca) && isDigit(cb) {
			sa, sb := ia, ib
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for ib < len(b) && isDigit(b[ib]) {
				ib++
			}
			na, nb := trimLeadingZeros(a[sa:ia]), trimLeadingZeros(b[sb:ib])
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ca != cb {
			return ca < cb
		}
		ia++
		ib++
	}
	return len(a)-ia < len(b)-ib
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
