// Package restart implements the restart-file rotation algorithm: parsing
// a templated filename's index slot and renaming existing files up by one,
// preserving a fixed retention window. Rotation touches only the
// filesystem — it takes no Communicator and must be called by exactly one
// rank.
package restart

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-esio/esio/internal/errs"
)

// Template is a parsed restart filename template: a directory, and a
// basename split into prefix + a single contiguous run of '#' + suffix.
type Template struct {
	Dir       string
	Base      string // original basename, hashes intact
	Prefix    string
	Suffix    string
	HashCount int
}

// ParseTemplate splits tmpl into a directory and a basename containing
// exactly one contiguous run of '#' characters (the index slot). Any other
// shape — zero hashes, or two non-adjacent runs — is a usage error.
func ParseTemplate(tmpl string) (Template, error) {
	dir := filepath.Dir(tmpl)
	base := filepath.Base(tmpl)

	first := strings.IndexByte(base, '#')
	if first < 0 {
		return Template{}, errs.New(errs.EINVAL, "restart: template %q must contain at least one '#': %w", tmpl, ErrUsage)
	}
	n := 0
	for first+n < len(base) && base[first+n] == '#' {
		n++
	}
	suffix := base[first+n:]
	if strings.IndexByte(suffix, '#') >= 0 {
		return Template{}, errs.New(errs.EINVAL, "restart: template %q cannot contain multiple non-adjacent '#' runs: %w", tmpl, ErrUsage)
	}

	return Template{
		Dir:       dir,
		Base:      base,
		Prefix:    base[:first],
		Suffix:    suffix,
		HashCount: n,
	}, nil
}

// format renders the index into this template's slot at the given digit
// width.
func (t Template) format(width, index int) string {
	return t.Prefix + fmt0pad(index, width) + t.Suffix
}

func fmt0pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func charAt(s string, idx int) byte {
	if idx < 0 || idx >= len(s) {
		return 0
	}
	return s[idx]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// maxIndex mirrors the original C code's "INT_MAX - 1" overflow ceiling.
const maxIndex = 1<<31 - 1 - 1

// nextIndex parses name against tmpl's index slot. It returns:
//   - 0 if name does not match tmpl at all;
//   - errval if tmpl is malformed (not a usage of the single-# grammar) or
//     the parsed index would overflow;
//   - otherwise, the parsed index value plus one.
//
// This is a direct port of the original C library's restart_nextindex.
func nextIndex(tmpl, name string, errval int) int {
	i := 0
	for i < len(tmpl) && i < len(name) && tmpl[i] == name[i] {
		i++
	}
	if i == len(tmpl) {
		return errval // tmpl is a strict prefix of name with no slot: usage error
	}
	if tmpl[i] != '#' {
		return 0
	}
	if i >= len(name) || !isDigit(name[i]) {
		return 0
	}

	j, k := i, i+1
	for charAt(tmpl, k) != 0 {
		if tmpl[k] == '#' {
			j = k
		}
		k++
	}

	l := i + 1
	for charAt(name, l) != 0 {
		l++
	}

	for k > j && l > i && charAt(tmpl, k) == charAt(name, l) {
		k--
		l--
	}
	if charAt(tmpl, k) != '#' {
		return 0
	}

	for ii := i; ii < j; ii++ {
		if tmpl[ii] != '#' {
			return errval // non-contiguous '#' run: usage error
		}
	}

	if l+1 > len(name) {
		return 0
	}
	digits := name[i : l+1]
	val, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	if val > uint64(maxIndex) {
		return errval
	}

	return int(val) + 1
}

// NextIndex is nextIndex exported for tests and callers that want to
// validate a template/name pair directly.
func NextIndex(tmpl, name string, errval int) int {
	return nextIndex(tmpl, name, errval)
}
