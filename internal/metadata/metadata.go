// Package metadata implements the fixed-width per-dataset metadata block:
// an 8-integer attribute, conventionally named esio_metadata, that is the
// sole source of truth for a dataset's shape and on-disk layout.
package metadata

import (
	"encoding/binary"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/reporter"
	"github.com/go-esio/esio/internal/substrate"
)

// AttrName is the conventional attribute name carrying the metadata block.
const AttrName = "esio_metadata"

const (
	// fieldCount is the width of the stored block: major, minor, patch,
	// layout_tag, c, b, a, ncomponents.
	fieldCount = 8
	// probeCount is one wider than fieldCount: a sentinel occupies the
	// extra slot so an over-read by the substrate is detectable.
	probeCount = fieldCount + 1
	sentinel   = int32(0x5a5a5a5a)

	FormatMajor = 1
	FormatMinor = 0
	FormatPatch = 0
)

// Block is the parsed contents of a dataset's metadata attribute.
type Block struct {
	Major, Minor, Patch int32
	LayoutTag           int32
	C, B, A             int64
	NComponents         int32
}

// ValidateComponents checks a component count. esio has no fixed-length
// vector *kinds* of its own (the vector-ness comes from the caller-supplied
// component count), so this only validates that count: anything less than
// 1 is rejected as ESANITY.
func ValidateComponents(n int32) error {
	if n < 1 {
		return errs.New(errs.ESANITY, "metadata: component count must be >= 1, got %d", n)
	}
	return nil
}

// Write stamps the metadata block onto name within owner's file. This must
// happen before the first payload transfer and, once written, the block is
// immutable for the life of the dataset.
func Write(f substrate.File, name string, layoutTag int32, c, b, a int64, components int32) error {
	if err := ValidateComponents(components); err != nil {
		return err
	}
	values := []int32{FormatMajor, FormatMinor, FormatPatch, layoutTag, int32(c), int32(b), int32(a), components}
	buf := make([]byte, 4*fieldCount)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	if err := f.WriteAttribute(name, AttrName, substrate.Int32, buf); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	return nil
}

// Read probes for name's metadata block. ok is false, with no error and no
// reporter diagnostic, when the dataset does not exist — a normal outcome
// used to distinguish create from overwrite in the engine.
func Read(f substrate.File, name string) (block Block, ok bool, err error) {
	guard := reporter.Suspend()
	defer guard.Restore()

	probeBuf := make([]byte, 4*probeCount)
	// Seed the sentinel slot so an over-read that overwrites it is
	// detectable even if the substrate zero-fills unread bytes.
	binary.LittleEndian.PutUint32(probeBuf[fieldCount*4:], uint32(sentinel))

	n, found, rerr := f.ReadAttribute(name, AttrName, substrate.Int32, probeBuf)
	if rerr != nil {
		return Block{}, false, errs.Wrap(errs.EFAILED, rerr)
	}
	if !found {
		return Block{}, false, nil
	}
	if n != fieldCount*4 {
		return Block{}, false, errs.New(errs.ESANITY, "metadata: expected %d bytes, substrate returned %d", fieldCount*4, n)
	}
	if binary.LittleEndian.Uint32(probeBuf[fieldCount*4:]) != uint32(sentinel) {
		return Block{}, false, errs.New(errs.ESANITY, "metadata: sentinel overwritten, substrate over-read detected")
	}

	vals := make([]int32, fieldCount)
	for i := range vals {
		vals[i] = int32(binary.LittleEndian.Uint32(probeBuf[i*4:]))
	}
	block = Block{
		Major: vals[0], Minor: vals[1], Patch: vals[2],
		LayoutTag:   vals[3],
		C:           int64(vals[4]),
		B:           int64(vals[5]),
		A:           int64(vals[6]),
		NComponents: vals[7],
	}
	return block, true, nil
}

// ValidateLayoutTag checks a read-back layout tag against the registry
// size: it must satisfy 0 <= tag < registrySize.
func ValidateLayoutTag(tag int32, registrySize int) error {
	if tag < 0 || int(tag) >= registrySize {
		return errs.New(errs.ESANITY, "metadata: layout tag %d out of range [0,%d)", tag, registrySize)
	}
	return nil
}
