// Package filestore is the one concrete substrate.File/substrate.Dataset
// implementation shipped with esio: a single-process container format with
// a fixed superblock followed by directory tables sized for datasets and
// attributes. Directories are small and rewritten wholesale on every
// structural change, while dataset payloads are appended once and then
// updated in place via WriteAt, matching the "create metadata before first
// payload transfer, payload afterwards" dataset lifecycle.
package filestore

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/substrate"
)

const (
	magic = uint32(0x4f534945) // "EISO" read little-endian, analogous to squashfs's "hsqs"

	// controlRegionSize is the fixed-size prefix of the file reserved for
	// the header and directory tables. Dataset payloads are appended after
	// it. Restart checkpoints carry a handful of named fields, so this is
	// generous without needing to be dynamically grown.
	controlRegionSize = 4 << 20
)

type datasetRecord struct {
	Name           string
	PayloadOffset  int64
	PayloadLength  int64
	Shape          [3]int64
	Kind           substrate.ElementKind
	ComponentCount int32
}

type attributeRecord struct {
	Owner string // "" for a file-level attribute
	Name  string
	Kind  substrate.ElementKind
	Data  []byte
}

type container struct {
	f    *os.File
	next int64 // next free payload offset

	datasets []datasetRecord
	attrs    []attributeRecord
}

func createContainer(f *os.File) *container {
	return &container{f: f, next: controlRegionSize}
}

// loadContainer reads an existing container's header and directory tables.
func loadContainer(f *os.File) (*container, error) {
	hdr := make([]byte, controlRegionSize)
	if _, err := io.ReadFull(f, hdr); err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: reading control region: %w", err)
	}
	r := bytes.NewReader(hdr)

	var gotMagic, version uint32
	var datasetCount, attrCount uint32
	var next int64
	for _, field := range []*uint32{&gotMagic, &version} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return nil, errs.New(errs.ESANITY, "filestore: truncated header: %w", err)
		}
	}
	if gotMagic != magic {
		return nil, errs.New(errs.ESANITY, "filestore: bad magic %x", gotMagic)
	}
	if err := binary.Read(r, binary.LittleEndian, &next); err != nil {
		return nil, errs.New(errs.ESANITY, "filestore: truncated header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &datasetCount); err != nil {
		return nil, errs.New(errs.ESANITY, "filestore: truncated header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &attrCount); err != nil {
		return nil, errs.New(errs.ESANITY, "filestore: truncated header: %w", err)
	}

	c := &container{f: f, next: next}
	for i := uint32(0); i < datasetCount; i++ {
		rec, err := readDatasetRecord(r)
		if err != nil {
			return nil, err
		}
		c.datasets = append(c.datasets, rec)
	}
	for i := uint32(0); i < attrCount; i++ {
		rec, err := readAttributeRecord(r)
		if err != nil {
			return nil, err
		}
		c.attrs = append(c.attrs, rec)
	}
	return c, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeDatasetRecord(w io.Writer, rec datasetRecord) error {
	if err := writeString(w, rec.Name); err != nil {
		return err
	}
	fields := []int64{rec.PayloadOffset, rec.PayloadLength, rec.Shape[0], rec.Shape[1], rec.Shape[2]}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, int32(rec.Kind)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, rec.ComponentCount)
}

func readDatasetRecord(r io.Reader) (datasetRecord, error) {
	var rec datasetRecord
	name, err := readString(r)
	if err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt dataset record: %w", err)
	}
	rec.Name = name
	fields := make([]int64, 5)
	for i := range fields {
		if err := binary.Read(r, binary.LittleEndian, &fields[i]); err != nil {
			return rec, errs.New(errs.ESANITY, "filestore: corrupt dataset record: %w", err)
		}
	}
	rec.PayloadOffset, rec.PayloadLength = fields[0], fields[1]
	rec.Shape = [3]int64{fields[2], fields[3], fields[4]}
	var kind int32
	if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt dataset record: %w", err)
	}
	rec.Kind = substrate.ElementKind(kind)
	if err := binary.Read(r, binary.LittleEndian, &rec.ComponentCount); err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt dataset record: %w", err)
	}
	return rec, nil
}

func writeAttributeRecord(w io.Writer, rec attributeRecord) error {
	if err := writeString(w, rec.Owner); err != nil {
		return err
	}
	if err := writeString(w, rec.Name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(rec.Kind)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(rec.Data))); err != nil {
		return err
	}
	_, err := w.Write(rec.Data)
	return err
}

func readAttributeRecord(r io.Reader) (attributeRecord, error) {
	var rec attributeRecord
	owner, err := readString(r)
	if err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt attribute record: %w", err)
	}
	name, err := readString(r)
	if err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt attribute record: %w", err)
	}
	var kind int32
	if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt attribute record: %w", err)
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt attribute record: %w", err)
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return rec, errs.New(errs.ESANITY, "filestore: corrupt attribute record: %w", err)
	}
	rec.Owner, rec.Name, rec.Kind, rec.Data = owner, name, substrate.ElementKind(kind), data
	return rec, nil
}

// encode serializes the header and directory tables without touching disk,
// used both by persist and by Create's initial renameio-published skeleton.
func (c *container) encode() ([]byte, error) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, magic)
	binary.Write(&buf, binary.LittleEndian, uint32(1)) // version
	binary.Write(&buf, binary.LittleEndian, c.next)
	binary.Write(&buf, binary.LittleEndian, uint32(len(c.datasets)))
	binary.Write(&buf, binary.LittleEndian, uint32(len(c.attrs)))
	for _, rec := range c.datasets {
		if err := writeDatasetRecord(&buf, rec); err != nil {
			return nil, errs.Wrap(errs.EFAILED, err)
		}
	}
	for _, rec := range c.attrs {
		if err := writeAttributeRecord(&buf, rec); err != nil {
			return nil, errs.Wrap(errs.EFAILED, err)
		}
	}
	if buf.Len() > controlRegionSize {
		return nil, errs.New(errs.ENOMEM, "filestore: control region overflow (%d > %d bytes); too many datasets/attributes", buf.Len(), controlRegionSize)
	}
	return buf.Bytes(), nil
}

// persist rewrites the whole control region in place. Not crash-atomic by
// itself — the guarantee made is durability past a successful Flush/Close,
// not survival of a mid-write crash, and initial file creation is
// published atomically via renameio (see file.go).
func (c *container) persist() error {
	raw, err := c.encode()
	if err != nil {
		return err
	}
	padded := make([]byte, controlRegionSize)
	copy(padded, raw)
	if _, err := c.f.WriteAt(padded, 0); err != nil {
		return errs.New(errs.EFAILED, "filestore: writing control region: %w", err)
	}
	return nil
}

func (c *container) findDataset(name string) (*datasetRecord, bool) {
	for i := range c.datasets {
		if c.datasets[i].Name == name {
			return &c.datasets[i], true
		}
	}
	return nil, false
}

func (c *container) findAttribute(owner, name string) (*attributeRecord, bool) {
	for i := range c.attrs {
		if c.attrs[i].Owner == owner && c.attrs[i].Name == name {
			return &c.attrs[i], true
		}
	}
	return nil, false
}

func (c *container) allocate(n int64) int64 {
	off := c.next
	// Keep payload regions 8-byte aligned, matching squashfs's general
	// habit of aligning metadata blocks.
	aligned := (n + 7) &^ 7
	c.next += aligned
	return off
}
