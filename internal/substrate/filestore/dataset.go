package filestore

import (
	"io"
	"os"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/substrate"
)

// Dataset is the filestore implementation of substrate.Dataset: a view
// onto one dense payload region of the shared container file.
type Dataset struct {
	file *File
	rec  datasetRecord
}

func (d *Dataset) Name() string                        { return d.rec.Name }
func (d *Dataset) Shape() [3]int64                      { return d.rec.Shape }
func (d *Dataset) ElementKind() substrate.ElementKind    { return d.rec.Kind }
func (d *Dataset) ComponentCount() int32                { return d.rec.ComponentCount }
func (d *Dataset) Close() error                          { return nil }

// fileSelectionIter yields, in row-major (c,b,a) order, the scalar-group
// (component-bundle) index of each grid cell selected by sel within shape.
func fileSelectionIter(shape [3]int64, sel substrate.FileSelection) func() (int64, bool) {
	ci, bi, ai := int64(0), int64(0), int64(0)
	done := sel.Count[0] == 0 || sel.Count[1] == 0 || sel.Count[2] == 0
	return func() (int64, bool) {
		if done {
			return 0, false
		}
		c := sel.Start[0] + ci
		b := sel.Start[1] + bi
		a := sel.Start[2] + ai
		idx := (c*shape[1]+b)*shape[2] + a

		ai++
		if ai >= sel.Count[2] {
			ai = 0
			bi++
			if bi >= sel.Count[1] {
				bi = 0
				ci++
				if ci >= sel.Count[0] {
					done = true
				}
			}
		}
		return idx, true
	}
}

// memSelectionIter yields, in definition order, the scalar-group offset of
// each pick described by sel's union of runs.
func memSelectionIter(sel substrate.MemSelection) func() (int64, bool) {
	run := 0
	pick := int64(0)
	return func() (int64, bool) {
		for run < len(sel.Runs) && pick >= sel.Runs[run].Count {
			run++
			pick = 0
		}
		if run >= len(sel.Runs) {
			return 0, false
		}
		off := sel.Runs[run].Offset + pick*sel.Runs[run].Stride
		pick++
		return off, true
	}
}

func (d *Dataset) transfer(file substrate.FileSelection, mem substrate.MemSelection, data []byte, write bool) error {
	groupSize := int64(d.rec.ComponentCount) * int64(d.rec.Kind.Size())
	if groupSize <= 0 {
		return errs.New(errs.ESANITY, "filestore: invalid element group size")
	}

	nextFile := fileSelectionIter(d.rec.Shape, file)
	nextMem := memSelectionIter(mem)

	var (
		writer *os.File
		reader io.ReaderAt
		base   int64
	)
	if write {
		writer, base = d.file.payloadWriter(d.rec)
	} else {
		reader, base = d.file.payloadReader(d.rec)
	}
	payloadBuf := make([]byte, groupSize)

	count := int64(0)
	for {
		fidx, fok := nextFile()
		midx, mok := nextMem()
		if fok != mok {
			return errs.New(errs.ESANITY, "filestore: mem/file selection cardinality mismatch")
		}
		if !fok {
			break
		}

		memStart := midx * groupSize
		memEnd := memStart + groupSize
		if memStart < 0 || memEnd > int64(len(data)) {
			return errs.New(errs.EINVAL, "filestore: local buffer too small for selection")
		}
		fileOff := base + fidx*groupSize
		if write {
			if _, err := writer.WriteAt(data[memStart:memEnd], fileOff); err != nil {
				return errs.New(errs.EFAILED, "filestore: write transfer: %w", err)
			}
		} else {
			if _, err := reader.ReadAt(payloadBuf, fileOff); err != nil {
				return errs.New(errs.EFAILED, "filestore: read transfer: %w", err)
			}
			copy(data[memStart:memEnd], payloadBuf)
		}
		count++
	}
	return nil
}

func (d *Dataset) WriteSelection(info substrate.Info, file substrate.FileSelection, mem substrate.MemSelection, data []byte) error {
	return d.transfer(file, mem, data, true)
}

func (d *Dataset) ReadSelection(info substrate.Info, file substrate.FileSelection, mem substrate.MemSelection, buf []byte) error {
	return d.transfer(file, mem, buf, false)
}
