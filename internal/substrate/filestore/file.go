package filestore

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio"
	"golang.org/x/exp/mmap"
	"golang.org/x/sys/unix"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/substrate"
)

// File is the filestore implementation of substrate.File: one process's
// open session onto a container file on a local (or network-mounted,
// POSIX-shared) filesystem.
type File struct {
	mu   sync.Mutex
	f    *os.File
	mr   *mmap.ReaderAt // non-nil for read-only sessions; serves ReadSelection
	c    *container
	path string

	readonly bool // opened with readwrite=false; Close does not rewrite the control region
}

// Create builds a fresh, empty container at path. With overwrite=false it
// fails if path already exists. The initial skeleton is published
// atomically via renameio's "write to temp, rename into place" pattern,
// after which the file is reopened for direct in-place writes.
func Create(path string, overwrite bool) (*File, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, errs.New(errs.EINVAL, "filestore: %s already exists", path)
		} else if !os.IsNotExist(err) {
			return nil, errs.New(errs.EFAILED, "filestore: stat %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: mkdir %s: %w", filepath.Dir(path), err)
	}

	t, err := renameio.TempFile("", path)
	if err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: create temp file for %s: %w", path, err)
	}
	defer t.Cleanup()

	c := createContainer(nil)
	skeleton := make([]byte, controlRegionSize)
	// c.persist() needs a real *os.File to WriteAt into; build the bytes
	// directly for the temp-file publish step instead.
	hdrBuf, err := c.encode()
	if err != nil {
		return nil, err
	}
	copy(skeleton, hdrBuf)
	if _, err := t.Write(skeleton); err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: writing skeleton: %w", err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: publishing %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, errs.New(errs.EFAILED, "filestore: reopening %s: %w", path, err)
	}
	cont, err := loadContainer(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, c: cont, path: path}, nil
}

// Open opens an existing container. readwrite selects O_RDWR vs O_RDONLY.
// A read-only open additionally mmaps the file (golang.org/x/exp/mmap),
// serving every subsequent ReadSelection without a read() syscall per
// hyperslab run.
func Open(path string, readwrite bool) (*File, error) {
	flag := os.O_RDONLY
	if readwrite {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New(errs.EINVAL, "filestore: %s does not exist", path)
		}
		return nil, errs.New(errs.EFAILED, "filestore: opening %s: %w", path, err)
	}
	c, err := loadContainer(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	fl := &File{f: f, c: c, path: path, readonly: !readwrite}
	if !readwrite {
		if mr, err := mmap.Open(path); err == nil {
			fl.mr = mr
		}
	}
	return fl, nil
}

func (fl *File) CreateDataset(name string, shape [3]int64, kind substrate.ElementKind, components int32) (substrate.Dataset, error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if _, ok := fl.c.findDataset(name); ok {
		return nil, errs.New(errs.EFAILED, "filestore: dataset %q already exists", name)
	}
	payloadLen := shape[0] * shape[1] * shape[2] * int64(components) * int64(kind.Size())
	off := fl.c.allocate(payloadLen)
	rec := datasetRecord{
		Name: name, PayloadOffset: off, PayloadLength: payloadLen,
		Shape: shape, Kind: kind, ComponentCount: components,
	}
	fl.c.datasets = append(fl.c.datasets, rec)
	if err := fl.c.persist(); err != nil {
		return nil, err
	}
	return &Dataset{file: fl, rec: rec}, nil
}

func (fl *File) OpenDataset(name string) (substrate.Dataset, bool, error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	rec, ok := fl.c.findDataset(name)
	if !ok {
		return nil, false, nil
	}
	return &Dataset{file: fl, rec: *rec}, true, nil
}

func (fl *File) WriteAttribute(owner, name string, kind substrate.ElementKind, values []byte) error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if rec, ok := fl.c.findAttribute(owner, name); ok {
		rec.Kind = kind
		rec.Data = append([]byte(nil), values...)
	} else {
		fl.c.attrs = append(fl.c.attrs, attributeRecord{
			Owner: owner, Name: name, Kind: kind, Data: append([]byte(nil), values...),
		})
	}
	return fl.c.persist()
}

func (fl *File) ReadAttribute(owner, name string, kind substrate.ElementKind, buf []byte) (int, bool, error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	rec, ok := fl.c.findAttribute(owner, name)
	if !ok {
		return 0, false, nil
	}
	n := copy(buf, rec.Data)
	return n, true, nil
}

func (fl *File) AttributeInfo(owner, name string) (substrate.ElementKind, int, bool) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	rec, ok := fl.c.findAttribute(owner, name)
	if !ok {
		return 0, 0, false
	}
	sz := rec.Kind.Size()
	if sz == 0 {
		return rec.Kind, 0, true
	}
	return rec.Kind, len(rec.Data) / sz, true
}

func (fl *File) Flush() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if err := fl.c.persist(); err != nil {
		return err
	}
	if err := unix.Fsync(int(fl.f.Fd())); err != nil {
		return errs.New(errs.EFAILED, "filestore: fsync %s: %w", fl.path, err)
	}
	return nil
}

func (fl *File) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.mr != nil {
		fl.mr.Close()
	}
	if !fl.readonly {
		if err := fl.c.persist(); err != nil {
			fl.f.Close()
			return err
		}
	}
	if err := unix.Fsync(int(fl.f.Fd())); err != nil {
		fl.f.Close()
		return errs.New(errs.EFAILED, "filestore: fsync on close %s: %w", fl.path, err)
	}
	if err := fl.f.Close(); err != nil {
		return errs.New(errs.EFAILED, "filestore: close %s: %w", fl.path, err)
	}
	return nil
}

// payloadWriter returns the *os.File and base offset backing a dataset's
// payload region, for Dataset.WriteSelection.
func (fl *File) payloadWriter(rec datasetRecord) (*os.File, int64) {
	return fl.f, rec.PayloadOffset
}

// payloadReader returns the io.ReaderAt and base offset backing a dataset's
// payload region, for Dataset.ReadSelection — the mmap session when one is
// open, otherwise the plain file descriptor.
func (fl *File) payloadReader(rec datasetRecord) (io.ReaderAt, int64) {
	if fl.mr != nil {
		return fl.mr, rec.PayloadOffset
	}
	return fl.f, rec.PayloadOffset
}
