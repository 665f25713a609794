// Package esio is a parallel restart-file library for distributed
// simulations: it writes and reads named, block-distributed,
// multidimensional numeric arrays to a single shared file, where the file
// is accessed collectively by all processes of a Communicator and each
// process's portion is an arbitrary contiguous hyper-rectangle of the
// global index space.
package esio

import (
	"sync"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/layout"
	"github.com/go-esio/esio/internal/substrate"
	"github.com/go-esio/esio/internal/substrate/filestore"
)

// Handle is process-local state binding a duplicated Communicator, a
// collective-I/O info bag, an at-most-one open file, and a default layout
// tag for newly created datasets.
type Handle struct {
	mu            sync.Mutex
	comm          Communicator
	info          substrate.Info
	file          substrate.File
	filePath      string
	defaultLayout int32
}

// Initialize duplicates comm (the caller's original is left untouched),
// allocates a fresh info bag, and returns a Handle whose default layout
// tag is 0 (layout.Layout0Tag).
func Initialize(comm Communicator) (*Handle, error) {
	if comm == nil {
		return nil, errs.New(errs.EINVAL, "esio: Initialize: comm must not be nil")
	}
	h := &Handle{
		comm:          comm.Dup(),
		info:          substrate.Info{},
		defaultLayout: layout.Layout0Tag,
	}
	return h, nil
}

// Finalize is idempotent: it silently succeeds on a nil handle, closes any
// still-open file first, then releases the communicator duplicate and info
// bag.
func Finalize(h *Handle) error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file != nil {
		if err := h.file.Close(); err != nil {
			return err
		}
		h.file = nil
		h.filePath = ""
	}
	h.comm = nil
	h.info = nil
	return nil
}

// Communicator returns the handle's private communicator duplicate.
func (h *Handle) Communicator() Communicator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.comm
}

// FileCreate collectively creates path. With overwrite=true any existing
// file at path is truncated; with overwrite=false the call fails if path
// already exists. Fails with EINVAL if a file is already open on h.
func (h *Handle) FileCreate(path string, overwrite bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file != nil {
		return errs.New(errs.EINVAL, "esio: FileCreate: a file is already open on this handle")
	}
	f, err := filestore.Create(path, overwrite)
	if err != nil {
		return err
	}
	h.file, h.filePath = f, path
	return nil
}

// FileOpen collectively opens an existing file. Fails with EINVAL if a
// file is already open on h or the file does not exist.
func (h *Handle) FileOpen(path string, readwrite bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file != nil {
		return errs.New(errs.EINVAL, "esio: FileOpen: a file is already open on this handle")
	}
	f, err := filestore.Open(path, readwrite)
	if err != nil {
		return err
	}
	h.file, h.filePath = f, path
	return nil
}

// FileFlush makes all prior writes on the open file durable.
func (h *Handle) FileFlush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return errs.New(errs.EINVAL, "esio: FileFlush: no file is open")
	}
	return h.file.Flush()
}

// FileClose closes the open file. Fails with EINVAL if no file is open,
// but h remains usable for a subsequent FileCreate/FileOpen.
func (h *Handle) FileClose() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return errs.New(errs.EINVAL, "esio: FileClose: no file is open")
	}
	err := h.file.Close()
	h.file, h.filePath = nil, ""
	return err
}

// LayoutCount returns the number of registered on-disk layout strategies.
func LayoutCount() int { return layout.Count() }

// LayoutGet returns h's default layout tag, used when creating new
// datasets. Reading a dataset always uses the tag stored in its own
// metadata, independent of this default.
func (h *Handle) LayoutGet() int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.defaultLayout
}

// LayoutSet changes h's default layout tag for datasets created hereafter.
func (h *Handle) LayoutSet(tag int32) error {
	if tag < 0 || int(tag) >= layout.Count() {
		return errs.New(errs.EINVAL, "esio: LayoutSet: tag %d out of range [0,%d)", tag, layout.Count())
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultLayout = tag
	return nil
}

func (h *Handle) openFile() (substrate.File, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil, errs.New(errs.EINVAL, "esio: no file is open on this handle")
	}
	return h.file, nil
}
