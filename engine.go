package esio

import (
	"unsafe"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/layout"
	"github.com/go-esio/esio/internal/metadata"
	"github.com/go-esio/esio/internal/substrate"
	"github.com/go-esio/esio/internal/trace"
)

// Numeric is the closed set of on-disk scalar kinds (integer and
// floating-point). The distributed-array engine (write/read) is written
// once against this constraint; the per-type public entry points in
// fields.go/planes.go/lines.go/attributes.go are thin instantiations of
// it.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

func kindOf[T Numeric](zero T) substrate.ElementKind {
	switch any(zero).(type) {
	case int32:
		return substrate.Int32
	case int64:
		return substrate.Int64
	case float32:
		return substrate.Float32
	case float64:
		return substrate.Float64
	default:
		panic("esio: unreachable element kind")
	}
}

// toBytes reinterprets buf's backing array as raw bytes without copying —
// the buffer is transferred as-is to the substrate's collective hyperslab
// write, exactly as a C caller would pass a raw pointer to esio_field_write.
func toBytes[T Numeric](buf []T) []byte {
	if len(buf) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*sz)
}

// resolveGroupStride converts a caller-supplied stride (measured in
// scalars, a multiple of components per validatePieces) into the
// component-group units the layout/filestore machinery works in, or
// substitutes natural (the contiguous group stride for this axis) when the
// caller asked for 0.
func resolveGroupStride(stride int64, components int32, natural int64) int64 {
	if stride == 0 {
		return natural
	}
	return stride / int64(components)
}

func validatePieces(components int32, c, b, a Piece) error {
	if components < 1 {
		return errs.New(errs.EINVAL, "esio: component count must be >= 1, got %d", components)
	}
	for axis, p := range map[string]Piece{"c": c, "b": b, "a": a} {
		if err := p.validate(); err != nil {
			return err
		}
		if p.Stride != 0 && p.Stride%int64(components) != 0 {
			return errs.New(errs.EINVAL, "esio: %s-axis stride %d is not a multiple of component count %d", axis, p.Stride, components)
		}
	}
	return nil
}

// resolvedAxes turns the caller's three Pieces into the ResolvedAxis triple
// layout strategies consume. Strides here are in component-group units
// (one unit per grid point, regardless of components), matching
// fileSelectionIter's cell-indexed idx — transfer() applies the
// components*scalar-size factor exactly once, on both the mem and file
// side.
func resolvedAxes(components int32, c, b, a Piece) (cr, br, ar layout.ResolvedAxis) {
	aStride := resolveGroupStride(a.Stride, components, 1)
	bStride := resolveGroupStride(b.Stride, components, a.Local)
	cStride := resolveGroupStride(c.Stride, components, b.Local*a.Local)
	return layout.ResolvedAxis{Global: c.Global, Start: c.Start, Local: c.Local, Stride: cStride},
		layout.ResolvedAxis{Global: b.Global, Start: b.Start, Local: b.Local, Stride: bStride},
		layout.ResolvedAxis{Global: a.Global, Start: a.Start, Local: a.Local, Stride: aStride}
}

// write implements the collective write algorithm for one numeric type T:
// probe, then create-with-metadata-before-payload or verify-and-overwrite.
func write[T Numeric](h *Handle, name string, buf []T, c, b, a Piece, components int32) error {
	if h == nil || name == "" {
		return errs.New(errs.EFAULT, "esio: write: handle and name must be non-nil/non-empty")
	}
	if err := validatePieces(components, c, b, a); err != nil {
		return err
	}
	var zero T
	kind := kindOf(zero)

	file, err := h.openFile()
	if err != nil {
		return err
	}

	block, exists, err := metadata.Read(file, name)
	if err != nil {
		return err
	}

	cr, br, ar := resolvedAxes(components, c, b, a)

	if !exists {
		tag := h.LayoutGet()
		strat, err := layout.Get(int(tag))
		if err != nil {
			return err
		}
		shape, err := strat.CreateGlobalShape(c.Global, b.Global, a.Global)
		if err != nil {
			return err
		}
		ds, err := file.CreateDataset(name, shape, kind, components)
		if err != nil {
			return errs.Wrap(errs.EFAILED, err)
		}
		if err := metadata.Write(file, name, int32(strat.Tag), shape[0], shape[1], shape[2], components); err != nil {
			ds.Close()
			return err
		}
		ev := trace.Event("esio.write.create:"+name, h.comm.Rank())
		err = strat.Write(ds, h.info, toBytes(buf), cr, br, ar, components, kind)
		ev.Done()
		if err != nil {
			ds.Close()
			return err
		}
		return ds.Close()
	}

	if block.C != c.Global || block.B != b.Global || block.A != a.Global {
		return errs.New(errs.EINVAL, "esio: write: %q shape (%d,%d,%d) does not match stored shape (%d,%d,%d)", name, c.Global, b.Global, a.Global, block.C, block.B, block.A)
	}
	if block.NComponents != components {
		return errs.New(errs.EINVAL, "esio: write: %q component count %d does not match stored %d", name, components, block.NComponents)
	}
	if err := metadata.ValidateLayoutTag(block.LayoutTag, layout.Count()); err != nil {
		return err
	}
	ds, ok, err := file.OpenDataset(name)
	if err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	if !ok {
		return errs.New(errs.EFAILED, "esio: write: %q has metadata but no dataset", name)
	}
	if !kind.Convertible(ds.ElementKind()) {
		ds.Close()
		return errs.New(errs.EINVAL, "esio: write: element type %s is not convertible to stored type %s", kind, ds.ElementKind())
	}
	strat, err := layout.Get(int(block.LayoutTag))
	if err != nil {
		ds.Close()
		return err
	}
	ev := trace.Event("esio.write.overwrite:"+name, h.comm.Rank())
	err = strat.Write(ds, h.info, toBytes(buf), cr, br, ar, components, kind)
	ev.Done()
	if err != nil {
		ds.Close()
		return err
	}
	return ds.Close()
}

// read implements the collective read algorithm for one numeric type T.
// Absence of the dataset is EFAILED (unlike write, where absence is the
// normal create path).
func read[T Numeric](h *Handle, name string, buf []T, c, b, a Piece, components int32) error {
	if h == nil || name == "" {
		return errs.New(errs.EFAULT, "esio: read: handle and name must be non-nil/non-empty")
	}
	if err := validatePieces(components, c, b, a); err != nil {
		return err
	}
	var zero T
	kind := kindOf(zero)

	file, err := h.openFile()
	if err != nil {
		return err
	}

	block, exists, err := metadata.Read(file, name)
	if err != nil {
		return err
	}
	if !exists {
		return errs.New(errs.EFAILED, "esio: read: %q does not exist", name)
	}
	if block.C != c.Global || block.B != b.Global || block.A != a.Global {
		return errs.New(errs.EINVAL, "esio: read: %q shape (%d,%d,%d) does not match stored shape (%d,%d,%d)", name, c.Global, b.Global, a.Global, block.C, block.B, block.A)
	}
	if block.NComponents != components {
		return errs.New(errs.EINVAL, "esio: read: %q component count %d does not match stored %d", name, components, block.NComponents)
	}
	if err := metadata.ValidateLayoutTag(block.LayoutTag, layout.Count()); err != nil {
		return err
	}

	ds, ok, err := file.OpenDataset(name)
	if err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	if !ok {
		return errs.New(errs.EFAILED, "esio: read: %q has metadata but no dataset", name)
	}
	if !kind.Convertible(ds.ElementKind()) {
		ds.Close()
		return errs.New(errs.EINVAL, "esio: read: element type %s is not convertible to stored type %s", kind, ds.ElementKind())
	}
	strat, err := layout.Get(int(block.LayoutTag))
	if err != nil {
		ds.Close()
		return err
	}
	cr, br, ar := resolvedAxes(components, c, b, a)
	ev := trace.Event("esio.read:"+name, h.comm.Rank())
	err = strat.Read(ds, h.info, toBytes(buf), cr, br, ar, components, kind)
	ev.Done()
	if err != nil {
		ds.Close()
		return err
	}
	return ds.Close()
}

// size implements the shape/size queries: field size, plane size and line
// size all reduce to a metadata probe.
func size(h *Handle, name string) (c, b, a int64, components int32, ok bool, err error) {
	if h == nil || name == "" {
		return 0, 0, 0, 0, false, errs.New(errs.EFAULT, "esio: size: handle and name must be non-nil/non-empty")
	}
	file, err := h.openFile()
	if err != nil {
		return 0, 0, 0, 0, false, err
	}
	block, exists, err := metadata.Read(file, name)
	if err != nil || !exists {
		return 0, 0, 0, 0, false, err
	}
	return block.C, block.B, block.A, block.NComponents, true, nil
}
