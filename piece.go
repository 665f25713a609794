package esio

import "github.com/go-esio/esio/internal/errs"

// Piece describes a process's local slice of one axis of a distributed
// array: Global is the global extent, Start the zero-based global offset of
// the local piece, Local the local extent, and Stride the in-memory element
// stride (0 meaning "contiguous: stride equals the product of inner
// extents").
type Piece struct {
	Global int64
	Start  int64
	Local  int64
	Stride int64
}

// validate checks the per-axis invariants. When the rank does not
// participate in this axis at all (a degenerate 1-D/2-D wrapper axis),
// Local may be exactly 1 and Global exactly 1.
func (p Piece) validate() error {
	if p.Global < 0 {
		return errs.New(errs.EINVAL, "piece: global extent must be >= 0, got %d", p.Global)
	}
	if p.Start < 0 {
		return errs.New(errs.EINVAL, "piece: start must be >= 0, got %d", p.Start)
	}
	if p.Local < 1 {
		return errs.New(errs.EINVAL, "piece: local extent must be >= 1, got %d", p.Local)
	}
	if p.Start+p.Local > p.Global {
		return errs.New(errs.EINVAL, "piece: start+local (%d+%d) exceeds global extent %d", p.Start, p.Local, p.Global)
	}
	if p.Stride < 0 {
		return errs.New(errs.EINVAL, "piece: stride must be >= 0, got %d", p.Stride)
	}
	return nil
}
