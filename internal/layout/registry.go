// Package layout holds the process-wide, append-only table of on-disk
// layout strategies. Polymorphism here is by integer tag, not by
// subclassing — the registry is a plain table of function triples, a
// strategy table kept as data rather than a type hierarchy.
package layout

import (
	"sync"

	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/substrate"
)

// ResolvedAxis is one axis's local-piece description after the engine has
// substituted a Stride of 0 with the natural contiguous stride: strategies
// assume the caller has already done this substitution before arrival.
type ResolvedAxis struct {
	Global, Start, Local, Stride int64
}

// Strategy is one registry entry: a global-space constructor plus a writer
// and reader, keyed by a stable tag equal to its position in the registry.
type Strategy struct {
	Tag int

	// CreateGlobalShape validates/normalizes a requested (c,b,a) extent
	// into the shape this strategy will store on disk.
	CreateGlobalShape func(c, b, a int64) ([3]int64, error)

	Write func(ds substrate.Dataset, info substrate.Info, data []byte, c, b, a ResolvedAxis, components int32, kind substrate.ElementKind) error
	Read  func(ds substrate.Dataset, info substrate.Info, buf []byte, c, b, a ResolvedAxis, components int32, kind substrate.ElementKind) error
}

var (
	mu       sync.Mutex
	registry []Strategy
	frozen   bool
)

// Register appends a new strategy, assigning it the next tag. It must be
// called only from package init() functions, before any Get/Count/Write
// call freezes the registry: the registry is process-wide and immutable
// after initialization.
func Register(build func(tag int) Strategy) {
	mu.Lock()
	defer mu.Unlock()
	if frozen {
		panic("layout: Register called after registry was frozen")
	}
	tag := len(registry)
	s := build(tag)
	if s.Tag != tag {
		// Self-check: a strategy's numeric tag must equal its registry
		// position.
		panic("layout: strategy self-check failed: tag does not match registry position")
	}
	registry = append(registry, s)
}

// Count returns the number of registered layouts and freezes the registry.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	frozen = true
	return len(registry)
}

// Get returns the strategy for tag, or ESANITY if tag is out of range.
func Get(tag int) (Strategy, error) {
	mu.Lock()
	frozen = true
	defer mu.Unlock()
	if tag < 0 || tag >= len(registry) {
		return Strategy{}, errs.New(errs.ESANITY, "layout: tag %d out of range [0,%d)", tag, len(registry))
	}
	return registry[tag], nil
}
