package esio

import "fmt"

// Communicator is the process-grouping abstraction a handle duplicates and
// holds for its whole lifetime: the number and index of this process within
// some group of cooperating processes, plus a preserved name. A real MPI
// binding would implement this over MPI_Comm; LocalCommunicator below
// implements it for single-process callers and for the in-process
// multi-rank simulation used by this package's tests.
type Communicator interface {
	Rank() int
	Size() int
	Name() string
	// Dup returns a private duplicate preserving Name.
	Dup() Communicator
}

// LocalCommunicator is a single-process Communicator of size 1. It is the
// right choice for any program that is itself the only writer of a restart
// file — the common case for tooling built on top of a larger simulation
// that already reduced its state to one rank, or for tests.
type LocalCommunicator struct {
	name string
}

// NewLocalCommunicator returns a size-1 Communicator named name.
func NewLocalCommunicator(name string) *LocalCommunicator {
	return &LocalCommunicator{name: name}
}

func (c *LocalCommunicator) Rank() int   { return 0 }
func (c *LocalCommunicator) Size() int   { return 1 }
func (c *LocalCommunicator) Name() string { return c.name }
func (c *LocalCommunicator) Dup() Communicator {
	return &LocalCommunicator{name: c.name}
}

// RankCommunicator is one rank's view of a simulated N-process group,
// sharing nothing but its Size/Name with its siblings. Built for tests that
// exercise the collective contract across several simulated ranks within
// one OS process, via internal/rankgroup.
type RankCommunicator struct {
	rank, size int
	name       string
}

// NewRankCommunicators returns size RankCommunicators, one per rank, all
// sharing name.
func NewRankCommunicators(name string, size int) []Communicator {
	comms := make([]Communicator, size)
	for i := 0; i < size; i++ {
		comms[i] = &RankCommunicator{rank: i, size: size, name: name}
	}
	return comms
}

func (c *RankCommunicator) Rank() int    { return c.rank }
func (c *RankCommunicator) Size() int    { return c.size }
func (c *RankCommunicator) Name() string { return c.name }
func (c *RankCommunicator) Dup() Communicator {
	return &RankCommunicator{rank: c.rank, size: c.size, name: c.name}
}

func (c *RankCommunicator) String() string {
	return fmt.Sprintf("%s[%d/%d]", c.name, c.rank, c.size)
}
