// Package rankgroup simulates a collective call across every rank of a
// Communicator by running one goroutine per rank and joining them with
// errgroup.
//
// Production esio callers never see this package: a real Handle pairs one
// process with one rank, and "collective" simply means "every process in
// the job calls this function." rankgroup exists so that tests can exercise
// multi-rank behavior (layout0's file-selection union across ranks, for
// instance) in a single Go process, via the in-process RankCommunicator.
package rankgroup

import "golang.org/x/sync/errgroup"

// Do runs fn once per rank in [0, size) concurrently and returns the first
// error encountered, if any, once every rank has returned. fn takes no
// context; callers that need early cancellation should have fn observe a
// context captured in its closure.
func Do(size int, fn func(rank int) error) error {
	var eg errgroup.Group
	for rank := 0; rank < size; rank++ {
		rank := rank
		eg.Go(func() error {
			return fn(rank)
		})
	}
	return eg.Wait()
}
