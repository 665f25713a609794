// Command esio-rotate renames a freshly-written restart file into a
// templated retention window, shifting existing restarts up by one index
// and evicting anything that falls outside the window. It is the
// command-line front end for restart.Rotate, meant to run after every rank
// of a simulation has finished writing its pending restart file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-esio/esio/internal/cliutil"
	"github.com/go-esio/esio/internal/trace"
	"github.com/go-esio/esio/restart"
)

const help = `esio-rotate [-flags] <src> <dst-template>

Rename <src> into <dst-template>'s index-0 slot, shifting any existing
restarts matching <dst-template> up by one index and dropping whatever
falls outside the retention window.

Example:
  % esio-rotate -keep 5 restart.h5.pending restart-####.h5
`

func usage() {
	fmt.Fprint(os.Stderr, help)
	flag.PrintDefaults()
}

var (
	keep      = flag.Int("keep", 1, "number of restarts to retain")
	debug     = flag.Bool("debug", false, "format error messages with additional detail")
	tracefile = flag.String("tracefile", "", "path to store a chrome trace event file at (load in chrome://tracing)")
)

func funcmain() error {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	session, _, canc := cliutil.NewSession()
	defer canc()

	if *tracefile != "" {
		f, err := os.Create(*tracefile)
		if err != nil {
			return err
		}
		trace.Sink(f)
		session.Defer(f.Close)
	}

	ev := trace.Event("esio-rotate", 0)
	src, dstTemplate := flag.Arg(0), flag.Arg(1)
	err := restart.Rotate(src, dstTemplate, *keep)
	ev.Done()
	if err != nil {
		return err
	}
	return session.Close()
}

func main() {
	if err := funcmain(); err != nil {
		if *debug {
			fmt.Fprintf(os.Stderr, "esio-rotate: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "esio-rotate: %v\n", err)
		}
		os.Exit(1)
	}
}
