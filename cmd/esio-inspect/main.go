// Command esio-inspect prints the stored shape and component count of a
// named field in an esio file, without requiring the
// caller to know any of that in advance. It is a single-process, read-only
// "show me what is already on disk" convenience tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-esio/esio"
	"github.com/go-esio/esio/internal/cliutil"
)

const help = `esio-inspect <file> <field-name>

Print the stored shape and component count of a field.

Example:
  % esio-inspect restart-0000.h5 velocity
`

func usage() {
	fmt.Fprint(os.Stderr, help)
	flag.PrintDefaults()
}

var debug = flag.Bool("debug", false, "format error messages with additional detail")

func funcmain() error {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	path, name := flag.Arg(0), flag.Arg(1)

	session, _, canc := cliutil.NewSession()
	defer canc()

	h, err := esio.Initialize(esio.NewLocalCommunicator("esio-inspect"))
	if err != nil {
		return err
	}
	session.Defer(func() error { return esio.Finalize(h) })

	if err := h.FileOpen(path, false); err != nil {
		return err
	}
	session.Defer(h.FileClose)

	c, b, a, ncomponents, ok, err := esio.FieldSize(h, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("field %q not found in %s", name, path)
	}
	fmt.Printf("%s: %s shape=(%d,%d,%d) ncomponents=%d\n", path, name, c, b, a, ncomponents)
	return session.Close()
}

func main() {
	if err := funcmain(); err != nil {
		if *debug {
			fmt.Fprintf(os.Stderr, "esio-inspect: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "esio-inspect: %v\n", err)
		}
		os.Exit(1)
	}
}
