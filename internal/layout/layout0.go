package layout

import (
	"github.com/go-esio/esio/internal/errs"
	"github.com/go-esio/esio/internal/substrate"
)

// Layout0Tag is the stable tag of the one shipped strategy: "dense global,
// collective strided".
const Layout0Tag = 0

func init() {
	Register(func(tag int) Strategy {
		return Strategy{
			Tag:               tag,
			CreateGlobalShape: createDenseShape,
			Write:             writeDense,
			Read:              readDense,
		}
	})
}

func createDenseShape(c, b, a int64) ([3]int64, error) {
	if c < 1 || b < 1 || a < 1 {
		return [3]int64{}, errs.New(errs.EINVAL, "layout0: global extents must be >= 1, got (%d,%d,%d)", c, b, a)
	}
	return [3]int64{c, b, a}, nil
}

// buildMemSelection builds the union of hyperslabs picking "my piece" out
// of a caller's strided local buffer.
func buildMemSelection(c, b, a ResolvedAxis) substrate.MemSelection {
	runs := make([]substrate.MemRun, 0, c.Local*b.Local)
	for k := int64(0); k < c.Local; k++ {
		for j := int64(0); j < b.Local; j++ {
			runs = append(runs, substrate.MemRun{
				Offset: k*c.Stride + j*b.Stride,
				Stride: a.Stride,
				Count:  a.Local,
			})
		}
	}
	return substrate.MemSelection{Runs: runs}
}

func buildFileSelection(c, b, a ResolvedAxis) substrate.FileSelection {
	return substrate.FileSelection{
		Start: [3]int64{c.Start, b.Start, a.Start},
		Count: [3]int64{c.Local, b.Local, a.Local},
	}
}

func writeDense(ds substrate.Dataset, info substrate.Info, data []byte, c, b, a ResolvedAxis, components int32, kind substrate.ElementKind) error {
	mem := buildMemSelection(c, b, a)
	file := buildFileSelection(c, b, a)
	if err := ds.WriteSelection(info, file, mem, data); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	return nil
}

func readDense(ds substrate.Dataset, info substrate.Info, buf []byte, c, b, a ResolvedAxis, components int32, kind substrate.ElementKind) error {
	mem := buildMemSelection(c, b, a)
	file := buildFileSelection(c, b, a)
	if err := ds.ReadSelection(info, file, mem, buf); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	return nil
}
