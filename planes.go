package esio

// The 2-D "plane" family degenerates the C axis to a single point: 1-D/2-D
// variants are specializations of the 3-D engine with degenerate
// dimensions.

var degenerateAxis = Piece{Global: 1, Start: 0, Local: 1, Stride: 0}

// PlaneSize returns the stored (b, a, ncomponents) shape of a 2-D plane.
func PlaneSize(h *Handle, name string) (b, a int64, ncomponents int32, ok bool, err error) {
	_, b, a, ncomponents, ok, err = size(h, name)
	return b, a, ncomponents, ok, err
}

func WritePlaneDouble(h *Handle, name string, buf []float64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WritePlaneVectorDouble(h *Handle, name string, buf []float64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return write(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

func ReadPlaneDouble(h *Handle, name string, buf []float64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadPlaneVectorDouble(h *Handle, name string, buf []float64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return read(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

func WritePlaneFloat(h *Handle, name string, buf []float32,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadPlaneFloat(h *Handle, name string, buf []float32,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WritePlaneInt32(h *Handle, name string, buf []int32,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadPlaneInt32(h *Handle, name string, buf []int32,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WritePlaneInt64(h *Handle, name string, buf []int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadPlaneInt64(h *Handle, name string, buf []int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, piece3(bGlobal, bStart, bLocal, bStride), piece3(aGlobal, aStart, aLocal, aStride), 1)
}
