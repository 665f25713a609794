package esio

// The 1-D "line" family degenerates both the C and B axes.

// LineSize returns the stored (a, ncomponents) shape of a 1-D line.
func LineSize(h *Handle, name string) (a int64, ncomponents int32, ok bool, err error) {
	_, _, a, ncomponents, ok, err = size(h, name)
	return a, ncomponents, ok, err
}

func WriteLineDouble(h *Handle, name string, buf []float64, aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WriteLineVectorDouble(h *Handle, name string, buf []float64, aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return write(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

func ReadLineDouble(h *Handle, name string, buf []float64, aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadLineVectorDouble(h *Handle, name string, buf []float64, aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return read(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

func WriteLineFloat(h *Handle, name string, buf []float32, aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadLineFloat(h *Handle, name string, buf []float32, aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WriteLineInt32(h *Handle, name string, buf []int32, aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadLineInt32(h *Handle, name string, buf []int32, aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func WriteLineInt64(h *Handle, name string, buf []int64, aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}

func ReadLineInt64(h *Handle, name string, buf []int64, aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf, degenerateAxis, degenerateAxis, piece3(aGlobal, aStart, aLocal, aStride), 1)
}
