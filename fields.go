package esio

// This file is the 3-D "field" entry-point family: one pair of thin
// functions per numeric scalar kind, each just assembling the three
// per-axis Pieces and calling the generic engine. This is mechanical
// expansion, not design — the design is in write/read (engine.go).

func piece3(global, start, local, stride int64) Piece {
	return Piece{Global: global, Start: start, Local: local, Stride: stride}
}

// FieldSize returns the stored global shape and component count of a
// 3-D field, or ok=false if it does not exist.
func FieldSize(h *Handle, name string) (c, b, a int64, ncomponents int32, ok bool, err error) {
	return size(h, name)
}

// WriteFieldDouble writes a scalar (ncomponents=1) float64 field.
func WriteFieldDouble(h *Handle, name string, buf []float64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// WriteFieldVectorDouble writes a fixed-length-vector float64 field.
func WriteFieldVectorDouble(h *Handle, name string, buf []float64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return write(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

// ReadFieldDouble reads a scalar float64 field.
func ReadFieldDouble(h *Handle, name string, buf []float64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// ReadFieldVectorDouble reads a fixed-length-vector float64 field.
func ReadFieldVectorDouble(h *Handle, name string, buf []float64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64, ncomponents int32) error {
	return read(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), ncomponents)
}

// WriteFieldFloat writes a scalar float32 field.
func WriteFieldFloat(h *Handle, name string, buf []float32,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// ReadFieldFloat reads a scalar float32 field.
func ReadFieldFloat(h *Handle, name string, buf []float32,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// WriteFieldInt32 writes a scalar int32 field.
func WriteFieldInt32(h *Handle, name string, buf []int32,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// ReadFieldInt32 reads a scalar int32 field.
func ReadFieldInt32(h *Handle, name string, buf []int32,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// WriteFieldInt64 writes a scalar int64 field.
func WriteFieldInt64(h *Handle, name string, buf []int64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return write(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}

// ReadFieldInt64 reads a scalar int64 field.
func ReadFieldInt64(h *Handle, name string, buf []int64,
	cGlobal, cStart, cLocal, cStride int64,
	bGlobal, bStart, bLocal, bStride int64,
	aGlobal, aStart, aLocal, aStride int64) error {
	return read(h, name, buf,
		piece3(cGlobal, cStart, cLocal, cStride),
		piece3(bGlobal, bStart, bLocal, bStride),
		piece3(aGlobal, aStart, aLocal, aStride), 1)
}
