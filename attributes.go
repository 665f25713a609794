package esio

import "github.com/go-esio/esio/internal/errs"

// writeAttribute stamps a scalar or fixed-length vector attribute directly
// on the open file (owner="" — attributes are not distributed and need no
// layout).
func writeAttribute[T Numeric](h *Handle, name string, values []T) error {
	if h == nil || name == "" {
		return errs.New(errs.EFAULT, "esio: attribute write: handle and name must be non-nil/non-empty")
	}
	if len(values) < 1 {
		return errs.New(errs.EINVAL, "esio: attribute write: %q needs at least one value", name)
	}
	file, err := h.openFile()
	if err != nil {
		return err
	}
	var zero T
	kind := kindOf(zero)
	if err := file.WriteAttribute("", name, kind, toBytes(values)); err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	return nil
}

func readAttribute[T Numeric](h *Handle, name string, values []T) error {
	if h == nil || name == "" {
		return errs.New(errs.EFAULT, "esio: attribute read: handle and name must be non-nil/non-empty")
	}
	if len(values) < 1 {
		return errs.New(errs.EINVAL, "esio: attribute read: %q needs at least one destination value", name)
	}
	file, err := h.openFile()
	if err != nil {
		return err
	}
	var zero T
	kind := kindOf(zero)
	buf := toBytes(values)
	n, ok, err := file.ReadAttribute("", name, kind, buf)
	if err != nil {
		return errs.Wrap(errs.EFAILED, err)
	}
	if !ok {
		return errs.New(errs.EFAILED, "esio: attribute read: %q does not exist", name)
	}
	if n != len(buf) {
		return errs.New(errs.EINVAL, "esio: attribute read: %q has %d bytes stored, destination wants %d", name, n, len(buf))
	}
	return nil
}

// AttributeSizeV returns the scalar-component count of a stored attribute,
// without the caller needing to know its element type in advance.
func AttributeSizeV(h *Handle, name string) (ncomponents int32, ok bool, err error) {
	if h == nil || name == "" {
		return 0, false, errs.New(errs.EFAULT, "esio: AttributeSizeV: handle and name must be non-nil/non-empty")
	}
	file, err := h.openFile()
	if err != nil {
		return 0, false, err
	}
	_, count, found := file.AttributeInfo("", name)
	if !found {
		return 0, false, nil
	}
	return int32(count), true, nil
}

// WriteAttributeDouble writes a scalar float64 attribute.
func WriteAttributeDouble(h *Handle, name string, value float64) error {
	return writeAttribute(h, name, []float64{value})
}

// WriteAttributeVectorDouble writes a fixed-length float64 vector attribute.
func WriteAttributeVectorDouble(h *Handle, name string, values []float64) error {
	return writeAttribute(h, name, values)
}

// ReadAttributeDouble reads a scalar float64 attribute.
func ReadAttributeDouble(h *Handle, name string) (float64, error) {
	var v [1]float64
	if err := readAttribute(h, name, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

// ReadAttributeVectorDouble reads a fixed-length float64 vector attribute
// into values, which must already be sized to the stored component count.
func ReadAttributeVectorDouble(h *Handle, name string, values []float64) error {
	return readAttribute(h, name, values)
}

// WriteAttributeFloat writes a scalar float32 attribute.
func WriteAttributeFloat(h *Handle, name string, value float32) error {
	return writeAttribute(h, name, []float32{value})
}

// WriteAttributeVectorFloat writes a fixed-length float32 vector attribute.
func WriteAttributeVectorFloat(h *Handle, name string, values []float32) error {
	return writeAttribute(h, name, values)
}

// ReadAttributeFloat reads a scalar float32 attribute.
func ReadAttributeFloat(h *Handle, name string) (float32, error) {
	var v [1]float32
	if err := readAttribute(h, name, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

// ReadAttributeVectorFloat reads a fixed-length float32 vector attribute.
func ReadAttributeVectorFloat(h *Handle, name string, values []float32) error {
	return readAttribute(h, name, values)
}

// WriteAttributeInt32 writes a scalar int32 attribute.
func WriteAttributeInt32(h *Handle, name string, value int32) error {
	return writeAttribute(h, name, []int32{value})
}

// WriteAttributeVectorInt32 writes a fixed-length int32 vector attribute.
func WriteAttributeVectorInt32(h *Handle, name string, values []int32) error {
	return writeAttribute(h, name, values)
}

// ReadAttributeInt32 reads a scalar int32 attribute.
func ReadAttributeInt32(h *Handle, name string) (int32, error) {
	var v [1]int32
	if err := readAttribute(h, name, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

// ReadAttributeVectorInt32 reads a fixed-length int32 vector attribute.
func ReadAttributeVectorInt32(h *Handle, name string, values []int32) error {
	return readAttribute(h, name, values)
}

// WriteAttributeInt64 writes a scalar int64 attribute.
func WriteAttributeInt64(h *Handle, name string, value int64) error {
	return writeAttribute(h, name, []int64{value})
}

// WriteAttributeVectorInt64 writes a fixed-length int64 vector attribute.
func WriteAttributeVectorInt64(h *Handle, name string, values []int64) error {
	return writeAttribute(h, name, values)
}

// ReadAttributeInt64 reads a scalar int64 attribute.
func ReadAttributeInt64(h *Handle, name string) (int64, error) {
	var v [1]int64
	if err := readAttribute(h, name, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

// ReadAttributeVectorInt64 reads a fixed-length int64 vector attribute.
func ReadAttributeVectorInt64(h *Handle, name string, values []int64) error {
	return readAttribute(h, name, values)
}
