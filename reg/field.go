// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package reg

// Debug enables diagnostics that are too costly for the default path:
// the overlap warning in Value composition and the Dump helper.
// Process-wide; leave false outside of debugging sessions.
var Debug bool

// Raw is the shape of registers declared without a field set.
type Raw struct{}

// Field describes one bit field of a register: width contiguous bits
// whose least significant bit is at offset. The shape parameter R ties
// the field to a single register kind.
//
// Fields are conceptually constants: created once at package init and
// never modified.
type Field[T UInt, R any] struct {
	offset uint
	mask   T
}

// NewField creates a field of width bits starting at bit offset. Bounds
// are checked once, here: width must be at least 1, and offset+width
// must fit the storage width of T. A violation panics with
// ErrFieldBounds, since a field definition is a constant and a bad one
// can never be used.
func NewField[T UInt, R any](offset, width uint) Field[T, R] {
	w := Width[T]()
	if width < 1 || width > w || offset+width > w {
		panic(ErrFieldBounds{Offset: offset, Width: width, Bits: w})
	}

	return Field[T, R]{offset: offset, mask: ones[T](offset, width)}
}

// Offset returns the bit index of the field's least significant bit.
func (fd Field[T, R]) Offset() uint {
	return fd.offset
}

// Width returns the field width in bits.
func (fd Field[T, R]) Width() uint {
	return popcount(fd.mask)
}

// Mask returns the field's bit mask within the register.
func (fd Field[T, R]) Mask() T {
	return fd.mask
}

// Val places raw into the field, returning the shifted, masked value
// ready to be merged into the register. A raw value wider than the
// field is truncated to width bits, matching hardware bit-field
// assignment; this is never an error.
func (fd Field[T, R]) Val(raw T) Value[T, R] {
	return Value[T, R]{mask: fd.mask, bits: (raw << fd.offset) & fd.mask}
}

// Set returns a Value with every bit of the field set to one. For a
// one-bit flag this is the same as Val(1).
func (fd Field[T, R]) Set() Value[T, R] {
	return Value[T, R]{mask: fd.mask, bits: fd.mask}
}

// Union merges two fields of the same register into one field covering
// both bit ranges. Useful with Get and Clear to act on several fields
// at once. Val on a union is only meaningful when the ranges are
// adjacent.
func (fd Field[T, R]) Union(other Field[T, R]) Field[T, R] {
	return Field[T, R]{
		offset: min(fd.offset, other.offset),
		mask:   fd.mask | other.mask,
	}
}
