package reg

import (
	"math/bits"
	"unsafe"
)

// UInt is the set of unsigned integer types usable as register storage.
// Registers of 8, 16, 32 and 64 bits are supported.
type UInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the storage width of T, in bits.
func Width[T UInt]() uint {
	return uint(unsafe.Sizeof(T(0))) * 8
}

// ones returns a mask of width contiguous one bits starting at offset.
// Callers have already checked 1 <= width and offset+width <= Width[T].
func ones[T UInt](offset, width uint) T {
	return (^T(0) >> (Width[T]() - width)) << offset
}

// popcount returns the number of set bits in value.
func popcount[T UInt](value T) uint {
	return uint(bits.OnesCount64(uint64(value)))
}
