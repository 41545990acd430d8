// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package reg

// Reader is the capability to read a register of storage type T and
// shape R.
type Reader[T UInt, R any] interface {
	Read() T
}

// Writer is the capability to overwrite a register of storage type T
// and shape R.
type Writer[T UInt, R any] interface {
	Write(T)
}

var (
	_ Reader[uint32, Raw] = RO[uint32, Raw]{}
	_ Writer[uint32, Raw] = WO[uint32, Raw]{}
	_ Reader[uint32, Raw] = RW[uint32, Raw]{}
	_ Writer[uint32, Raw] = RW[uint32, Raw]{}
)

// RO is a read-only register accessor. It has no write methods at all:
// writing through a read-only register is a compile error.
type RO[T UInt, R any] struct {
	ptr *T
}

// NewRO creates a read-only accessor for the register at ptr.
func NewRO[T UInt, R any](ptr *T) RO[T, R] {
	return RO[T, R]{ptr: ptr}
}

// Read returns the register's current raw value.
func (ro RO[T, R]) Read() T {
	return *ro.ptr
}

// Get extracts the field's raw value from the register.
func (ro RO[T, R]) Get(fd Field[T, R]) T {
	return (ro.Read() & fd.mask) >> fd.offset
}

// IsSet reports whether every bit of the field is one.
func (ro RO[T, R]) IsSet(fd Field[T, R]) bool {
	return ro.Read()&fd.mask == fd.mask
}

// WO is a write-only register accessor. Every write method is a full
// overwrite: bits not named by the value or field are forced to zero.
// Reading through a write-only register is a compile error.
type WO[T UInt, R any] struct {
	ptr *T
}

// NewWO creates a write-only accessor for the register at ptr.
func NewWO[T UInt, R any](ptr *T) WO[T, R] {
	return WO[T, R]{ptr: ptr}
}

// Write stores raw into the register.
func (wo WO[T, R]) Write(raw T) {
	*wo.ptr = raw
}

// Put stores the value's bits into the register, discarding its mask.
// Bits outside the value become zero.
func (wo WO[T, R]) Put(val Value[T, R]) {
	wo.Write(val.bits)
}

// Set stores the field's mask into the register: the field's bits all
// become one, every other bit becomes zero.
func (wo WO[T, R]) Set(fd Field[T, R]) {
	wo.Write(fd.mask)
}

// SetAll sets every bit of the register to one.
func (wo WO[T, R]) SetAll() {
	wo.Write(^T(0))
}

// ClearAll sets every bit of the register to zero.
func (wo WO[T, R]) ClearAll() {
	wo.Write(T(0))
}

// RW is a read-write register accessor. It carries the read and
// overwrite operations of RO and WO, plus the write-back operations
// that preserve bits outside the target mask.
//
// WriteBack, SetBits and Clear each perform a read-modify-write of
// three plain memory operations with no atomicity between them.
type RW[T UInt, R any] struct {
	ptr *T
}

// NewRW creates a read-write accessor for the register at ptr.
func NewRW[T UInt, R any](ptr *T) RW[T, R] {
	return RW[T, R]{ptr: ptr}
}

// Read returns the register's current raw value.
func (rw RW[T, R]) Read() T {
	return *rw.ptr
}

// Get extracts the field's raw value from the register.
func (rw RW[T, R]) Get(fd Field[T, R]) T {
	return (rw.Read() & fd.mask) >> fd.offset
}

// IsSet reports whether every bit of the field is one.
func (rw RW[T, R]) IsSet(fd Field[T, R]) bool {
	return rw.Read()&fd.mask == fd.mask
}

// Write stores raw into the register, a full overwrite.
func (rw RW[T, R]) Write(raw T) {
	*rw.ptr = raw
}

// Put stores the value's bits into the register, discarding its mask.
// Bits outside the value become zero; use WriteBack to preserve them.
func (rw RW[T, R]) Put(val Value[T, R]) {
	rw.Write(val.bits)
}

// Set stores the field's mask into the register, a full overwrite; use
// SetBits to preserve the other bits.
func (rw RW[T, R]) Set(fd Field[T, R]) {
	rw.Write(fd.mask)
}

// SetAll sets every bit of the register to one.
func (rw RW[T, R]) SetAll() {
	rw.Write(^T(0))
}

// ClearAll sets every bit of the register to zero.
func (rw RW[T, R]) ClearAll() {
	rw.Write(T(0))
}

// WriteBack merges the value into the register: bits covered by the
// value's mask take the value's bits, every bit outside the mask is
// preserved bit-for-bit.
func (rw RW[T, R]) WriteBack(val Value[T, R]) {
	rw.Write(rw.Read()&^val.mask | val.bits)
}

// SetBits sets every bit of the field to one, preserving the others.
func (rw RW[T, R]) SetBits(fd Field[T, R]) {
	rw.Write(rw.Read() | fd.mask)
}

// Clear sets every bit of the field to zero, preserving the others.
func (rw RW[T, R]) Clear(fd Field[T, R]) {
	rw.Write(rw.Read() &^ fd.mask)
}
