// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package layout places typed register accessors at byte offsets from a
// base address.
//
// A Table is built in declaration order: placements at strictly
// increasing, width-aligned offsets, optional Pad markers for reserved
// space, and a final End marker declaring the table's total byte
// extent. The first violation sticks and is returned by End; the core
// register operations never see an invalid address.
package layout

import (
	"unsafe"

	"github.com/ezrec/regmap/reg"
)

// Table builds a register layout at a base address.
type Table struct {
	base unsafe.Pointer
	next uintptr // first byte past the last placement
	done bool
	err  error
}

// NewTable starts a layout at base: a mapped device address, or a
// simulated region such as sim.Memory's Base in tests.
func NewTable(base unsafe.Pointer) *Table {
	return &Table{base: base}
}

// place validates a placement of size bytes at offset and returns its
// address. On a violation the first error is recorded and ok is false.
func (tb *Table) place(offset, size uintptr) (ptr unsafe.Pointer, ok bool) {
	switch {
	case tb.err != nil:
	case tb.done:
		tb.err = ErrEnded
	case offset < tb.next:
		tb.err = ErrOffsetOrder{Offset: offset, Next: tb.next}
	case offset%size != 0:
		tb.err = ErrOffsetAlign{Offset: offset, Size: size}
	default:
		tb.next = offset + size
		ptr = unsafe.Add(tb.base, offset)
		ok = true
	}

	return
}

// Pad declares reserved space beginning at offset, extending to the
// following placement or the end marker.
func (tb *Table) Pad(offset uintptr) {
	switch {
	case tb.err != nil:
	case tb.done:
		tb.err = ErrEnded
	case offset < tb.next:
		tb.err = ErrOffsetOrder{Offset: offset, Next: tb.next}
	default:
		tb.next = offset
	}
}

// End closes the layout, declaring its total byte extent, and returns
// the first error recorded during placement. No further placements are
// accepted.
func (tb *Table) End(extent uintptr) error {
	switch {
	case tb.err != nil:
	case tb.done:
		tb.err = ErrEnded
	case extent < tb.next:
		tb.err = ErrExtent{Extent: extent, Next: tb.next}
	default:
		tb.done = true
	}

	return tb.err
}

// Err returns the first placement error, if any.
func (tb *Table) Err() error {
	return tb.err
}

// RO places a read-only register of storage type T and shape R at
// offset. On a placement error the returned accessor is unusable and
// the error is reported by End.
func RO[T reg.UInt, R any](tb *Table, offset uintptr) (ro reg.RO[T, R]) {
	ptr, ok := tb.place(offset, unsafe.Sizeof(T(0)))
	if !ok {
		return
	}

	return reg.NewRO[T, R]((*T)(ptr))
}

// WO places a write-only register of storage type T and shape R at
// offset.
func WO[T reg.UInt, R any](tb *Table, offset uintptr) (wo reg.WO[T, R]) {
	ptr, ok := tb.place(offset, unsafe.Sizeof(T(0)))
	if !ok {
		return
	}

	return reg.NewWO[T, R]((*T)(ptr))
}

// RW places a read-write register of storage type T and shape R at
// offset.
func RW[T reg.UInt, R any](tb *Table, offset uintptr) (rw reg.RW[T, R]) {
	ptr, ok := tb.place(offset, unsafe.Sizeof(T(0)))
	if !ok {
		return
	}

	return reg.NewRW[T, R]((*T)(ptr))
}
