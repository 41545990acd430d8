// Package sim provides a simulated memory region, so register layouts
// are testable against ordinary heap memory instead of real hardware.
package sim

import (
	"unsafe"
)

// Memory is a register file backed by ordinary memory, aligned for any
// storage width up to 64 bits.
type Memory struct {
	words []uint64
	size  uintptr
}

// NewMemory allocates a zeroed region of size bytes.
func NewMemory(size uintptr) (mem *Memory) {
	words := (size + 7) / 8
	if words == 0 {
		words = 1
	}

	return &Memory{
		words: make([]uint64, words),
		size:  size,
	}
}

// Base returns the region's base pointer, suitable for layout.NewTable.
func (mem *Memory) Base() unsafe.Pointer {
	return unsafe.Pointer(&mem.words[0])
}

// Size returns the region size in bytes.
func (mem *Memory) Size() uintptr {
	return mem.size
}

// Bytes returns the region as a byte slice sharing the same storage.
func (mem *Memory) Bytes() []byte {
	return unsafe.Slice((*byte)(mem.Base()), mem.size)
}

// Fill sets every byte of the region to b.
func (mem *Memory) Fill(b byte) {
	buf := mem.Bytes()
	for n := range buf {
		buf[n] = b
	}
}
