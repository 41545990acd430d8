// Package reg implements typed bit-field access to memory-mapped registers.
//
// A register kind is identified by a shape: any empty struct type used as
// the R type parameter of Field, Value and the accessors. Because the shape
// travels in the type, a field declared for one register cannot be applied
// to another, and a value composed for one register cannot be written to
// another; both are compile errors, never runtime checks.
//
// Fields describe a contiguous bit range (offset, width) of an 8, 16, 32
// or 64-bit register. Field.Val places a raw value into the range,
// truncating it to the field width the way hardware does. Values compose
// with Or or Join into a single mask/bits pair, which RW.WriteBack merges
// into storage while leaving every bit outside the mask untouched.
//
// The read-modify-write of WriteBack is three plain memory operations with
// no atomicity between them. A concurrent writer to the same location can
// cause a lost update; callers sharing a register with an interrupt
// handler or another goroutine must serialize access themselves.
package reg
