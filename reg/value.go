package reg

import (
	"log"
)

// Value is a field's value expressed as a (mask, bits) pair ready to be
// merged into a register: bits is the raw value shifted into place, and
// mask covers the field's bit positions. The invariant bits &^ mask == 0
// always holds.
//
// The zero Value is the identity for composition.
type Value[T UInt, R any] struct {
	mask T
	bits T
}

// Mask returns the bit positions the value covers.
func (va Value[T, R]) Mask() T {
	return va.mask
}

// Bits returns the shifted field bits.
func (va Value[T, R]) Bits() T {
	return va.bits
}

// Or combines two values destined for the same register into a single
// mask/bits pair. Composition is associative and commutative. When the
// two masks overlap, a one bit from either side wins for that position,
// so values composed together should come from disjoint fields; with
// Debug set an overlap logs a warning, but is never an error.
func (va Value[T, R]) Or(other Value[T, R]) Value[T, R] {
	if Debug && va.mask&other.mask != 0 {
		log.Printf("regmap: composed values overlap on mask %#x", uint64(va.mask&other.mask))
	}

	return Value[T, R]{mask: va.mask | other.mask, bits: va.bits | other.bits}
}

// Join combines any number of values into one, equivalent to chaining
// Or. Join() of nothing is the identity Value.
func Join[T UInt, R any](values ...Value[T, R]) (out Value[T, R]) {
	for _, val := range values {
		out = out.Or(val)
	}

	return
}
