package schema

import (
	"github.com/ezrec/regmap/translate"
)

var f = translate.From

// ErrName reports a declared name that is not usable as a Go
// identifier.
type ErrName string

func (err ErrName) Error() string {
	return f("'%v' is not a valid identifier", string(err))
}

// ErrAccess reports an unknown access mode name.
type ErrAccess string

func (err ErrAccess) Error() string {
	return f("'%v' is not an access mode (ro, wo, rw)", string(err))
}

// ErrSetBits reports a storage width that is not 8, 16, 32 or 64.
type ErrSetBits struct {
	Set  string
	Bits uint
}

func (err ErrSetBits) Error() string {
	return f("%s: register width %d is not 8, 16, 32 or 64", err.Set, err.Bits)
}

// ErrSetDuplicate reports a field set declared twice.
type ErrSetDuplicate string

func (err ErrSetDuplicate) Error() string {
	return f("field set %s duplicated", string(err))
}

// ErrFieldDuplicate reports a field declared twice within one set.
type ErrFieldDuplicate struct {
	Set   string
	Field string
}

func (err ErrFieldDuplicate) Error() string {
	return f("%s.%s duplicated", err.Set, err.Field)
}

// ErrFieldBounds reports a field that does not fit its register.
type ErrFieldBounds struct {
	Set    string
	Field  string
	Offset uint
	Width  uint
	Bits   uint
}

func (err ErrFieldBounds) Error() string {
	return f("%s.%s: offset %d + width %d exceeds %d-bit register",
		err.Set, err.Field, err.Offset, err.Width, err.Bits)
}

// ErrConstDuplicate reports a constant declared twice within one field.
type ErrConstDuplicate struct {
	Set   string
	Field string
	Const string
}

func (err ErrConstDuplicate) Error() string {
	return f("%s.%s.%s duplicated", err.Set, err.Field, err.Const)
}

// ErrConstRange reports a constant value wider than its field.
type ErrConstRange struct {
	Set   string
	Field string
	Const string
	Value uint64
	Width uint
}

func (err ErrConstRange) Error() string {
	return f("%s.%s.%s: value %#x does not fit %d-bit field",
		err.Set, err.Field, err.Const, err.Value, err.Width)
}

// ErrEntryDuplicate reports a register declared twice within a layout.
type ErrEntryDuplicate struct {
	Layout string
	Name   string
}

func (err ErrEntryDuplicate) Error() string {
	return f("%s.%s duplicated", err.Layout, err.Name)
}

// ErrEntryOrder reports a layout entry whose offset is not strictly
// after the space already declared.
type ErrEntryOrder struct {
	Layout string
	Name   string
	Offset uintptr
}

func (err ErrEntryOrder) Error() string {
	return f("%s.%s: offset %#x out of order", err.Layout, err.Name, err.Offset)
}

// ErrEntryAlign reports a layout entry not aligned to its storage
// width.
type ErrEntryAlign struct {
	Layout string
	Name   string
	Offset uintptr
	Size   uintptr
}

func (err ErrEntryAlign) Error() string {
	return f("%s.%s: offset %#x not aligned to %d-byte register",
		err.Layout, err.Name, err.Offset, err.Size)
}

// ErrLayoutDuplicate reports a layout declared twice.
type ErrLayoutDuplicate string

func (err ErrLayoutDuplicate) Error() string {
	return f("layout %s duplicated", string(err))
}

// ErrLayoutExtent reports an end marker before the last register.
type ErrLayoutExtent struct {
	Layout string
	Extent uintptr
	Next   uintptr
}

func (err ErrLayoutExtent) Error() string {
	return f("%s: extent %#x ends before registers placed up to %#x",
		err.Layout, err.Extent, err.Next)
}

// ErrLayoutEnd reports a layout without a terminating end marker.
type ErrLayoutEnd string

func (err ErrLayoutEnd) Error() string {
	return f("%s: layout has no end() marker", string(err))
}
