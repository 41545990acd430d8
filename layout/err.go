package layout

import (
	"errors"

	"github.com/ezrec/regmap/translate"
)

var f = translate.From

var (
	// ErrEnded reports a placement or marker after End.
	ErrEnded = errors.New(f("layout already ended"))
)

// ErrOffsetOrder reports a placement that is not strictly after the
// space already laid out.
type ErrOffsetOrder struct {
	Offset uintptr
	Next   uintptr
}

func (err ErrOffsetOrder) Error() string {
	return f("offset %#x overlaps layout already placed up to %#x", err.Offset, err.Next)
}

// ErrOffsetAlign reports a placement not aligned to its register's
// storage width.
type ErrOffsetAlign struct {
	Offset uintptr
	Size   uintptr
}

func (err ErrOffsetAlign) Error() string {
	return f("offset %#x not aligned to %d-byte register", err.Offset, err.Size)
}

// ErrExtent reports an end marker that falls before the last placed
// register.
type ErrExtent struct {
	Extent uintptr
	Next   uintptr
}

func (err ErrExtent) Error() string {
	return f("extent %#x ends before layout placed up to %#x", err.Extent, err.Next)
}
