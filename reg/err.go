package reg

import (
	"github.com/ezrec/regmap/translate"
)

var f = translate.From

// ErrFieldBounds reports a field definition that does not fit its
// register's storage width. It is used as a panic value by NewField:
// field definitions are constants, so a bad one is a programming error
// caught at package init, not a runtime condition.
type ErrFieldBounds struct {
	Offset uint
	Width  uint
	Bits   uint
}

func (err ErrFieldBounds) Error() string {
	return f("field [%d +%d] exceeds %d-bit register", err.Offset, err.Width, err.Bits)
}
