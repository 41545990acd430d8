package reg

import (
	"log"

	"github.com/davecgh/go-spew/spew"
)

// Decode splits a raw register value into the given named fields,
// returning each field's extracted value.
func Decode[T UInt, R any](raw T, fields map[string]Field[T, R]) map[string]T {
	out := make(map[string]T, len(fields))
	for name, fd := range fields {
		out[name] = (raw & fd.mask) >> fd.offset
	}

	return out
}

// Dump logs the register's raw value and its decoded fields.
// Diagnostics only: it reads the register once and does nothing unless
// Debug is set.
func Dump[T UInt, R any](name string, rd Reader[T, R], fields map[string]Field[T, R]) {
	if !Debug {
		return
	}

	raw := rd.Read()
	log.Printf("%s = %#x\n%s", name, uint64(raw), spew.Sdump(Decode(raw, fields)))
}
