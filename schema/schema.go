// Package schema loads register description schemas and turns them into
// Go source.
//
// A schema is a Starlark file declaring field sets (a register shape,
// its storage width, and its named bit fields with optional constant
// values) and layouts (ordered register placements at byte offsets,
// closed by an explicit end marker). Load evaluates the schema and
// validates every rule the generated code relies on; Generate emits the
// shape types, reg.Field constants and layout constructors.
package schema

import (
	"fmt"
	"iter"

	"github.com/ezrec/regmap/internal"
)

// ConstDef is a named constant value for a field.
type ConstDef struct {
	Name  string
	Value uint64
}

// FieldDef is one named bit field in a field set.
type FieldDef struct {
	Name   string
	Offset uint
	Width  uint
	Consts []ConstDef
}

// FieldSet is a named register shape with its storage width and fields.
type FieldSet struct {
	Name   string
	Bits   uint // 8, 16, 32 or 64
	Fields []FieldDef
}

// Entry is one placement in a layout. Reserved entries mark padding and
// carry only an offset. A nil Set declares a raw register of Bits wide
// storage without bit fields.
type Entry struct {
	Offset   uintptr
	Name     string
	Access   Access
	Set      *FieldSet
	Bits     uint
	Reserved bool
}

// Layout is a named ordered register layout with its total byte extent.
type Layout struct {
	Name    string
	Entries []Entry
	Extent  uintptr
}

// Document is everything one schema file declares.
type Document struct {
	Sets    []*FieldSet
	Layouts []*Layout
}

// width returns the storage width of an entry, in bits.
func (en *Entry) width() uint {
	if en.Set != nil {
		return en.Set.Bits
	}

	return en.Bits
}

// Defines returns an iterator over the field set's constant defines.
func (fs *FieldSet) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, fd := range fs.Fields {
			for _, cd := range fd.Consts {
				name := fmt.Sprintf("%s_%s_%s", fs.Name, fd.Name, cd.Name)
				if !yield(name, fmt.Sprintf("%#x", cd.Value)) {
					return
				}
			}
		}
	}
}

// Defines returns an iterator over all of the document's defines.
func (doc *Document) Defines() iter.Seq2[string, string] {
	seqs := make([]iter.Seq2[string, string], 0, len(doc.Sets))
	for _, fs := range doc.Sets {
		seqs = append(seqs, fs.Defines())
	}

	return internal.IterSeq2Concat(seqs...)
}

// Validate checks every declaration rule: identifiers, storage widths,
// field bounds, constant ranges, layout ordering, alignment and extent.
// The first violation is returned, naming the offending field or
// register.
func (doc *Document) Validate() (err error) {
	sets := map[string]bool{}
	for _, fs := range doc.Sets {
		err = fs.validate()
		if err != nil {
			return
		}
		if sets[fs.Name] {
			return ErrSetDuplicate(fs.Name)
		}
		sets[fs.Name] = true
	}

	layouts := map[string]bool{}
	for _, lay := range doc.Layouts {
		err = lay.validate()
		if err != nil {
			return
		}
		if layouts[lay.Name] {
			return ErrLayoutDuplicate(lay.Name)
		}
		layouts[lay.Name] = true
	}

	return
}

func validBits(bits uint) bool {
	switch bits {
	case 8, 16, 32, 64:
		return true
	}

	return false
}

// validIdent reports whether name is usable as a generated Go
// identifier component.
func validIdent(name string) bool {
	if len(name) == 0 {
		return false
	}
	for n, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if n == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func (fs *FieldSet) validate() (err error) {
	if !validIdent(fs.Name) {
		return ErrName(fs.Name)
	}
	if !validBits(fs.Bits) {
		return ErrSetBits{Set: fs.Name, Bits: fs.Bits}
	}

	fields := map[string]bool{}
	for _, fd := range fs.Fields {
		if !validIdent(fd.Name) {
			return ErrName(fs.Name + "." + fd.Name)
		}
		if fields[fd.Name] {
			return ErrFieldDuplicate{Set: fs.Name, Field: fd.Name}
		}
		fields[fd.Name] = true

		if fd.Width < 1 || fd.Offset+fd.Width > fs.Bits {
			return ErrFieldBounds{
				Set:    fs.Name,
				Field:  fd.Name,
				Offset: fd.Offset,
				Width:  fd.Width,
				Bits:   fs.Bits,
			}
		}

		consts := map[string]bool{}
		for _, cd := range fd.Consts {
			if !validIdent(cd.Name) {
				return ErrName(fs.Name + "." + fd.Name + "." + cd.Name)
			}
			if consts[cd.Name] {
				return ErrConstDuplicate{Set: fs.Name, Field: fd.Name, Const: cd.Name}
			}
			consts[cd.Name] = true

			if fd.Width < 64 && cd.Value>>fd.Width != 0 {
				return ErrConstRange{
					Set:   fs.Name,
					Field: fd.Name,
					Const: cd.Name,
					Value: cd.Value,
					Width: fd.Width,
				}
			}
		}
	}

	return
}

func (lay *Layout) validate() (err error) {
	if !validIdent(lay.Name) {
		return ErrName(lay.Name)
	}

	names := map[string]bool{}
	next := uintptr(0)
	for _, en := range lay.Entries {
		if en.Reserved {
			if en.Offset < next {
				return ErrEntryOrder{Layout: lay.Name, Name: "_", Offset: en.Offset}
			}
			next = en.Offset
			continue
		}

		if !validIdent(en.Name) {
			return ErrName(lay.Name + "." + en.Name)
		}
		if names[en.Name] {
			return ErrEntryDuplicate{Layout: lay.Name, Name: en.Name}
		}
		names[en.Name] = true

		if !validBits(en.width()) {
			return ErrSetBits{Set: lay.Name + "." + en.Name, Bits: en.width()}
		}

		size := uintptr(en.width() / 8)
		if en.Offset < next {
			return ErrEntryOrder{Layout: lay.Name, Name: en.Name, Offset: en.Offset}
		}
		if en.Offset%size != 0 {
			return ErrEntryAlign{Layout: lay.Name, Name: en.Name, Offset: en.Offset, Size: size}
		}
		next = en.Offset + size
	}

	if lay.Extent < next {
		return ErrLayoutExtent{Layout: lay.Name, Extent: lay.Extent, Next: next}
	}

	return
}
