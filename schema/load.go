// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package schema

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load evaluates a register description schema and returns the document
// it declares, already validated. src may be nil to read filename, or a
// string, []byte or io.Reader, per Starlark's ExecFile convention.
//
// The schema's predeclared builtins are:
//
//	field(name, offset, width, **consts)
//	fieldset(name, bits, *fields)
//	at(offset, name, access, set=None, bits=0)
//	pad(offset)
//	end(extent)
//	layout(name, *entries)
func Load(filename string, src any) (doc *Document, err error) {
	doc = &Document{}
	ld := &loader{doc: doc}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"field":    starlark.NewBuiltin("field", fieldBuiltin),
		"fieldset": starlark.NewBuiltin("fieldset", ld.fieldsetBuiltin),
		"at":       starlark.NewBuiltin("at", atBuiltin),
		"pad":      starlark.NewBuiltin("pad", padBuiltin),
		"end":      starlark.NewBuiltin("end", endBuiltin),
		"layout":   starlark.NewBuiltin("layout", ld.layoutBuiltin),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		doc = nil
		return
	}

	err = doc.Validate()
	if err != nil {
		doc = nil
	}

	return
}

type loader struct {
	doc *Document
}

// fieldValue wraps a FieldDef as a Starlark value.
type fieldValue struct {
	def FieldDef
}

func (fv *fieldValue) String() string        { return "field(" + fv.def.Name + ")" }
func (fv *fieldValue) Type() string          { return "field" }
func (fv *fieldValue) Freeze()               {}
func (fv *fieldValue) Truth() starlark.Bool  { return starlark.True }
func (fv *fieldValue) Hash() (uint32, error) { return 0, errors.New("unhashable type: field") }

// setValue wraps a FieldSet as a Starlark value.
type setValue struct {
	set *FieldSet
}

func (sv *setValue) String() string        { return "fieldset(" + sv.set.Name + ")" }
func (sv *setValue) Type() string          { return "fieldset" }
func (sv *setValue) Freeze()               {}
func (sv *setValue) Truth() starlark.Bool  { return starlark.True }
func (sv *setValue) Hash() (uint32, error) { return 0, errors.New("unhashable type: fieldset") }

// entryValue wraps a layout Entry as a Starlark value.
type entryValue struct {
	entry Entry
}

func (ev *entryValue) String() string        { return fmt.Sprintf("at(%#x)", ev.entry.Offset) }
func (ev *entryValue) Type() string          { return "entry" }
func (ev *entryValue) Freeze()               {}
func (ev *entryValue) Truth() starlark.Bool  { return starlark.True }
func (ev *entryValue) Hash() (uint32, error) { return 0, errors.New("unhashable type: entry") }

// endValue wraps a layout end marker as a Starlark value.
type endValue struct {
	extent uintptr
}

func (ev *endValue) String() string        { return fmt.Sprintf("end(%#x)", ev.extent) }
func (ev *endValue) Type() string          { return "end" }
func (ev *endValue) Freeze()               {}
func (ev *endValue) Truth() starlark.Bool  { return starlark.True }
func (ev *endValue) Hash() (uint32, error) { return 0, errors.New("unhashable type: end") }

// layoutValue wraps a Layout as a Starlark value.
type layoutValue struct {
	lay *Layout
}

func (lv *layoutValue) String() string        { return "layout(" + lv.lay.Name + ")" }
func (lv *layoutValue) Type() string          { return "layout" }
func (lv *layoutValue) Freeze()               {}
func (lv *layoutValue) Truth() starlark.Bool  { return starlark.True }
func (lv *layoutValue) Hash() (uint32, error) { return 0, errors.New("unhashable type: layout") }

// field(name, offset, width, **consts) declares one bit field. Keyword
// arguments become the field's named constant values.
func fieldBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var offset, width int

	err := starlark.UnpackPositionalArgs(bi.Name(), args, nil, 3, &name, &offset, &width)
	if err != nil {
		return nil, err
	}
	if offset < 0 || width < 0 {
		return nil, fmt.Errorf("%v: negative offset or width", bi.Name())
	}

	def := FieldDef{Name: name, Offset: uint(offset), Width: uint(width)}
	for _, kv := range kwargs {
		cname := string(kv[0].(starlark.String))
		cint, ok := kv[1].(starlark.Int)
		if !ok {
			return nil, fmt.Errorf("%v: %v: constant is not an integer", bi.Name(), cname)
		}
		cval, ok := cint.Uint64()
		if !ok {
			return nil, fmt.Errorf("%v: %v: constant out of range", bi.Name(), cname)
		}
		def.Consts = append(def.Consts, ConstDef{Name: cname, Value: cval})
	}

	return &fieldValue{def: def}, nil
}

// fieldset(name, bits, *fields) declares a register shape.
func (ld *loader) fieldsetBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: unexpected keyword arguments", bi.Name())
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%v: got %d arguments, want at least 2", bi.Name(), len(args))
	}

	var name string
	var bits int

	err := starlark.UnpackPositionalArgs(bi.Name(), args[:2], nil, 2, &name, &bits)
	if err != nil {
		return nil, err
	}
	if bits < 0 {
		return nil, fmt.Errorf("%v: negative register width", bi.Name())
	}

	set := &FieldSet{Name: name, Bits: uint(bits)}
	for _, arg := range args[2:] {
		fv, ok := arg.(*fieldValue)
		if !ok {
			return nil, fmt.Errorf("%v: %v is not a field()", bi.Name(), arg.String())
		}
		set.Fields = append(set.Fields, fv.def)
	}

	ld.doc.Sets = append(ld.doc.Sets, set)

	return &setValue{set: set}, nil
}

// at(offset, name, access, set=None, bits=0) places a register in a
// layout. A fieldset binds the register to its shape and width; a bare
// bits= declares a raw register without fields.
func atBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var offset int
	var name, access string
	var setv starlark.Value
	var bits int

	err := starlark.UnpackArgs(bi.Name(), args, kwargs,
		"offset", &offset, "name", &name, "access", &access,
		"set??", &setv, "bits??", &bits)
	if err != nil {
		return nil, err
	}
	if offset < 0 || bits < 0 {
		return nil, fmt.Errorf("%v: negative offset or width", bi.Name())
	}

	mode, err := ParseAccess(access)
	if err != nil {
		return nil, err
	}

	entry := Entry{Offset: uintptr(offset), Name: name, Access: mode, Bits: uint(bits)}
	if setv != nil {
		sv, ok := setv.(*setValue)
		if !ok {
			return nil, fmt.Errorf("%v: %v: set is not a fieldset()", bi.Name(), name)
		}
		entry.Set = sv.set
	}

	return &entryValue{entry: entry}, nil
}

// pad(offset) marks reserved space beginning at offset.
func padBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var offset int

	err := starlark.UnpackPositionalArgs(bi.Name(), args, kwargs, 1, &offset)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("%v: negative offset", bi.Name())
	}

	return &entryValue{entry: Entry{Offset: uintptr(offset), Reserved: true}}, nil
}

// end(extent) closes a layout, declaring its total byte extent.
func endBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var extent int

	err := starlark.UnpackPositionalArgs(bi.Name(), args, kwargs, 1, &extent)
	if err != nil {
		return nil, err
	}
	if extent < 0 {
		return nil, fmt.Errorf("%v: negative extent", bi.Name())
	}

	return &endValue{extent: uintptr(extent)}, nil
}

// layout(name, *entries) declares a register layout. The final entry
// must be an end() marker.
func (ld *loader) layoutBuiltin(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: unexpected keyword arguments", bi.Name())
	}
	if len(args) < 1 {
		return nil, fmt.Errorf("%v: got %d arguments, want at least 1", bi.Name(), len(args))
	}

	var name string

	err := starlark.UnpackPositionalArgs(bi.Name(), args[:1], nil, 1, &name)
	if err != nil {
		return nil, err
	}

	lay := &Layout{Name: name}
	ended := false
	for _, arg := range args[1:] {
		if ended {
			return nil, fmt.Errorf("%v: %v: entry after end()", bi.Name(), name)
		}
		switch v := arg.(type) {
		case *entryValue:
			lay.Entries = append(lay.Entries, v.entry)
		case *endValue:
			lay.Extent = v.extent
			ended = true
		default:
			return nil, fmt.Errorf("%v: %v is not an at(), pad() or end()", bi.Name(), arg.String())
		}
	}
	if !ended {
		return nil, ErrLayoutEnd(name)
	}

	ld.doc.Layouts = append(ld.doc.Layouts, lay)

	return &layoutValue{lay: lay}, nil
}
