// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package schema

import (
	"bytes"
	"fmt"
	"go/format"
)

// Generate emits the document as Go source for the named package: one
// shape type, field variables and a name-to-field map per field set,
// and one struct with typed accessors plus a Map constructor per
// layout. The document must already be validated; Load does so.
func Generate(doc *Document, pkg string) (code []byte, err error) {
	if !validIdent(pkg) {
		err = ErrName(pkg)
		return
	}

	out := &bytes.Buffer{}

	fmt.Fprintf(out, "// Code generated by regmapgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(out, "package %s\n\n", pkg)
	emitImports(out, doc)

	for _, fs := range doc.Sets {
		emitFieldSet(out, fs)
	}
	for _, lay := range doc.Layouts {
		emitLayout(out, lay)
	}

	code, err = format.Source(out.Bytes())

	return
}

// uintType returns the Go storage type for a width in bits.
func uintType(bits uint) string {
	return fmt.Sprintf("uint%d", bits)
}

// shapeOf returns the shape type name for an entry.
func shapeOf(en *Entry) string {
	if en.Set != nil {
		return en.Set.Name
	}

	return "reg.Raw"
}

// goName returns the reg and layout package type name for an access
// mode.
func (access Access) goName() string {
	switch access {
	case AccessRO:
		return "RO"
	case AccessWO:
		return "WO"
	}

	return "RW"
}

// accessorOf returns the reg accessor type for an entry.
func accessorOf(en *Entry) string {
	return fmt.Sprintf("reg.%s[%s, %s]", en.Access.goName(), uintType(en.width()), shapeOf(en))
}

func emitImports(out *bytes.Buffer, doc *Document) {
	needReg := len(doc.Layouts) != 0
	for _, fs := range doc.Sets {
		if len(fs.Fields) != 0 {
			needReg = true
		}
	}
	if !needReg {
		return
	}

	fmt.Fprintf(out, "import (\n")
	if len(doc.Layouts) != 0 {
		fmt.Fprintf(out, "\t\"unsafe\"\n\n")
		fmt.Fprintf(out, "\t\"github.com/ezrec/regmap/layout\"\n")
	}
	fmt.Fprintf(out, "\t\"github.com/ezrec/regmap/reg\"\n")
	fmt.Fprintf(out, ")\n\n")
}

func emitFieldSet(out *bytes.Buffer, fs *FieldSet) {
	typ := uintType(fs.Bits)

	fmt.Fprintf(out, "// %s is the %d-bit %s register shape.\n", fs.Name, fs.Bits, fs.Name)
	fmt.Fprintf(out, "type %s struct{}\n\n", fs.Name)

	if len(fs.Fields) == 0 {
		return
	}

	fmt.Fprintf(out, "// %s fields.\n", fs.Name)
	fmt.Fprintf(out, "var (\n")
	for _, fd := range fs.Fields {
		fmt.Fprintf(out, "\t%s_%s = reg.NewField[%s, %s](%d, %d)\n",
			fs.Name, fd.Name, typ, fs.Name, fd.Offset, fd.Width)
	}
	fmt.Fprintf(out, ")\n\n")

	consts := false
	for _, fd := range fs.Fields {
		if len(fd.Consts) != 0 {
			consts = true
			break
		}
	}
	if consts {
		fmt.Fprintf(out, "// %s field constants.\n", fs.Name)
		fmt.Fprintf(out, "const (\n")
		for _, fd := range fs.Fields {
			for _, cd := range fd.Consts {
				fmt.Fprintf(out, "\t%s_%s_%s %s = %#x\n",
					fs.Name, fd.Name, cd.Name, typ, cd.Value)
			}
		}
		fmt.Fprintf(out, ")\n\n")
	}

	fmt.Fprintf(out, "// %sFields names every %s field, for reg.Decode and reg.Dump.\n",
		fs.Name, fs.Name)
	fmt.Fprintf(out, "var %sFields = map[string]reg.Field[%s, %s]{\n", fs.Name, typ, fs.Name)
	for _, fd := range fs.Fields {
		fmt.Fprintf(out, "\t%q: %s_%s,\n", fd.Name, fs.Name, fd.Name)
	}
	fmt.Fprintf(out, "}\n\n")
}

func emitLayout(out *bytes.Buffer, lay *Layout) {
	fmt.Fprintf(out, "// %s is the %s register layout.\n", lay.Name, lay.Name)
	fmt.Fprintf(out, "type %s struct {\n", lay.Name)
	for n := range lay.Entries {
		en := &lay.Entries[n]
		if en.Reserved {
			continue
		}
		fmt.Fprintf(out, "\t%s %s // %#x\n", en.Name, accessorOf(en), en.Offset)
	}
	fmt.Fprintf(out, "}\n\n")

	fmt.Fprintf(out, "// Map%s places %s at base, which must span %#x bytes.\n",
		lay.Name, lay.Name, lay.Extent)
	fmt.Fprintf(out, "func Map%s(base unsafe.Pointer) (m *%s, err error) {\n",
		lay.Name, lay.Name)
	fmt.Fprintf(out, "\ttb := layout.NewTable(base)\n")
	fmt.Fprintf(out, "\tm = &%s{}\n", lay.Name)
	for n := range lay.Entries {
		en := &lay.Entries[n]
		if en.Reserved {
			fmt.Fprintf(out, "\ttb.Pad(%#x)\n", en.Offset)
			continue
		}
		fmt.Fprintf(out, "\tm.%s = layout.%s[%s, %s](tb, %#x)\n",
			en.Name, en.Access.goName(), uintType(en.width()), shapeOf(en), en.Offset)
	}
	fmt.Fprintf(out, "\terr = tb.End(%#x)\n", lay.Extent)
	fmt.Fprintf(out, "\tif err != nil {\n\t\tm = nil\n\t}\n\n")
	fmt.Fprintf(out, "\treturn\n")
	fmt.Fprintf(out, "}\n\n")
}
