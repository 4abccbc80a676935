package emitter

import (
	"strings"
)

// Banner opens every top-level rendered unit.
const Banner = "/*\n* Generated by classgen\n*/"

// Section labels, in render order.
const (
	LabelInnerClasses = "Inner Classes"
	LabelMembers      = "Members"
	LabelFunctions    = "Functions"
)

// Source is the rendered text of a unit.
type Source string

func (s Source) String() string {
	return string(s)
}

// Render assembles the unit and spends it. Any further call on u panics
// with ErrUnitSpent.
func (u *Unit) Render() Source {
	u.mustBuild()

	var out strings.Builder
	if !u.nested {
		out.WriteString(Banner)
		out.WriteByte('\n')
	}
	if u.imports.len() > 0 {
		for _, name := range u.imports.values() {
			out.WriteString("using " + name + ";\n")
		}
		out.WriteByte('\n')
	}

	body := u.classBody()
	if !u.attributes.empty() {
		body = u.attributes.String() + body
	}

	if u.nested || u.namespaces.len() == 0 {
		out.WriteString(body)
	} else {
		out.WriteString(u.wrapNamespaces(body))
	}

	u.release()
	return Source(out.String())
}

func (u *Unit) classBody() string {
	sections := []struct {
		label string
		text  *section
	}{
		{LabelInnerClasses, u.nestedUnits},
		{LabelMembers, u.members},
		{LabelFunctions, u.methods},
	}

	u.header.openBlock("")
	wrote := false
	for _, s := range sections {
		if s.text.empty() {
			continue
		}
		if wrote {
			u.header.writeLine("")
		}
		u.header.writeLine("// " + s.label)
		u.header.writeLineByLine(s.text.String())
		wrote = true
	}
	u.header.closeBlock(u.kind + " " + u.name)
	return u.header.String()
}

func (u *Unit) wrapNamespaces(body string) string {
	names := u.namespaces.values()
	wrapper := &section{}
	for _, name := range names {
		wrapper.writeLine("namespace " + name)
		wrapper.openBlock("")
	}
	wrapper.writeLineByLine(body)
	for i := len(names) - 1; i >= 0; i-- {
		wrapper.closeBlock(names[i])
	}
	return wrapper.String()
}

func (u *Unit) release() {
	u.spent = true
	u.header = nil
	u.attributes = nil
	u.members = nil
	u.methods = nil
	u.nestedUnits = nil
	u.imports = nil
	u.namespaces = nil
}
