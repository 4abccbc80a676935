package composer

import (
	"reflect"
	"strings"

	"github.com/vlad/classgen-go/internal/emitter"
	ourtypes "github.com/vlad/classgen-go/internal/types"
)

// FormatStruct builds a class for a Go struct declared in packageName.
// Anonymous struct fields become nested classes.
func (p *ProjectComposer) FormatStruct(packageName string, s *ourtypes.StructInfo) *emitter.Unit {
	return p.formatStruct(packageName, s, typeName(s.Name), false)
}

func (p *ProjectComposer) formatStruct(packageName string, s *ourtypes.StructInfo, name string, nested bool) *emitter.Unit {
	m := p.newMapper(packageName)

	fields := s.Fields
	base := ""
	if len(fields) > 0 && fields[0].Embedded {
		base = m.mapType(fields[0].Type)
		fields = fields[1:]
	}

	opts := []emitter.Option{
		emitter.WithModifier(p.opts.ClassModifier),
		emitter.WithInheritance(base),
	}
	if !exported(s.Name) && !nested {
		opts = append(opts, emitter.WithAccess("internal"))
	}
	if nested {
		opts = append(opts, emitter.AsNested())
	}
	u := emitter.New(name, opts...)

	if s.Comment != "" {
		u.AddAttribute(descriptionAttribute(s.Comment))
		m.use(nsModel)
	}

	for _, f := range fields {
		p.formatField(packageName, u, m, f)
	}

	for _, method := range s.Methods {
		access := "public"
		if !exported(method.Name) {
			access = "private"
		}
		writeStub(u, m, signature(m, access, method.Name, method.Params, method.Results), method.Comment)
	}

	addImports(u, m.imports)
	return u
}

func (p *ProjectComposer) formatField(packageName string, u *emitter.Unit, m *typeMapper, f *ourtypes.StructField) {
	var csType string
	if f.Inline != nil {
		csType = typeName(f.Name) + "Type"
		u.AddNested(p.formatStruct(packageName, f.Inline, csType, true))
	} else {
		csType = m.mapType(f.Type)
	}

	name := typeName(f.Name)
	field := backingField(f.Name)
	u.AddField(field, defaultValue(csType), csType, emitter.WithAccess("private"))
	if !exported(f.Name) {
		return
	}

	declaration := "public " + csType + " " + name
	if attr := jsonAttribute(f.Tag); attr != "" {
		declaration = "[" + attr + "] " + declaration
		m.use(nsSerializing)
	}
	u.AddGetSetPropertyLine(declaration, "return "+field+";", field+" = value;")
}

// jsonAttribute translates a json struct tag into a System.Text.Json attribute.
func jsonAttribute(tag string) string {
	value, ok := reflect.StructTag(tag).Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(value, ",")
	switch name {
	case "-":
		return "JsonIgnore"
	case "":
		return ""
	}
	return `JsonPropertyName("` + name + `")`
}
