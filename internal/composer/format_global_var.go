package composer

import (
	"github.com/vlad/classgen-go/internal/emitter"
	ourtypes "github.com/vlad/classgen-go/internal/types"
)

// FormatGlobalVars gathers package-level constants and variables into a
// static class. Constants without a literal value become static readonly
// fields and anything without a literal is initialized to default.
func (p *ProjectComposer) FormatGlobalVars(packageName string, globals []*ourtypes.GlobalVarInfo) *emitter.Unit {
	m := p.newMapper(packageName)
	u := emitter.New(typeName(packageName)+"Globals", emitter.WithModifier("static partial"))

	for _, gv := range globals {
		access := "public"
		if !exported(gv.Name) {
			access = "private"
		}

		csType := m.mapType(gv.Type)
		modifier := "static"
		value := floatSuffix(csType, gv.Value)
		switch {
		case gv.IsConst && value != "":
			modifier = "const"
		case gv.IsConst:
			modifier = "static readonly"
		}
		if value == "" {
			value = defaultValue(csType)
		}
		if value == "" {
			value = "default"
		}
		if gv.Comment == "" {
			u.AddField(typeName(gv.Name), value, csType, emitter.WithAccess(access), emitter.WithModifier(modifier))
			continue
		}

		m.use(nsModel)
		u.AddFieldLine("[" + descriptionAttribute(gv.Comment) + "] " + access + " " + modifier + " " + csType + " " + typeName(gv.Name) + " = " + value)
	}

	addImports(u, m.imports)
	return u
}
