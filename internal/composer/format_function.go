package composer

import (
	"strings"

	"github.com/vlad/classgen-go/internal/emitter"
	ourtypes "github.com/vlad/classgen-go/internal/types"
)

// signature renders a C# method declaration from Go parameters and results.
// A trailing error result is dropped and several results become a tuple.
func signature(m *typeMapper, modifiers, name string, params, results []*ourtypes.Param) string {
	if n := len(results); n > 0 && results[n-1].Type == "error" {
		results = results[:n-1]
	}

	ret := "void"
	switch len(results) {
	case 0:
	case 1:
		ret = m.mapType(results[0].Type)
	default:
		elems := make([]string, 0, len(results))
		for _, r := range results {
			elem := m.mapType(r.Type)
			if r.Name != "" && r.Name != "_" {
				elem += " " + typeName(r.Name)
			}
			elems = append(elems, elem)
		}
		ret = "(" + strings.Join(elems, ", ") + ")"
	}

	args := make([]string, 0, len(params))
	for i, p := range params {
		arg := m.mapType(p.Type) + " " + paramName(p.Name, i)
		if strings.HasPrefix(p.Type, "...") {
			arg = "params " + arg
		}
		args = append(args, arg)
	}

	return strings.TrimSpace(modifiers+" "+ret) + " " + typeName(name) + "(" + strings.Join(args, ", ") + ")"
}

// writeStub emits a method whose body throws NotImplementedException.
func writeStub(u *emitter.Unit, m *typeMapper, declaration, comment string) {
	u.StartMethod(declaration)
	switch {
	case comment == "":
	case strings.Contains(comment, "\n"):
		u.WriteMethodBlockComment(comment)
	default:
		u.WriteMethodComment(comment)
	}
	m.use(nsSystem)
	u.WriteMethodLine("throw new NotImplementedException()")
	u.EndMethod()
}

// FormatFunctions builds a static class holding stubs for top-level
// functions of a package.
func (p *ProjectComposer) FormatFunctions(packageName string, fns []*ourtypes.FunctionInfo) *emitter.Unit {
	m := p.newMapper(packageName)
	u := emitter.New(typeName(packageName)+"Functions", emitter.WithModifier("static partial"))
	for _, fn := range fns {
		access := "public"
		if !exported(fn.Name) {
			access = "internal"
		}
		writeStub(u, m, signature(m, access+" static", fn.Name, fn.Params, fn.Results), fn.Comment)
	}
	addImports(u, m.imports)
	return u
}

func addImports(u *emitter.Unit, imports []string) {
	for _, ns := range imports {
		u.AddImport(ns)
	}
}
