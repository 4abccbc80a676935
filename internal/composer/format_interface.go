package composer

import (
	"strings"

	"github.com/vlad/classgen-go/internal/emitter"
	ourtypes "github.com/vlad/classgen-go/internal/types"
)

// FormatInterface builds a C# interface for a Go interface declared in
// packageName. Embedded interfaces become the base list.
func (p *ProjectComposer) FormatInterface(packageName string, iface *ourtypes.InterfaceInfo) *emitter.Unit {
	m := p.newMapper(packageName)

	bases := make([]string, 0, len(iface.Embeddeds))
	for _, emb := range iface.Embeddeds {
		mapped := m.mapType(emb)
		if _, ok := wellKnown[emb]; !ok {
			mapped = interfaceName(mapped)
		}
		bases = append(bases, mapped)
	}

	opts := []emitter.Option{
		emitter.WithKind("interface"),
		emitter.WithInheritance(strings.Join(bases, ", ")),
	}
	if !exported(iface.Name) {
		opts = append(opts, emitter.WithAccess("internal"))
	}
	u := emitter.New(interfaceName(iface.Name), opts...)

	if iface.Comment != "" {
		u.AddAttribute(descriptionAttribute(iface.Comment))
		m.use(nsModel)
	}

	for _, method := range iface.Methods {
		u.AddFieldLine(signature(m, "", method.Name, method.Params, method.Results))
	}

	addImports(u, m.imports)
	return u
}
