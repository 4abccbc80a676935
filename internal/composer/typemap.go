package composer

import (
	"strings"
	"unicode"
)

// Import namespaces required by mapped types.
const (
	nsSystem      = "System"
	nsGeneric     = "System.Collections.Generic"
	nsChannels    = "System.Threading.Channels"
	nsThreading   = "System.Threading"
	nsIO          = "System.IO"
	nsModel       = "System.ComponentModel"
	nsSerializing = "System.Text.Json.Serialization"
)

var builtinTypes = map[string]string{
	"bool":        "bool",
	"string":      "string",
	"int":         "int",
	"int8":        "sbyte",
	"int16":       "short",
	"int32":       "int",
	"rune":        "int",
	"int64":       "long",
	"uint":        "uint",
	"uint8":       "byte",
	"byte":        "byte",
	"uint16":      "ushort",
	"uint32":      "uint",
	"uint64":      "ulong",
	"uintptr":     "nuint",
	"float32":     "float",
	"float64":     "double",
	"complex64":   "System.Numerics.Complex",
	"complex128":  "System.Numerics.Complex",
	"any":         "object",
	"interface{}": "object",
}

// wellKnown maps qualified Go types to a C# type and the namespace it needs.
var wellKnown = map[string][2]string{
	"error":           {"Exception", nsSystem},
	"time.Time":       {"DateTime", nsSystem},
	"time.Duration":   {"TimeSpan", nsSystem},
	"context.Context": {"CancellationToken", nsThreading},
	"io.Reader":       {"Stream", nsIO},
	"io.Writer":       {"Stream", nsIO},
	"io.ReadWriter":   {"Stream", nsIO},
	"io.Closer":       {"IDisposable", nsSystem},
	"sync.Mutex":      {"object", ""},
	"sync.RWMutex":    {"object", ""},
}

// typeMapper converts Go type expressions into C# types and collects the
// imports they need. Interfaces known to the composer, keyed by
// "<package>.<Name>", are renamed with the I prefix.
type typeMapper struct {
	imports    []string
	pkg        string
	interfaces map[string]bool
}

// MapType converts a Go type expression, as printed by go/types or found in
// source, into a C# type. The second result lists required imports.
func MapType(goType string) (string, []string) {
	m := &typeMapper{}
	cs := m.mapType(goType)
	return cs, m.imports
}

func (m *typeMapper) use(ns string) {
	if ns == "" {
		return
	}
	for _, existing := range m.imports {
		if existing == ns {
			return
		}
	}
	m.imports = append(m.imports, ns)
}

func (m *typeMapper) mapType(t string) string {
	t = strings.TrimSpace(t)
	switch {
	case t == "":
		return "object"
	case strings.HasPrefix(t, "..."):
		return m.mapType(t[3:]) + "[]"
	case strings.HasPrefix(t, "*"):
		return m.mapType(t[1:])
	case t == "[]byte":
		return "byte[]"
	case strings.HasPrefix(t, "[]"):
		m.use(nsGeneric)
		return "List<" + m.mapType(t[2:]) + ">"
	case strings.HasPrefix(t, "["):
		end := matchingBracket(t, 0)
		if end < 0 {
			return "object"
		}
		return m.mapType(t[end+1:]) + "[]"
	case strings.HasPrefix(t, "map["):
		end := matchingBracket(t, 3)
		if end < 0 {
			return "object"
		}
		m.use(nsGeneric)
		return "Dictionary<" + m.mapType(t[4:end]) + ", " + m.mapType(t[end+1:]) + ">"
	case strings.HasPrefix(t, "<-chan "), strings.HasPrefix(t, "chan<- "):
		m.use(nsChannels)
		return "Channel<" + m.mapType(t[7:]) + ">"
	case strings.HasPrefix(t, "chan "):
		m.use(nsChannels)
		return "Channel<" + m.mapType(t[5:]) + ">"
	case strings.HasPrefix(t, "func("), strings.HasPrefix(t, "func "):
		m.use(nsSystem)
		return "Delegate"
	case strings.HasPrefix(t, "struct{"), strings.HasPrefix(t, "interface{"):
		if cs, ok := builtinTypes[t]; ok {
			return cs
		}
		return "object"
	}

	if cs, ok := builtinTypes[t]; ok {
		return cs
	}
	if known, ok := wellKnown[t]; ok {
		m.use(known[1])
		return known[0]
	}

	// Generic instantiation Name[A, B].
	if open := strings.Index(t, "["); open > 0 && strings.HasSuffix(t, "]") {
		args := splitTopLevel(t[open+1 : len(t)-1])
		mapped := make([]string, 0, len(args))
		for _, arg := range args {
			mapped = append(mapped, m.mapType(arg))
		}
		return m.mapType(t[:open]) + "<" + strings.Join(mapped, ", ") + ">"
	}

	if m.isInterface(t) {
		return interfaceName(unqualified(t))
	}
	return typeName(unqualified(t))
}

// isInterface reports whether t names a Go interface scaffolded as I<Name>.
// Unqualified names belong to the package being composed.
func (m *typeMapper) isInterface(t string) bool {
	if !strings.Contains(t, ".") {
		t = m.pkg + "." + t
	}
	return m.interfaces[t]
}

// unqualified strips a package path or name qualifier.
func unqualified(t string) string {
	if i := strings.LastIndex(t, "."); i >= 0 {
		return t[i+1:]
	}
	return t
}

// matchingBracket returns the index of the ']' closing the '[' at open.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits on commas outside brackets and parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// defaultValue is the initializer of a backing field, empty when the C#
// default is fine.
func defaultValue(csType string) string {
	switch {
	case csType == "string":
		return `""`
	case strings.HasPrefix(csType, "List<"), strings.HasPrefix(csType, "Dictionary<"):
		return "new()"
	}
	return ""
}

// floatSuffix marks numeric literals assigned to a C# float, which would not
// otherwise convert implicitly from double.
func floatSuffix(csType, value string) string {
	if csType != "float" || value == "" {
		return value
	}
	last := value[len(value)-1]
	if last == 'f' || last == 'F' || !unicode.IsDigit(rune(last)) {
		return value
	}
	return value + "f"
}
