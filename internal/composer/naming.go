package composer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

var reservedWords = map[string]bool{
	"abstract": true, "base": true, "bool": true, "byte": true, "char": true,
	"checked": true, "class": true, "decimal": true, "delegate": true,
	"double": true, "event": true, "explicit": true, "extern": true,
	"fixed": true, "float": true, "foreach": true, "implicit": true,
	"in": true, "int": true, "internal": true, "is": true, "lock": true,
	"long": true, "namespace": true, "new": true, "null": true,
	"object": true, "operator": true, "out": true, "override": true,
	"params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true,
	"string": true, "this": true, "throw": true, "try": true,
	"typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true,
	"void": true, "volatile": true, "while": true,
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// typeName turns a Go identifier into a PascalCase C# type or member name.
func typeName(name string) string {
	if exported(name) {
		return name
	}
	return strcase.ToCamel(name)
}

// backingField returns the private field name behind a property.
func backingField(name string) string {
	return "_" + strcase.ToLowerCamel(name)
}

// paramName returns a usable C# parameter name; index numbers unnamed ones.
func paramName(name string, index int) string {
	if name == "" || name == "_" {
		return "arg" + strconv.Itoa(index)
	}
	if reservedWords[name] {
		return "@" + name
	}
	return name
}

// interfaceName applies the I prefix convention.
func interfaceName(name string) string {
	name = typeName(name)
	if len(name) > 1 && name[0] == 'I' && unicode.IsUpper(rune(name[1])) {
		return name
	}
	return "I" + name
}

// namespaceSegments derives namespace parts from a package import path. A
// leading host segment such as example.com is dropped.
func namespaceSegments(pkgPath string) []string {
	parts := strings.Split(pkgPath, "/")
	if len(parts) > 1 && strings.Contains(parts[0], ".") {
		parts = parts[1:]
	}
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, strcase.ToCamel(part))
	}
	return segments
}

// descriptionAttribute renders the first line of a doc comment as a
// Description attribute.
func descriptionAttribute(comment string) string {
	first, _, _ := strings.Cut(comment, "\n")
	first = strings.ReplaceAll(first, `\`, `\\`)
	first = strings.ReplaceAll(first, `"`, `\"`)
	return `Description("` + first + `")`
}
