// Package emitter renders class-like source units from incremental builder
// calls.
//
// A Unit collects attributes, members, methods and nested units in separate
// sections. Render assembles them in a fixed order, wraps the result in the
// unit's namespaces and spends the unit. Units are not safe for concurrent
// use.
package emitter

import (
	"strings"
)

// DefaultAccess is the access modifier used when none is given.
const DefaultAccess = "public"

// declaration carries the optional parts of a unit or member declaration.
type declaration struct {
	modifier    string
	access      string
	inheritance string
	header      string
	kind        string
	nested      bool
}

// Option configures a unit or a member declaration. Options that only make
// sense for units (WithInheritance, WithHeader, WithKind, AsNested) are
// ignored by member helpers.
type Option func(*declaration)

// WithModifier sets the declaration modifier, e.g. "static" or "partial".
func WithModifier(modifier string) Option {
	return func(d *declaration) { d.modifier = modifier }
}

// WithAccess sets the access modifier. An empty value omits it.
func WithAccess(access string) Option {
	return func(d *declaration) { d.access = access }
}

// WithInheritance sets the base/implements clause of a unit.
func WithInheritance(inheritance string) Option {
	return func(d *declaration) { d.inheritance = inheritance }
}

// WithHeader replaces the synthesized header line of a unit verbatim.
func WithHeader(line string) Option {
	return func(d *declaration) { d.header = line }
}

// WithKind sets the declaration keyword of a unit. Defaults to "class".
func WithKind(kind string) Option {
	return func(d *declaration) { d.kind = kind }
}

// AsNested marks a unit as living inside another one: it renders without
// banner and namespaces.
func AsNested() Option {
	return func(d *declaration) { d.nested = true }
}

func newDeclaration(opts []Option) declaration {
	d := declaration{access: DefaultAccess, kind: "class"}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Unit is a class-like declaration under construction.
type Unit struct {
	name   string
	kind   string
	nested bool

	header      *section
	attributes  *section
	members     *section
	methods     *section
	nestedUnits *section

	imports    *orderedSet
	namespaces *orderedSet

	spent bool
}

// New starts a unit named name. The header line is fixed here:
// "<access> <modifier> <kind> <name>[ : <inheritance>]" unless WithHeader
// supplies one.
func New(name string, opts ...Option) *Unit {
	d := newDeclaration(opts)
	u := &Unit{
		name:        name,
		kind:        d.kind,
		nested:      d.nested,
		header:      &section{},
		attributes:  &section{},
		members:     &section{},
		methods:     &section{},
		nestedUnits: &section{},
		imports:     newOrderedSet(),
		namespaces:  newOrderedSet(),
	}

	line := d.header
	if strings.TrimSpace(line) == "" {
		line = joinNonBlank(d.access, d.modifier, d.kind, name)
		if inheritance := strings.TrimSpace(d.inheritance); inheritance != "" {
			line += " : " + inheritance
		}
	}
	u.header.writeLine(line)
	return u
}

// Name returns the unit name.
func (u *Unit) Name() string {
	return u.name
}

// Nested reports whether the unit renders with nested semantics.
func (u *Unit) Nested() bool {
	return u.nested
}

// Imports returns a copy of the import set in insertion order.
func (u *Unit) Imports() []string {
	u.mustBuild()
	return u.imports.values()
}

// Namespaces returns a copy of the namespace path, outermost first.
func (u *Unit) Namespaces() []string {
	u.mustBuild()
	return u.namespaces.values()
}

// AddImport records an import. Duplicates are ignored.
func (u *Unit) AddImport(name string) {
	u.mustBuild()
	u.imports.add(name)
}

// AddNamespace appends an enclosing namespace. Duplicates are ignored.
func (u *Unit) AddNamespace(name string) {
	u.mustBuild()
	u.namespaces.add(name)
}

// AddAttribute decorates the unit header with [attribute].
func (u *Unit) AddAttribute(attribute string) {
	u.mustBuild()
	u.attributes.writeLine(bracket(attribute))
}

// AddField writes "<access> <modifier> <type> <name> = <value>;". An empty
// value drops the initializer.
func (u *Unit) AddField(name, value, typ string, opts ...Option) {
	u.mustBuild()
	d := newDeclaration(opts)
	line := joinNonBlank(d.access, d.modifier, typ, name)
	if value = strings.TrimSpace(value); value != "" {
		line += " = " + value
	}
	u.members.writeLine(terminate(line))
}

// AddFieldLine writes a custom member line terminated by a single ';'.
func (u *Unit) AddFieldLine(line string) {
	u.mustBuild()
	u.members.writeLine(terminate(line))
}

// AddGetOnlyProperty writes a property with a get accessor.
func (u *Unit) AddGetOnlyProperty(name, typ, getBody string, opts ...Option) {
	d := newDeclaration(opts)
	u.AddGetOnlyPropertyLine(joinNonBlank(d.access, d.modifier, typ, name), getBody)
}

// AddGetSetProperty writes a property with get and set accessors.
func (u *Unit) AddGetSetProperty(name, typ, getBody, setBody string, opts ...Option) {
	d := newDeclaration(opts)
	u.AddGetSetPropertyLine(joinNonBlank(d.access, d.modifier, typ, name), getBody, setBody)
}

// AddGetOnlyPropertyLine is AddGetOnlyProperty with a composed declaration.
func (u *Unit) AddGetOnlyPropertyLine(declaration, getBody string) {
	u.mustBuild()
	u.startProperty(declaration)
	u.writeAccessor("get", getBody)
	u.members.closeBlock("")
}

// AddGetSetPropertyLine is AddGetSetProperty with a composed declaration.
func (u *Unit) AddGetSetPropertyLine(declaration, getBody, setBody string) {
	u.mustBuild()
	u.startProperty(declaration)
	u.writeAccessor("get", getBody)
	u.writeAccessor("set", setBody)
	u.members.closeBlock("")
}

func (u *Unit) startProperty(declaration string) {
	if !u.members.empty() {
		u.members.writeLine("")
	}
	u.members.writeLine(declaration)
	u.members.openBlock("")
}

func (u *Unit) writeAccessor(keyword, body string) {
	u.members.writeLine(keyword)
	u.members.openBlock("")
	u.members.writeLineByLine(body)
	u.members.closeBlock("")
}

// StartMethod writes a method declaration and opens its body.
func (u *Unit) StartMethod(declaration string) {
	u.mustBuild()
	u.methods.writeLine(declaration)
	u.methods.openBlock("")
}

// WriteMethodLine writes one statement terminated by a single ';'.
func (u *Unit) WriteMethodLine(statement string) {
	u.mustBuild()
	u.methods.writeLine(terminate(statement))
}

// WriteMethodComment writes a "// comment" line into the method body.
func (u *Unit) WriteMethodComment(comment string) {
	u.mustBuild()
	u.methods.writeLine("// " + comment)
}

// WriteMethodBlockComment writes a /* */ comment, one "* " line per input line.
func (u *Unit) WriteMethodBlockComment(comment string) {
	u.mustBuild()
	u.methods.writeLine("/*")
	for _, line := range splitLines(comment) {
		u.methods.writeLine("* " + line)
	}
	u.methods.writeLine("*/")
}

// EndMethod closes the method opened last.
func (u *Unit) EndMethod() {
	u.mustBuild()
	u.methods.closeBlock("")
}

// AddNested renders child as an inner unit of u. The child's imports move
// to u and the child is spent afterwards.
func (u *Unit) AddNested(child *Unit) {
	u.mustBuild()
	if child == u {
		panic(ErrSelfNesting)
	}
	child.mustBuild()

	for _, name := range child.imports.values() {
		u.imports.add(name)
	}
	child.imports.clear()
	child.nested = true

	if !u.nestedUnits.empty() {
		u.nestedUnits.writeLine("")
	}
	u.nestedUnits.writeLineByLine(child.Render().String())
}

func (u *Unit) mustBuild() {
	if u.spent {
		panic(ErrUnitSpent)
	}
}
