// Package blueprint describes a unit in YAML and renders it through the
// emitter.
package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/emitter"
)

// ErrInvalidBlueprint is returned for blueprints that cannot be built.
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// Blueprint is the YAML form of a unit.
type Blueprint struct {
	Name        string       `yaml:"name"`
	Kind        string       `yaml:"kind,omitempty"`
	Modifier    string       `yaml:"modifier,omitempty"`
	Access      *string      `yaml:"access,omitempty"` // nil keeps the default, "" omits it
	Inheritance string       `yaml:"inheritance,omitempty"`
	Header      string       `yaml:"header,omitempty"`
	Attributes  []string     `yaml:"attributes,omitempty"`
	Imports     []string     `yaml:"imports,omitempty"`
	Namespaces  []string     `yaml:"namespaces,omitempty"`
	Fields      []Field      `yaml:"fields,omitempty"`
	Properties  []Property   `yaml:"properties,omitempty"`
	Methods     []Method     `yaml:"methods,omitempty"`
	Nested      []*Blueprint `yaml:"nested,omitempty"`
	Output      string       `yaml:"output,omitempty"`
}

// Field is a member field. Line, when set, is written verbatim.
type Field struct {
	Name     string  `yaml:"name,omitempty"`
	Type     string  `yaml:"type,omitempty"`
	Value    string  `yaml:"value,omitempty"`
	Modifier string  `yaml:"modifier,omitempty"`
	Access   *string `yaml:"access,omitempty"`
	Line     string  `yaml:"line,omitempty"`
}

// Property is a get-only property, or get/set when Set is present. Line,
// when set, replaces the synthesized declaration.
type Property struct {
	Name     string  `yaml:"name,omitempty"`
	Type     string  `yaml:"type,omitempty"`
	Get      string  `yaml:"get"`
	Set      string  `yaml:"set,omitempty"`
	Modifier string  `yaml:"modifier,omitempty"`
	Access   *string `yaml:"access,omitempty"`
	Line     string  `yaml:"line,omitempty"`
}

// Method is a method with its body statements.
type Method struct {
	Signature    string   `yaml:"signature"`
	Comment      string   `yaml:"comment,omitempty"`
	BlockComment string   `yaml:"block_comment,omitempty"`
	Body         []string `yaml:"body,omitempty"`
}

// Load reads a blueprint file.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a blueprint. Unknown keys are rejected.
func Parse(data []byte) (*Blueprint, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Blueprint
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidBlueprint)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlueprint, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Marshal encodes the blueprint as YAML.
func (b *Blueprint) Marshal() ([]byte, error) {
	return yaml.Marshal(b)
}

// Validate checks the parts a unit cannot be built without.
func (b *Blueprint) Validate() error {
	return b.validate(b.Name)
}

func (b *Blueprint) validate(where string) error {
	if b.Name == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidBlueprint, where)
	}
	for i, f := range b.Fields {
		if f.Line == "" && (f.Name == "" || f.Type == "") {
			return fmt.Errorf("%w: %s: field %d needs name and type or line", ErrInvalidBlueprint, where, i)
		}
	}
	for i, p := range b.Properties {
		if p.Line == "" && (p.Name == "" || p.Type == "") {
			return fmt.Errorf("%w: %s: property %d needs name and type or line", ErrInvalidBlueprint, where, i)
		}
		if p.Get == "" {
			return fmt.Errorf("%w: %s: property %d has no get body", ErrInvalidBlueprint, where, i)
		}
	}
	for i, m := range b.Methods {
		if m.Signature == "" {
			return fmt.Errorf("%w: %s: method %d has no signature", ErrInvalidBlueprint, where, i)
		}
	}
	for _, n := range b.Nested {
		if n == nil {
			return fmt.Errorf("%w: %s: empty nested blueprint", ErrInvalidBlueprint, where)
		}
		if err := n.validate(where + "." + n.Name); err != nil {
			return err
		}
	}
	return nil
}

// Build turns the blueprint into a unit ready to render. The blueprint is
// expected to be valid.
func (b *Blueprint) Build() *emitter.Unit {
	return b.build(false)
}

func (b *Blueprint) build(nested bool) *emitter.Unit {
	opts := []emitter.Option{
		emitter.WithModifier(b.Modifier),
		emitter.WithInheritance(b.Inheritance),
		emitter.WithHeader(b.Header),
	}
	if b.Kind != "" {
		opts = append(opts, emitter.WithKind(b.Kind))
	}
	opts = appendAccess(opts, b.Access)
	if nested {
		opts = append(opts, emitter.AsNested())
	}
	u := emitter.New(b.Name, opts...)

	for _, attr := range b.Attributes {
		u.AddAttribute(attr)
	}
	for _, imp := range b.Imports {
		u.AddImport(imp)
	}
	for _, ns := range b.Namespaces {
		u.AddNamespace(ns)
	}

	for _, n := range b.Nested {
		u.AddNested(n.build(true))
	}

	for _, f := range b.Fields {
		if f.Line != "" {
			u.AddFieldLine(f.Line)
			continue
		}
		u.AddField(f.Name, f.Value, f.Type, memberOptions(f.Modifier, f.Access)...)
	}

	for _, p := range b.Properties {
		switch {
		case p.Line != "" && p.Set == "":
			u.AddGetOnlyPropertyLine(p.Line, p.Get)
		case p.Line != "":
			u.AddGetSetPropertyLine(p.Line, p.Get, p.Set)
		case p.Set == "":
			u.AddGetOnlyProperty(p.Name, p.Type, p.Get, memberOptions(p.Modifier, p.Access)...)
		default:
			u.AddGetSetProperty(p.Name, p.Type, p.Get, p.Set, memberOptions(p.Modifier, p.Access)...)
		}
	}

	for _, m := range b.Methods {
		u.StartMethod(m.Signature)
		if m.Comment != "" {
			u.WriteMethodComment(m.Comment)
		}
		if m.BlockComment != "" {
			u.WriteMethodBlockComment(m.BlockComment)
		}
		for _, stmt := range m.Body {
			u.WriteMethodLine(stmt)
		}
		u.EndMethod()
	}

	return u
}

// Render validates, builds and renders the blueprint.
func (b *Blueprint) Render() (emitter.Source, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b.Build().Render(), nil
}

// OutputPath is where the rendered unit is written, relative to the output
// directory.
func (b *Blueprint) OutputPath() string {
	if b.Output != "" {
		return b.Output
	}
	return b.Name + ".cs"
}

// File renders the blueprint as a generated file.
func (b *Blueprint) File() (composer.File, error) {
	src, err := b.Render()
	if err != nil {
		return composer.File{}, err
	}
	return composer.File{Path: b.OutputPath(), Source: src.String()}, nil
}

func memberOptions(modifier string, access *string) []emitter.Option {
	return appendAccess([]emitter.Option{emitter.WithModifier(modifier)}, access)
}

func appendAccess(opts []emitter.Option, access *string) []emitter.Option {
	if access == nil {
		return opts
	}
	return append(opts, emitter.WithAccess(*access))
}
