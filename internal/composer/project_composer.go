package composer

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vlad/classgen-go/internal/emitter"
	"github.com/vlad/classgen-go/internal/parser"
	ourtypes "github.com/vlad/classgen-go/internal/types" // Alias ourtypes
)

// ErrFileNotFound is returned when a file is not part of the parsed project.
var ErrFileNotFound = errors.New("file info not found")

// Options control how Go declarations are scaffolded.
type Options struct {
	RootNamespace  string
	ClassModifier  string
	NestNamespaces bool
}

// Option configures a ProjectComposer.
type Option func(*Options)

// WithRootNamespace prefixes every generated namespace.
func WithRootNamespace(ns string) Option {
	return func(o *Options) { o.RootNamespace = ns }
}

// WithClassModifier sets the modifier of classes generated from structs.
func WithClassModifier(modifier string) Option {
	return func(o *Options) { o.ClassModifier = modifier }
}

// WithNestedNamespaces emits one namespace block per package path segment
// instead of a single dotted namespace.
func WithNestedNamespaces(nest bool) Option {
	return func(o *Options) { o.NestNamespaces = nest }
}

// File is one generated C# source file. Path is relative to the output
// directory and always uses forward slashes.
type File struct {
	Path   string
	Source string
}

// ProjectComposer turns parsed Go files into C# scaffolding.
type ProjectComposer struct {
	projectInfo parser.ProjectInfo
	opts        Options
	interfaces  map[string]bool
}

// New creates a new ProjectComposer instance
func New(projectInfo parser.ProjectInfo, opts ...Option) *ProjectComposer {
	o := Options{ClassModifier: "partial"}
	for _, opt := range opts {
		opt(&o)
	}
	p := &ProjectComposer{
		projectInfo: projectInfo,
		opts:        o,
		interfaces:  make(map[string]bool),
	}
	for _, info := range projectInfo {
		p.registerInterfaces(info)
	}
	return p
}

// registerInterfaces records the interfaces declared by a file so that
// references to them map to their I-prefixed C# names.
func (p *ProjectComposer) registerInterfaces(info *ourtypes.FileInfo) {
	if info == nil {
		return
	}
	for _, iface := range info.Interfaces {
		p.interfaces[info.PackageName+"."+iface.Name] = true
	}
}

func (p *ProjectComposer) newMapper(packageName string) *typeMapper {
	return &typeMapper{pkg: packageName, interfaces: p.interfaces}
}

// Compose scaffolds the declarations of one Go file.
func (p *ProjectComposer) Compose(filePath string) ([]File, error) {
	fileInfo, ok := p.projectInfo[filePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	return p.ComposeFileInfo(filePath, fileInfo), nil
}

// ComposeAll scaffolds every file of the project, sorted by output path.
func (p *ProjectComposer) ComposeAll() ([]File, error) {
	paths := make([]string, 0, len(p.projectInfo))
	for filePath := range p.projectInfo {
		paths = append(paths, filePath)
	}
	sort.Strings(paths)

	var files []File
	for _, filePath := range paths {
		composed, err := p.Compose(filePath)
		if err != nil {
			return nil, err
		}
		files = append(files, composed...)
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ComposeText renders the scaffolding of one Go file as a single text, each
// generated file preceded by a path comment.
func (p *ProjectComposer) ComposeText(filePath string) (string, error) {
	files, err := p.Compose(filePath)
	if err != nil {
		return "", err
	}
	return JoinFiles(files), nil
}

// JoinFiles concatenates generated files for display.
func JoinFiles(files []File) string {
	var builder strings.Builder
	for i, f := range files {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("// File: " + f.Path + "\n")
		builder.WriteString(f.Source)
	}
	return builder.String()
}

// ComposeFileInfo scaffolds a single parsed file. fileName names the Go
// source and only its base name is used.
func (p *ProjectComposer) ComposeFileInfo(fileName string, info *ourtypes.FileInfo) []File {
	if info == nil || info.Empty() {
		return nil
	}
	p.registerInterfaces(info)

	segments := p.packageSegments(info)
	dir := path.Join(segments...)
	stem := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	var files []File
	emit := func(fileBase string, u *emitter.Unit) {
		p.addNamespaces(u, segments)
		files = append(files, File{
			Path:   path.Join(dir, fileBase+".cs"),
			Source: u.Render().String(),
		})
	}

	for _, iface := range info.Interfaces {
		u := p.FormatInterface(info.PackageName, iface)
		emit(u.Name(), u)
	}
	for _, s := range info.Structs {
		u := p.FormatStruct(info.PackageName, s)
		emit(u.Name(), u)
	}
	if len(info.GlobalVars) > 0 {
		u := p.FormatGlobalVars(info.PackageName, info.GlobalVars)
		emit(u.Name()+"."+stem, u)
	}
	if len(info.Functions) > 0 {
		u := p.FormatFunctions(info.PackageName, info.Functions)
		emit(u.Name()+"."+stem, u)
	}

	sort.SliceStable(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

func (p *ProjectComposer) packageSegments(info *ourtypes.FileInfo) []string {
	pkgPath := info.PackagePath
	if pkgPath == "" {
		pkgPath = info.PackageName
	}
	return namespaceSegments(pkgPath)
}

func (p *ProjectComposer) addNamespaces(u *emitter.Unit, segments []string) {
	names := make([]string, 0, len(segments)+1)
	if p.opts.RootNamespace != "" {
		names = append(names, p.opts.RootNamespace)
	}
	names = append(names, segments...)
	if len(names) == 0 {
		return
	}

	if !p.opts.NestNamespaces {
		u.AddNamespace(strings.Join(names, "."))
		return
	}
	for _, name := range names {
		u.AddNamespace(name)
	}
}
