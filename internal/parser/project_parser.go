package parser

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	gotypes "go/types" // Alias go/types to avoid conflict
	"log"
	"strconv"
	"strings"

	ourtypes "github.com/vlad/classgen-go/internal/types" // Alias our types
	"golang.org/x/tools/go/packages"
)

// ProjectInfo maps absolute file paths to their declarations
type ProjectInfo = map[string]*ourtypes.FileInfo

// ProjectParser handles parsing of Go projects using go/packages and go/types
type ProjectParser struct {
	fset *token.FileSet
}

// New creates a new ProjectParser instance
func New() *ProjectParser {
	return &ProjectParser{
		fset: token.NewFileSet(),
	}
}

// ParseProject loads a Go project and extracts the declarations of every
// Go file within it. Types are reported relative to their own package and
// qualified by package name otherwise.
func (p *ProjectParser) ParseProject(projectPath string) (ProjectInfo, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Fset: p.fset,
		Dir:  projectPath,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", projectPath)
	}

	fileInfos := make(ProjectInfo)

	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			log.Printf("Package error in %s: %v", pkg.PkgPath, err)
		}
		if pkg.TypesInfo == nil || pkg.Types == nil {
			continue
		}

		e := newPackageExtractor(pkg)
		for _, file := range pkg.Syntax {
			absolutePath := p.fset.File(file.Pos()).Name()
			fileInfos[absolutePath] = e.extractFile(file)
		}
	}

	return fileInfos, nil
}

// packageExtractor converts one type-checked package into FileInfo values.
type packageExtractor struct {
	pkg       *packages.Package
	qualifier gotypes.Qualifier
	funcDocs  map[token.Pos]string
}

func newPackageExtractor(pkg *packages.Package) *packageExtractor {
	e := &packageExtractor{
		pkg:      pkg,
		funcDocs: make(map[token.Pos]string),
	}
	e.qualifier = func(other *gotypes.Package) string {
		if other == pkg.Types {
			return ""
		}
		return other.Name()
	}
	// Methods may live in a different file than their receiver type.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			if funcDecl, ok := decl.(*ast.FuncDecl); ok && funcDecl.Doc != nil {
				e.funcDocs[funcDecl.Name.Pos()] = docText(funcDecl.Doc)
			}
		}
	}
	return e
}

func (e *packageExtractor) typeString(t gotypes.Type) string {
	return gotypes.TypeString(t, e.qualifier)
}

func (e *packageExtractor) extractFile(file *ast.File) *ourtypes.FileInfo {
	info := ourtypes.NewFileInfo()
	info.PackageName = file.Name.Name
	info.PackagePath = e.pkg.PkgPath

	for _, imp := range file.Imports {
		info.Imports = append(info.Imports, strings.Trim(imp.Path.Value, "\""))
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			e.extractGenDecl(info, d)
		case *ast.FuncDecl:
			if d.Recv != nil || d.Name.Name == "init" {
				continue
			}
			fn, ok := e.pkg.TypesInfo.Defs[d.Name].(*gotypes.Func)
			if !ok {
				continue
			}
			fnInfo := ourtypes.NewFunctionInfo()
			fnInfo.Name = fn.Name()
			fnInfo.Comment = docText(d.Doc)
			fnInfo.Params, fnInfo.Results = e.signature(fn.Type().(*gotypes.Signature))
			info.Functions = append(info.Functions, fnInfo)
		}
	}

	return info
}

func (e *packageExtractor) extractGenDecl(info *ourtypes.FileInfo, genDecl *ast.GenDecl) {
	for _, spec := range genDecl.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			obj := e.pkg.TypesInfo.Defs[s.Name]
			if obj == nil {
				continue
			}
			named, ok := obj.Type().(*gotypes.Named)
			if !ok {
				continue
			}
			comment := docText(genDecl.Doc, s.Doc)
			switch underlying := named.Underlying().(type) {
			case *gotypes.Struct:
				structInfo := e.structInfo(underlying)
				structInfo.Name = obj.Name()
				structInfo.Comment = comment
				structInfo.Methods = e.methods(named)
				info.Structs = append(info.Structs, structInfo)
			case *gotypes.Interface:
				ifaceInfo := e.interfaceInfo(underlying)
				ifaceInfo.Name = obj.Name()
				ifaceInfo.Comment = comment
				info.Interfaces = append(info.Interfaces, ifaceInfo)
			}
		case *ast.ValueSpec:
			comment := docText(s.Doc, genDecl.Doc)
			for i, name := range s.Names {
				obj := e.pkg.TypesInfo.Defs[name]
				if obj == nil || name.Name == "_" {
					continue
				}
				varInfo := e.globalVarInfo(obj, s, i)
				varInfo.Comment = comment
				info.GlobalVars = append(info.GlobalVars, varInfo)
			}
		}
	}
}

// structInfo extracts the fields of a struct type. Anonymous struct fields
// are extracted recursively into Inline.
func (e *packageExtractor) structInfo(st *gotypes.Struct) *ourtypes.StructInfo {
	structInfo := ourtypes.NewStructInfo()
	for i := 0; i < st.NumFields(); i++ {
		fieldVar := st.Field(i)
		field := ourtypes.NewStructField()
		field.Name = fieldVar.Name()
		field.Type = e.typeString(fieldVar.Type())
		field.Tag = st.Tag(i)
		field.Embedded = fieldVar.Embedded()
		if anon, ok := fieldVar.Type().(*gotypes.Struct); ok {
			field.Inline = e.structInfo(anon)
		}
		structInfo.Fields = append(structInfo.Fields, field)
	}
	return structInfo
}

func (e *packageExtractor) methods(named *gotypes.Named) []*ourtypes.MethodInfo {
	methods := make([]*ourtypes.MethodInfo, 0, named.NumMethods())
	for i := 0; i < named.NumMethods(); i++ {
		methods = append(methods, e.methodInfo(named.Method(i)))
	}
	return methods
}

func (e *packageExtractor) interfaceInfo(iface *gotypes.Interface) *ourtypes.InterfaceInfo {
	ifaceInfo := ourtypes.NewInterfaceInfo()
	for i := 0; i < iface.NumExplicitMethods(); i++ {
		ifaceInfo.Methods = append(ifaceInfo.Methods, e.methodInfo(iface.ExplicitMethod(i)))
	}
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		ifaceInfo.Embeddeds = append(ifaceInfo.Embeddeds, e.typeString(iface.EmbeddedType(i)))
	}
	return ifaceInfo
}

func (e *packageExtractor) methodInfo(fn *gotypes.Func) *ourtypes.MethodInfo {
	m := ourtypes.NewMethodInfo()
	m.Name = fn.Name()
	m.Comment = e.funcDocs[fn.Pos()]
	m.Params, m.Results = e.signature(fn.Type().(*gotypes.Signature))
	return m
}

// signature converts parameters and results. A variadic parameter is
// reported as ...T.
func (e *packageExtractor) signature(sig *gotypes.Signature) (params, results []*ourtypes.Param) {
	params = make([]*ourtypes.Param, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		v := sig.Params().At(i)
		typeStr := e.typeString(v.Type())
		if sig.Variadic() && i == sig.Params().Len()-1 {
			if slice, ok := v.Type().(*gotypes.Slice); ok {
				typeStr = "..." + e.typeString(slice.Elem())
			}
		}
		params = append(params, &ourtypes.Param{Name: v.Name(), Type: typeStr})
	}
	results = make([]*ourtypes.Param, 0, sig.Results().Len())
	for i := 0; i < sig.Results().Len(); i++ {
		v := sig.Results().At(i)
		results = append(results, &ourtypes.Param{Name: v.Name(), Type: e.typeString(v.Type())})
	}
	return params, results
}

// globalVarInfo extracts information about a global variable or constant.
func (e *packageExtractor) globalVarInfo(obj gotypes.Object, valSpec *ast.ValueSpec, specIndex int) *ourtypes.GlobalVarInfo {
	varInfo := ourtypes.NewGlobalVarInfo()
	varInfo.Name = obj.Name()
	varInfo.Type = defaultType(e.typeString(obj.Type()))

	switch o := obj.(type) {
	case *gotypes.Const:
		varInfo.IsConst = true
		varInfo.Value = constValue(o.Val(), valSpec, specIndex)
	case *gotypes.Var:
		// Only literal initializers survive; anything else is Go specific.
		if specIndex < len(valSpec.Values) {
			varInfo.Value, _ = literal(valSpec.Values[specIndex])
		}
	}
	return varInfo
}

// constValue renders a constant exactly. Floats keep their source literal
// when there is one and otherwise use the shortest decimal that round-trips.
func constValue(val constant.Value, valSpec *ast.ValueSpec, specIndex int) string {
	switch val.Kind() {
	case constant.String, constant.Int, constant.Bool:
		return val.ExactString()
	case constant.Float:
		if specIndex < len(valSpec.Values) {
			if lit, typ := literal(valSpec.Values[specIndex]); typ == "float64" {
				return lit
			}
		}
		f, _ := constant.Float64Val(val)
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ""
}

// defaultType maps untyped constant kinds to their default Go type.
func defaultType(typeStr string) string {
	switch typeStr {
	case "untyped int":
		return "int"
	case "untyped float":
		return "float64"
	case "untyped string":
		return "string"
	case "untyped bool":
		return "bool"
	case "untyped rune":
		return "rune"
	}
	return typeStr
}
