package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	gotypes "go/types" // Alias go/types to avoid conflict
	"log"
	"strconv"
	"strings"

	"github.com/vlad/classgen-go/internal/types"
)

// FileParser extracts declarations from a single Go source without type
// checking. Types are reported as written in the source.
type FileParser struct {
	fset *token.FileSet
}

// NewFileParser creates a new FileParser instance
func NewFileParser() *FileParser {
	return &FileParser{
		fset: token.NewFileSet(),
	}
}

// Parse loads a file and returns its AST
func (p *FileParser) Parse(filePath string, src []byte) (*ast.File, error) {
	file, err := parser.ParseFile(p.fset, filePath, src, parser.ParseComments)
	if err != nil {
		log.Printf("Error parsing file %s: %v", filePath, err)
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}
	return file, nil
}

// ParseSource parses src and extracts its declarations in one step.
func (p *FileParser) ParseSource(filePath string, src []byte) (*types.FileInfo, error) {
	file, err := p.Parse(filePath, src)
	if err != nil {
		return nil, err
	}
	return p.ExtractFileInfo(file), nil
}

// ExtractFileInfo extracts declarations from the AST in declaration order
func (p *FileParser) ExtractFileInfo(file *ast.File) *types.FileInfo {
	info := types.NewFileInfo()
	info.PackageName = file.Name.Name
	info.PackagePath = file.Name.Name

	for _, imp := range file.Imports {
		info.Imports = append(info.Imports, strings.Trim(imp.Path.Value, "\""))
	}

	structs := make(map[string]*types.StructInfo)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		switch genDecl.Tok {
		case token.TYPE:
			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				comment := docText(genDecl.Doc, typeSpec.Doc)
				switch t := typeSpec.Type.(type) {
				case *ast.StructType:
					s := structFromAST(t)
					s.Name = typeSpec.Name.Name
					s.Comment = comment
					structs[s.Name] = s
					info.Structs = append(info.Structs, s)
				case *ast.InterfaceType:
					iface := interfaceFromAST(t)
					iface.Name = typeSpec.Name.Name
					iface.Comment = comment
					info.Interfaces = append(info.Interfaces, iface)
				}
			}
		case token.CONST, token.VAR:
			for _, spec := range genDecl.Specs {
				info.GlobalVars = append(info.GlobalVars, globalsFromAST(genDecl, spec.(*ast.ValueSpec))...)
			}
		}
	}

	// Methods may precede their receiver type, so they are attached last.
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Name.Name == "init" {
			continue
		}
		if funcDecl.Recv == nil {
			fn := types.NewFunctionInfo()
			fn.Name = funcDecl.Name.Name
			fn.Comment = docText(funcDecl.Doc)
			fn.Params = paramsFromAST(funcDecl.Type.Params)
			fn.Results = paramsFromAST(funcDecl.Type.Results)
			info.Functions = append(info.Functions, fn)
			continue
		}
		if s, ok := structs[receiverName(funcDecl.Recv)]; ok {
			m := types.NewMethodInfo()
			m.Name = funcDecl.Name.Name
			m.Comment = docText(funcDecl.Doc)
			m.Params = paramsFromAST(funcDecl.Type.Params)
			m.Results = paramsFromAST(funcDecl.Type.Results)
			s.Methods = append(s.Methods, m)
		}
	}

	return info
}

func structFromAST(st *ast.StructType) *types.StructInfo {
	s := types.NewStructInfo()
	if st.Fields == nil {
		return s
	}
	for _, field := range st.Fields.List {
		typeStr := gotypes.ExprString(field.Type)
		tag := ""
		if field.Tag != nil {
			if unquoted, err := strconv.Unquote(field.Tag.Value); err == nil {
				tag = unquoted
			}
		}
		var inline *types.StructInfo
		if anon, ok := field.Type.(*ast.StructType); ok {
			inline = structFromAST(anon)
		}

		if len(field.Names) == 0 {
			s.Fields = append(s.Fields, &types.StructField{
				Name:     embeddedName(typeStr),
				Type:     typeStr,
				Tag:      tag,
				Embedded: true,
			})
			continue
		}
		for _, name := range field.Names {
			s.Fields = append(s.Fields, &types.StructField{
				Name:   name.Name,
				Type:   typeStr,
				Tag:    tag,
				Inline: inline,
			})
		}
	}
	return s
}

func interfaceFromAST(it *ast.InterfaceType) *types.InterfaceInfo {
	iface := types.NewInterfaceInfo()
	if it.Methods == nil {
		return iface
	}
	for _, field := range it.Methods.List {
		fn, ok := field.Type.(*ast.FuncType)
		if !ok || len(field.Names) == 0 {
			iface.Embeddeds = append(iface.Embeddeds, gotypes.ExprString(field.Type))
			continue
		}
		m := types.NewMethodInfo()
		m.Name = field.Names[0].Name
		m.Comment = docText(field.Doc)
		m.Params = paramsFromAST(fn.Params)
		m.Results = paramsFromAST(fn.Results)
		iface.Methods = append(iface.Methods, m)
	}
	return iface
}

func globalsFromAST(genDecl *ast.GenDecl, spec *ast.ValueSpec) []*types.GlobalVarInfo {
	var out []*types.GlobalVarInfo
	comment := docText(spec.Doc, genDecl.Doc)
	for i, name := range spec.Names {
		if name.Name == "_" {
			continue
		}
		gv := types.NewGlobalVarInfo()
		gv.Name = name.Name
		gv.Comment = comment
		gv.IsConst = genDecl.Tok == token.CONST
		if spec.Type != nil {
			gv.Type = gotypes.ExprString(spec.Type)
		}
		if i < len(spec.Values) {
			value, typ := literal(spec.Values[i])
			gv.Value = value
			if gv.Type == "" {
				gv.Type = typ
			}
		}
		out = append(out, gv)
	}
	return out
}

// literal returns the source text and default type of basic literals and
// boolean identifiers. Anything else yields empty strings.
func literal(expr ast.Expr) (value, typ string) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT:
			return e.Value, "int"
		case token.FLOAT:
			return e.Value, "float64"
		case token.STRING:
			if strings.HasPrefix(e.Value, "`") {
				return strconv.Quote(strings.Trim(e.Value, "`")), "string"
			}
			return e.Value, "string"
		case token.CHAR:
			return e.Value, "rune"
		}
	case *ast.Ident:
		if e.Name == "true" || e.Name == "false" {
			return e.Name, "bool"
		}
	case *ast.UnaryExpr:
		if e.Op == token.SUB {
			if v, t := literal(e.X); v != "" && (t == "int" || t == "float64") {
				return "-" + v, t
			}
		}
	}
	return "", ""
}

func paramsFromAST(fl *ast.FieldList) []*types.Param {
	params := make([]*types.Param, 0)
	if fl == nil {
		return params
	}
	for _, field := range fl.List {
		typeStr := gotypes.ExprString(field.Type)
		if len(field.Names) == 0 {
			params = append(params, &types.Param{Type: typeStr})
			continue
		}
		for _, name := range field.Names {
			params = append(params, &types.Param{Name: name.Name, Type: typeStr})
		}
	}
	return params
}

func receiverName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr: // generic receiver T[K]
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	case *ast.IndexListExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	}
	return ""
}

// embeddedName returns the implicit field name of an embedded type.
func embeddedName(typeStr string) string {
	typeStr = strings.TrimPrefix(typeStr, "*")
	if i := strings.Index(typeStr, "["); i >= 0 {
		typeStr = typeStr[:i]
	}
	if i := strings.LastIndex(typeStr, "."); i >= 0 {
		typeStr = typeStr[i+1:]
	}
	return typeStr
}

// docText returns the first non-empty doc comment, trimmed.
func docText(groups ...*ast.CommentGroup) string {
	for _, g := range groups {
		if g == nil {
			continue
		}
		if text := strings.TrimSpace(g.Text()); text != "" {
			return text
		}
	}
	return ""
}
