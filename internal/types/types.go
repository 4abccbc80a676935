package types

// FileInfo represents the declarations found in one Go file
type FileInfo struct {
	PackageName string           // Name of the package
	PackagePath string           // Import path of the package (package name when unknown)
	Imports     []string         // List of imported packages
	Functions   []*FunctionInfo  // Top-level functions
	Structs     []*StructInfo    // Struct types declared in the file
	Interfaces  []*InterfaceInfo // Interface types declared in the file
	GlobalVars  []*GlobalVarInfo // Package level variables and constants
}

// NewFileInfo creates a new FileInfo instance
func NewFileInfo() *FileInfo {
	return &FileInfo{
		Imports:    make([]string, 0),
		Functions:  make([]*FunctionInfo, 0),
		Structs:    make([]*StructInfo, 0),
		Interfaces: make([]*InterfaceInfo, 0),
		GlobalVars: make([]*GlobalVarInfo, 0),
	}
}

// Empty reports whether the file declares nothing that can be scaffolded.
func (f *FileInfo) Empty() bool {
	return len(f.Functions) == 0 && len(f.Structs) == 0 && len(f.Interfaces) == 0 && len(f.GlobalVars) == 0
}

// Param is a named parameter or result. Name may be empty.
type Param struct {
	Name string
	Type string
}

// StructField represents a field within a struct
type StructField struct {
	Name     string      // Field name
	Type     string      // Field type
	Tag      string      // Raw struct tag without backquotes
	Embedded bool        // True for embedded fields
	Inline   *StructInfo // Set when the field type is an anonymous struct
}

// NewStructField creates a new StructField instance
func NewStructField() *StructField {
	return &StructField{}
}

// MethodInfo represents a method of a struct or an interface
type MethodInfo struct {
	Name    string   // Method name
	Comment string   // Method comment
	Params  []*Param // Parameters in declaration order
	Results []*Param // Results in declaration order
}

// NewMethodInfo creates a new MethodInfo instance
func NewMethodInfo() *MethodInfo {
	return &MethodInfo{
		Params:  make([]*Param, 0),
		Results: make([]*Param, 0),
	}
}

// StructInfo represents detailed information about a struct
type StructInfo struct {
	Name    string         // Struct name
	Comment string         // Struct comment
	Fields  []*StructField // List of fields
	Methods []*MethodInfo  // List of methods
}

// NewStructInfo creates a new StructInfo instance
func NewStructInfo() *StructInfo {
	return &StructInfo{
		Fields:  make([]*StructField, 0),
		Methods: make([]*MethodInfo, 0),
	}
}

// InterfaceInfo represents detailed information about an interface
type InterfaceInfo struct {
	Name      string        // Interface name
	Comment   string        // Interface comment
	Methods   []*MethodInfo // Explicit methods
	Embeddeds []string      // Embedded interface types
}

// NewInterfaceInfo creates a new InterfaceInfo instance
func NewInterfaceInfo() *InterfaceInfo {
	return &InterfaceInfo{
		Methods:   make([]*MethodInfo, 0),
		Embeddeds: make([]string, 0),
	}
}

// GlobalVarInfo represents a global variable or constant.
type GlobalVarInfo struct {
	Name    string // Variable name
	Comment string // Associated comment
	Type    string // Variable type
	Value   string // Value, if it's a constant or has a simple literal value
	IsConst bool   // True if it's a constant
}

// NewGlobalVarInfo creates a new GlobalVarInfo instance
func NewGlobalVarInfo() *GlobalVarInfo {
	return &GlobalVarInfo{}
}

// FunctionInfo represents detailed information about a top-level function
type FunctionInfo struct {
	Name    string   // Function name
	Comment string   // Function comment
	Params  []*Param // Parameters in declaration order
	Results []*Param // Results in declaration order
}

// NewFunctionInfo creates a new FunctionInfo instance
func NewFunctionInfo() *FunctionInfo {
	return &FunctionInfo{
		Params:  make([]*Param, 0),
		Results: make([]*Param, 0),
	}
}
