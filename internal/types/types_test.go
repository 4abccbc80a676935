package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFileInfo(t *testing.T) {
	fi := NewFileInfo()
	assert.NotNil(t, fi)
	assert.Empty(t, fi.PackageName)
	assert.Empty(t, fi.PackagePath)
	assert.NotNil(t, fi.Imports)
	assert.NotNil(t, fi.Functions)
	assert.NotNil(t, fi.Structs)
	assert.NotNil(t, fi.Interfaces)
	assert.NotNil(t, fi.GlobalVars)
	assert.True(t, fi.Empty())
}

func TestFileInfo_Empty(t *testing.T) {
	fi := NewFileInfo()
	fi.Imports = append(fi.Imports, "fmt")
	assert.True(t, fi.Empty(), "imports alone are not scaffolded")

	fi.GlobalVars = append(fi.GlobalVars, NewGlobalVarInfo())
	assert.False(t, fi.Empty())
}

func TestNewStructField(t *testing.T) {
	f := NewStructField()
	assert.NotNil(t, f)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.Type)
	assert.Empty(t, f.Tag)
	assert.False(t, f.Embedded)
	assert.Nil(t, f.Inline)
}

func TestNewMethodInfo(t *testing.T) {
	m := NewMethodInfo()
	assert.NotNil(t, m)
	assert.Empty(t, m.Name)
	assert.Empty(t, m.Comment)
	assert.NotNil(t, m.Params)
	assert.NotNil(t, m.Results)
	assert.Empty(t, m.Params)
	assert.Empty(t, m.Results)
}

func TestNewStructInfo(t *testing.T) {
	si := NewStructInfo()
	assert.NotNil(t, si)
	assert.Empty(t, si.Name)
	assert.Empty(t, si.Comment)
	assert.NotNil(t, si.Fields)
	assert.NotNil(t, si.Methods)
	assert.Empty(t, si.Fields)
	assert.Empty(t, si.Methods)
}

func TestNewInterfaceInfo(t *testing.T) {
	ii := NewInterfaceInfo()
	assert.NotNil(t, ii)
	assert.Empty(t, ii.Name)
	assert.Empty(t, ii.Comment)
	assert.NotNil(t, ii.Methods)
	assert.NotNil(t, ii.Embeddeds)
	assert.Empty(t, ii.Methods)
	assert.Empty(t, ii.Embeddeds)
}

func TestNewGlobalVarInfo(t *testing.T) {
	gv := NewGlobalVarInfo()
	assert.NotNil(t, gv)
	assert.Empty(t, gv.Name)
	assert.Empty(t, gv.Comment)
	assert.Empty(t, gv.Type)
	assert.Empty(t, gv.Value)
	assert.False(t, gv.IsConst)
}

func TestNewFunctionInfo(t *testing.T) {
	fn := NewFunctionInfo()
	assert.NotNil(t, fn)
	assert.Empty(t, fn.Name)
	assert.Empty(t, fn.Comment)
	assert.NotNil(t, fn.Params)
	assert.NotNil(t, fn.Results)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Results)
}
