package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlad/classgen-go/internal/types"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	p := NewFileParser()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "valid file",
			input:    "package main; func foo() {}",
			expected: "main",
			wantErr:  false,
		},
		{
			name:    "invalid syntax",
			input:   "package main; func foo() {",
			wantErr: true,
		},
		{
			name:     "empty file",
			input:    "package main",
			expected: "main",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := p.Parse("test.go", []byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse file")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, file.Name.Name)
		})
	}
}

const shapesSource = `package shapes

import (
	"fmt"
	"time"
)

// Pi is close enough.
const Pi = 3.14

const (
	Small, Large = 1, 100
)

var Default = "unit"

var started = time.Now()

// Point is a position.
type Point struct {
	X, Y int
}

// Circle is round.
type Circle struct {
	Point
	Radius float64 ` + "`json:\"radius\"`" + `
	Tags   []string
	meta   struct {
		Created time.Time
	}
}

// Area computes the area.
func (c *Circle) Area() float64 {
	return Pi * c.Radius * c.Radius
}

func (c Circle) Scale(by float64, names ...string) (*Circle, error) {
	return nil, fmt.Errorf("no")
}

// Shape is anything with an area.
type Shape interface {
	fmt.Stringer
	// Area computes the area.
	Area() float64
}

// New builds a circle.
func New(r float64) *Circle {
	return &Circle{Radius: r}
}

func init() {}
`

func TestFileParser_ExtractFileInfo(t *testing.T) {
	t.Parallel()

	p := NewFileParser()
	info, err := p.ParseSource("shapes.go", []byte(shapesSource))
	require.NoError(t, err)

	assert.Equal(t, "shapes", info.PackageName)
	assert.Equal(t, "shapes", info.PackagePath)
	assert.Equal(t, []string{"fmt", "time"}, info.Imports)

	t.Run("globals", func(t *testing.T) {
		require.Len(t, info.GlobalVars, 5)
		assert.Equal(t, &types.GlobalVarInfo{Name: "Pi", Comment: "Pi is close enough.", Type: "float64", Value: "3.14", IsConst: true}, info.GlobalVars[0])
		assert.Equal(t, "Small", info.GlobalVars[1].Name)
		assert.Equal(t, "1", info.GlobalVars[1].Value)
		assert.Equal(t, "Large", info.GlobalVars[2].Name)
		assert.Equal(t, "100", info.GlobalVars[2].Value)
		assert.Equal(t, &types.GlobalVarInfo{Name: "Default", Type: "string", Value: `"unit"`}, info.GlobalVars[3])
		assert.Equal(t, "started", info.GlobalVars[4].Name)
		assert.Empty(t, info.GlobalVars[4].Value, "non-literal initializers are dropped")
	})

	t.Run("structs", func(t *testing.T) {
		require.Len(t, info.Structs, 2)

		point := info.Structs[0]
		assert.Equal(t, "Point", point.Name)
		assert.Equal(t, "Point is a position.", point.Comment)
		require.Len(t, point.Fields, 2)
		assert.Equal(t, "X", point.Fields[0].Name)
		assert.Equal(t, "Y", point.Fields[1].Name)
		assert.Equal(t, "int", point.Fields[1].Type)

		circle := info.Structs[1]
		assert.Equal(t, "Circle", circle.Name)
		require.Len(t, circle.Fields, 4)
		assert.Equal(t, &types.StructField{Name: "Point", Type: "Point", Embedded: true}, circle.Fields[0])
		assert.Equal(t, `json:"radius"`, circle.Fields[1].Tag)
		assert.Equal(t, "[]string", circle.Fields[2].Type)
		require.NotNil(t, circle.Fields[3].Inline)
		assert.Equal(t, "Created", circle.Fields[3].Inline.Fields[0].Name)
		assert.Equal(t, "time.Time", circle.Fields[3].Inline.Fields[0].Type)

		require.Len(t, circle.Methods, 2)
		assert.Equal(t, "Area", circle.Methods[0].Name)
		assert.Equal(t, "Area computes the area.", circle.Methods[0].Comment)
		assert.Equal(t, []*types.Param{{Type: "float64"}}, circle.Methods[0].Results)

		scale := circle.Methods[1]
		assert.Equal(t, []*types.Param{{Name: "by", Type: "float64"}, {Name: "names", Type: "...string"}}, scale.Params)
		assert.Equal(t, []*types.Param{{Type: "*Circle"}, {Type: "error"}}, scale.Results)
	})

	t.Run("interfaces", func(t *testing.T) {
		require.Len(t, info.Interfaces, 1)
		shape := info.Interfaces[0]
		assert.Equal(t, "Shape", shape.Name)
		assert.Equal(t, "Shape is anything with an area.", shape.Comment)
		assert.Equal(t, []string{"fmt.Stringer"}, shape.Embeddeds)
		require.Len(t, shape.Methods, 1)
		assert.Equal(t, "Area", shape.Methods[0].Name)
		assert.Equal(t, "Area computes the area.", shape.Methods[0].Comment)
	})

	t.Run("functions skip init", func(t *testing.T) {
		require.Len(t, info.Functions, 1)
		assert.Equal(t, "New", info.Functions[0].Name)
		assert.Equal(t, "New builds a circle.", info.Functions[0].Comment)
		assert.Equal(t, []*types.Param{{Name: "r", Type: "float64"}}, info.Functions[0].Params)
	})
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	p := NewFileParser()
	info, err := p.ParseSource("lit.go", []byte("package lit\n\nvar (\n\ta = -2\n\tb = 'x'\n\tc = `raw`\n\td = true\n\te = a + 1\n)\n"))
	require.NoError(t, err)
	require.Len(t, info.GlobalVars, 5)

	got := make(map[string][2]string)
	for _, gv := range info.GlobalVars {
		got[gv.Name] = [2]string{gv.Value, gv.Type}
	}
	assert.Equal(t, [2]string{"-2", "int"}, got["a"])
	assert.Equal(t, [2]string{"'x'", "rune"}, got["b"])
	assert.Equal(t, [2]string{`"raw"`, "string"}, got["c"])
	assert.Equal(t, [2]string{"true", "bool"}, got["d"])
	assert.Equal(t, [2]string{"", ""}, got["e"])
}
