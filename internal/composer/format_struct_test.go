package composer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
	"github.com/vlad/classgen-go/internal/types"
)

func TestFormatStruct(t *testing.T) {
	t.Parallel()

	circle := &types.StructInfo{
		Name:    "Circle",
		Comment: "Circle is round.",
		Fields: []*types.StructField{
			{Name: "Point", Type: "Point", Embedded: true},
			{Name: "Radius", Type: "float64", Tag: `json:"radius"`},
			{Name: "label", Type: "string"},
		},
		Methods: []*types.MethodInfo{
			{Name: "Area", Comment: "Area computes the area.", Results: []*types.Param{{Type: "float64"}}},
		},
	}

	got := composer.New(parser.ProjectInfo{}).FormatStruct("shapes", circle).Render().String()

	want := "/*\n" +
		"* Generated by classgen\n" +
		"*/\n" +
		"using System.ComponentModel;\n" +
		"using System.Text.Json.Serialization;\n" +
		"using System;\n" +
		"\n" +
		"[Description(\"Circle is round.\")]\n" +
		"public partial class Circle : Point\n" +
		"{\n" +
		"\t// Members\n" +
		"\tprivate double _radius;\n" +
		"\n" +
		"\t[JsonPropertyName(\"radius\")] public double Radius\n" +
		"\t{\n" +
		"\t\tget\n" +
		"\t\t{\n" +
		"\t\t\treturn _radius;\n" +
		"\t\t}\n" +
		"\t\tset\n" +
		"\t\t{\n" +
		"\t\t\t_radius = value;\n" +
		"\t\t}\n" +
		"\t}\n" +
		"\tprivate string _label = \"\";\n" +
		"\n" +
		"\t// Functions\n" +
		"\tpublic double Area()\n" +
		"\t{\n" +
		"\t\t// Area computes the area.\n" +
		"\t\tthrow new NotImplementedException();\n" +
		"\t}\n" +
		"} // class Circle\n"
	assert.Equal(t, want, got)
}

func TestFormatStruct_InlineStructBecomesNestedClass(t *testing.T) {
	t.Parallel()

	config := &types.StructInfo{
		Name: "config",
		Fields: []*types.StructField{
			{Name: "Retry", Inline: &types.StructInfo{
				Fields: []*types.StructField{{Name: "Delays", Type: "[]time.Duration"}},
			}},
		},
	}

	got := composer.New(parser.ProjectInfo{}, composer.WithClassModifier("sealed")).FormatStruct("shapes", config).Render().String()

	assert.Contains(t, got, "internal sealed class Config\n")
	assert.Contains(t, got, "\t// Inner Classes\n\tpublic sealed class RetryType\n")
	assert.Contains(t, got, "\t\tprivate List<TimeSpan> _delays = new();\n")
	assert.Contains(t, got, "\t} // class RetryType\n")
	assert.Contains(t, got, "\tprivate RetryType _retry;\n")
	assert.Contains(t, got, "using System.Collections.Generic;\nusing System;\n")
	assert.Equal(t, 1, strings.Count(got, "Generated by classgen"), "nested classes carry no banner")
}

func TestFormatStruct_JSONTags(t *testing.T) {
	t.Parallel()

	s := &types.StructInfo{
		Name: "Item",
		Fields: []*types.StructField{
			{Name: "Hidden", Type: "string", Tag: `json:"-"`},
			{Name: "Plain", Type: "int", Tag: `yaml:"plain"`},
			{Name: "Named", Type: "int", Tag: `json:"named,omitempty"`},
		},
	}

	got := composer.New(parser.ProjectInfo{}).FormatStruct("shapes", s).Render().String()
	assert.Contains(t, got, "[JsonIgnore] public string Hidden\n")
	assert.Contains(t, got, "\tpublic int Plain\n")
	assert.Contains(t, got, "[JsonPropertyName(\"named\")] public int Named\n")
}

func TestFormatStruct_MethodSignatures(t *testing.T) {
	t.Parallel()

	s := &types.StructInfo{
		Name: "Store",
		Methods: []*types.MethodInfo{
			{
				Name:    "Get",
				Comment: "Get loads a value.\nIt never blocks.",
				Params:  []*types.Param{{Name: "ctx", Type: "context.Context"}, {Name: "keys", Type: "...string"}},
				Results: []*types.Param{{Name: "n", Type: "int"}, {Name: "ok", Type: "bool"}, {Name: "err", Type: "error"}},
			},
			{
				Name:    "close",
				Results: []*types.Param{{Type: "error"}},
			},
		},
	}

	got := composer.New(parser.ProjectInfo{}).FormatStruct("shapes", s).Render().String()
	require.Contains(t, got, "\tpublic (int N, bool Ok) Get(CancellationToken ctx, params string[] keys)\n")
	assert.Contains(t, got, "\t\t/*\n\t\t* Get loads a value.\n\t\t* It never blocks.\n\t\t*/\n")
	assert.Contains(t, got, "\tprivate void Close()\n")
	assert.Contains(t, got, "using System.Threading;\n")
}
