package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
	"github.com/vlad/classgen-go/internal/types"
)

func TestFormatInterface(t *testing.T) {
	t.Parallel()

	reader := &types.InterfaceInfo{
		Name:      "Reader",
		Comment:   "Reader reads data.",
		Embeddeds: []string{"io.Closer", "pkg1.Sizer"},
		Methods: []*types.MethodInfo{
			{
				Name:    "Read",
				Params:  []*types.Param{{Name: "into", Type: "[]pkg1.Data"}},
				Results: []*types.Param{{Name: "n", Type: "int"}, {Name: "err", Type: "error"}},
			},
		},
	}

	got := composer.New(parser.ProjectInfo{}).FormatInterface("pkg2", reader).Render().String()

	want := "/*\n" +
		"* Generated by classgen\n" +
		"*/\n" +
		"using System;\n" +
		"using System.ComponentModel;\n" +
		"using System.Collections.Generic;\n" +
		"\n" +
		"[Description(\"Reader reads data.\")]\n" +
		"public interface IReader : IDisposable, ISizer\n" +
		"{\n" +
		"\t// Members\n" +
		"\tint Read(List<Data> into);\n" +
		"} // interface IReader\n"
	assert.Equal(t, want, got)
}

func TestFormatInterface_Unexported(t *testing.T) {
	t.Parallel()

	got := composer.New(parser.ProjectInfo{}).FormatInterface("sizes", &types.InterfaceInfo{Name: "sizer"}).Render().String()
	assert.Contains(t, got, "internal interface ISizer\n{\n} // interface ISizer\n")
}
