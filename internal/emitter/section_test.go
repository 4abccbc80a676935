package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection_WriteLine(t *testing.T) {
	t.Parallel()

	s := &section{}
	s.writeLine("a")
	s.depth = 2
	s.writeLine("b")
	s.writeLine("")

	assert.Equal(t, "a\n\t\tb\n\n", s.String())
}

func TestSection_Blocks(t *testing.T) {
	t.Parallel()

	s := &section{}
	s.writeLine("outer")
	s.openBlock("")
	s.writeLine("inner")
	s.openBlock("note")
	s.writeLine("deep")
	s.closeBlock("done")
	s.closeBlock("")

	want := "outer\n{\n\tinner\n\t{ // note\n\t\tdeep\n\t} // done\n}\n"
	assert.Equal(t, want, s.String())
	assert.Equal(t, 0, s.depth)
}

func TestSection_CloseWithoutOpenPanics(t *testing.T) {
	t.Parallel()

	s := &section{}
	assert.PanicsWithValue(t, ErrUnbalancedBlock, func() {
		s.closeBlock("")
	})
}

func TestSection_WriteLineByLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		depth int
		input string
		want  string
	}{
		{
			name:  "empty input is a no-op",
			depth: 1,
			input: "",
			want:  "",
		},
		{
			name:  "keeps relative indentation",
			depth: 1,
			input: "a\n\tb\nc",
			want:  "\ta\n\t\tb\n\tc\n",
		},
		{
			name:  "single trailing terminator is dropped",
			depth: 0,
			input: "a\nb\n",
			want:  "a\nb\n",
		},
		{
			name:  "crlf is normalized",
			depth: 1,
			input: "a\r\nb",
			want:  "\ta\n\tb\n",
		},
		{
			name:  "blank lines stay unindented",
			depth: 2,
			input: "a\n\nb",
			want:  "\t\ta\n\n\t\tb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &section{depth: tt.depth}
			s.writeLineByLine(tt.input)
			assert.Equal(t, tt.want, s.String())
			assert.Equal(t, tt.depth, s.depth)
		})
	}
}

func TestSection_BalancedBracesAreEven(t *testing.T) {
	t.Parallel()

	s := &section{}
	for i := 0; i < 5; i++ {
		s.openBlock("")
	}
	for i := 0; i < 5; i++ {
		s.closeBlock("")
	}

	out := s.String()
	assert.Equal(t, 0, s.depth)
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
	assert.Equal(t, 0, (strings.Count(out, "{")+strings.Count(out, "}"))%2)
}
