package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goType  string
		want    string
		imports []string
	}{
		{"int", "int", nil},
		{"uint8", "byte", nil},
		{"any", "object", nil},
		{"*Circle", "Circle", nil},
		{"[]byte", "byte[]", nil},
		{"[]string", "List<string>", []string{nsGeneric}},
		{"[4]int", "int[]", nil},
		{"...string", "string[]", nil},
		{"map[string][]int", "Dictionary<string, List<int>>", []string{nsGeneric}},
		{"chan int", "Channel<int>", []string{nsChannels}},
		{"<-chan error", "Channel<Exception>", []string{nsChannels, nsSystem}},
		{"func(int) error", "Delegate", []string{nsSystem}},
		{"struct{}", "object", nil},
		{"time.Time", "DateTime", []string{nsSystem}},
		{"context.Context", "CancellationToken", []string{nsThreading}},
		{"example.com/pkg.Item", "Item", nil},
		{"pkg.Pair[string, *pkg.Item]", "Pair<string, Item>", nil},
		{"node", "Node", nil},
		{"", "object", nil},
	}

	for _, tt := range tests {
		t.Run(tt.goType, func(t *testing.T) {
			got, imports := MapType(tt.goType)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.imports, imports)
		})
	}
}

func TestDefaultValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `""`, defaultValue("string"))
	assert.Equal(t, "new()", defaultValue("List<int>"))
	assert.Equal(t, "new()", defaultValue("Dictionary<string, int>"))
	assert.Empty(t, defaultValue("int"))
}

func TestSplitTopLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"K", "map[string]V", "func(a, b int)"}, splitTopLevel("K, map[string]V, func(a, b int)"))
	assert.Equal(t, 8, matchingBracket("map[K[1]]V", 3))
	assert.Equal(t, -1, matchingBracket("map[K", 3))
}

func TestFloatSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		csType, value, want string
	}{
		{"float", "1.5", "1.5f"},
		{"float", "-2", "-2f"},
		{"float", "1e-07", "1e-07f"},
		{"float", "2.5f", "2.5f"},
		{"float", "", ""},
		{"float", "default", "default"},
		{"double", "1.5", "1.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, floatSuffix(tt.csType, tt.value), tt.csType+" "+tt.value)
	}
}
