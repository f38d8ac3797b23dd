package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "distinct and sorted",
			html: "<p>{{SupplierName}} / {{IBAN}} / {{SupplierName}}</p>",
			want: []string{"IBAN", "SupplierName"},
		},
		{
			name: "arbitrary text is accepted",
			html: "{{ spaced name }} {{a.b-c}}",
			want: []string{" spaced name ", "a.b-c"},
		},
		{
			name: "no placeholders",
			html: "<p>plain</p>",
			want: []string{},
		},
		{
			name: "empty braces ignored",
			html: "{{}} {{x}}",
			want: []string{"x"},
		},
		{
			name: "closing brace ends the name",
			html: "{{a}b}}",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVariables(tt.html))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "{{IBAN}}", Placeholder("IBAN"))
}

func TestReplaceVariables(t *testing.T) {
	values := map[string]string{"A": "{{B}}", "B": "bee"}
	lookup := func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}

	got := ReplaceVariables("<p>{{A}} {{B}} {{unknown_field}}</p>", lookup)
	assert.Equal(t, "<p>{{B}} bee {{unknown_field}}</p>", got)
}
