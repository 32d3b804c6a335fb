package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestValidateSourceInput(t *testing.T) {
	tests := []struct {
		name string
		in   SourceInput
		want []string
	}{
		{
			name: "valid paper",
			in: SourceInput{
				Title:           "Attention Is All You Need",
				SourceType:      types.SourcePaper,
				IdentifierType:  types.IdentifierArxiv,
				IdentifierValue: "1706.03762",
			},
			want: nil,
		},
		{
			name: "missing title",
			in: SourceInput{
				SourceType:      types.SourcePaper,
				IdentifierType:  types.IdentifierArxiv,
				IdentifierValue: "1706.03762",
			},
			want: []string{"Missing required field: title"},
		},
		{
			name: "invalid vocab values",
			in: SourceInput{
				Title:           "T",
				SourceType:      "magazine",
				IdentifierType:  "issn",
				IdentifierValue: "1234-5678",
			},
			want: []string{
				"Invalid source type: magazine",
				"Invalid identifier type: issn",
			},
		},
		{
			name: "bad url shape",
			in: SourceInput{
				Title:           "Some Page",
				SourceType:      types.SourceWebpage,
				IdentifierType:  types.IdentifierURL,
				IdentifierValue: "not-a-url",
			},
			want: []string{"Invalid URL format"},
		},
		{
			name: "everything missing",
			in:   SourceInput{},
			want: []string{
				"Missing required field: title",
				"Missing required field: source_type",
				"Missing required field: identifier_type",
				"Missing required field: identifier_value",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSourceInput(tt.in))
		})
	}
}

func TestValidURL(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com",
		"https://example.com:8080/path",
		"https://jalammar.github.io/illustrated-transformer/",
		"http://localhost:3000",
		"http://192.168.1.1/admin",
	}
	for _, u := range valid {
		assert.True(t, ValidURL(u), "%q should be valid", u)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com",
		"https://",
		"not a url",
	}
	for _, u := range invalid {
		assert.False(t, ValidURL(u), "%q should be invalid", u)
	}
}
