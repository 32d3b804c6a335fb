package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyMembership(t *testing.T) {
	tests := []struct {
		name   string
		valid  func(string) bool
		values []string
	}{
		{"source types", ValidSourceType, SourceTypeValues},
		{"identifier types", ValidIdentifierType, IdentifierTypeValues},
		{"statuses", ValidStatus, StatusValues},
		{"relation types", ValidRelationType, RelationTypeValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.values {
				assert.True(t, tt.valid(v), "%q should be valid", v)
			}
			assert.False(t, tt.valid(""), "empty string should be invalid")
			assert.False(t, tt.valid("bogus"), "unknown value should be invalid")
		})
	}
}

func TestVocabularySizes(t *testing.T) {
	assert.Len(t, SourceTypeValues, 5)
	assert.Len(t, IdentifierTypeValues, 5)
	assert.Len(t, StatusValues, 4)
	assert.Len(t, RelationTypeValues, 6)
}

func TestVocabularyCaseSensitive(t *testing.T) {
	assert.False(t, ValidSourceType("Paper"))
	assert.False(t, ValidStatus("UNREAD"))
	assert.False(t, ValidRelationType("Discusses"))
}
