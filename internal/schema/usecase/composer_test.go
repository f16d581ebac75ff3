package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altoshop/catalog-service/internal/model"
)

func colorSchema(discriminant string) model.JSONObject {
	return model.JSONObject{
		"type":                 "object",
		"title":                discriminant,
		"required":             []any{"type"},
		"additionalProperties": false,
		"properties": map[string]any{
			"type":  map[string]any{"type": "string", "const": discriminant},
			"color": map[string]any{"type": "string"},
		},
	}
}

func TestComposeEmptyRegistry(t *testing.T) {
	composite := Compose(nil)

	branches, ok := composite["oneOf"].([]any)
	require.True(t, ok)
	assert.Len(t, branches, 1)
	assert.Equal(t, "object", composite["type"])
}

func TestComposeBranchCount(t *testing.T) {
	schemas := []model.JSONObject{
		colorSchema("clothing"),
		colorSchema("electronics"),
		colorSchema("books"),
	}

	composite := Compose(schemas)

	branches, ok := composite["oneOf"].([]any)
	require.True(t, ok)
	// Built-in no-attributes branch plus one per registered schema.
	assert.Len(t, branches, len(schemas)+1)

	first, ok := branches[0].(model.JSONObject)
	require.True(t, ok)
	assert.Equal(t, "No attributes", first["title"])
}

func TestDefaultAttributesMatchesOnlyNoAttributesBranch(t *testing.T) {
	composite := Compose([]model.JSONObject{colorSchema("clothing")})

	matches, err := matchingBranches(composite, DefaultAttributes())
	require.NoError(t, err)
	assert.Equal(t, 1, matches)
}

func TestMatchingBranchesZeroForUnknownDiscriminant(t *testing.T) {
	composite := Compose([]model.JSONObject{colorSchema("clothing")})

	matches, err := matchingBranches(composite, model.JSONObject{"type": "furniture"})
	require.NoError(t, err)
	assert.Equal(t, 0, matches)
}

func TestMatchingBranchesExactlyOne(t *testing.T) {
	composite := Compose([]model.JSONObject{
		colorSchema("clothing"),
		colorSchema("electronics"),
	})

	matches, err := matchingBranches(composite, model.JSONObject{
		"type":  "clothing",
		"color": "red",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, matches)
}

func TestMatchingBranchesDuplicateDiscriminants(t *testing.T) {
	// Two registered schemas sharing a discriminant is stored-data corruption
	// that the validator must surface as a multi-match.
	composite := Compose([]model.JSONObject{
		colorSchema("clothing"),
		colorSchema("clothing"),
	})

	matches, err := matchingBranches(composite, model.JSONObject{
		"type":  "clothing",
		"color": "red",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, matches)
}

func TestMatchingBranchesSkipsMalformedBranch(t *testing.T) {
	composite := Compose([]model.JSONObject{
		{"type": 12345}, // not a valid schema
		colorSchema("clothing"),
	})

	matches, err := matchingBranches(composite, model.JSONObject{"type": "clothing"})
	require.NoError(t, err)
	assert.Equal(t, 1, matches)
}
