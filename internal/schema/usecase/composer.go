package usecase

import "github.com/altoshop/catalog-service/internal/model"

// CompositeSchemaCacheKey is the fixed cache key for the composed schema.
const CompositeSchemaCacheKey = "products:attributes_schema:v1"

// NoAttributesSchema returns the built-in branch for variants that carry no
// attributes. Its discriminant const is "none" and no other properties are
// allowed.
func NoAttributesSchema() model.JSONObject {
	return model.JSONObject{
		"type":                 "object",
		"title":                "No attributes",
		"required":             []any{"type"},
		"additionalProperties": false,
		"properties": map[string]any{
			"type": map[string]any{
				"type":  "string",
				"const": "none",
			},
		},
	}
}

// DefaultAttributes is the attributes value a variant gets when none are
// provided. It validates against the no-attributes branch.
func DefaultAttributes() model.JSONObject {
	return model.JSONObject{"type": "none"}
}

// Compose builds the discriminated-union schema over the registered schemas.
// The no-attributes branch always comes first. Branch overlap is not checked
// here; the validator reports it when an attributes object matches more than
// one branch.
func Compose(schemas []model.JSONObject) model.JSONObject {
	branches := make([]any, 0, len(schemas)+1)
	branches = append(branches, NoAttributesSchema())
	for _, s := range schemas {
		branches = append(branches, s)
	}
	return model.JSONObject{
		"type":  "object",
		"oneOf": branches,
	}
}
