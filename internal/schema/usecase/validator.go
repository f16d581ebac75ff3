package usecase

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/altoshop/catalog-service/internal/model"
)

// matchingBranches validates attrs against every oneOf branch of the
// composite schema and returns how many branches accepted it. A branch that
// fails to load as a schema counts as a non-match: the registry deliberately
// does not validate schema internals, so a malformed entry must not take the
// whole validator down.
func matchingBranches(composite, attrs model.JSONObject) (int, error) {
	raw, ok := composite["oneOf"].([]any)
	if !ok {
		return 0, fmt.Errorf("composite schema has no oneOf branches")
	}

	document := gojsonschema.NewGoLoader(map[string]any(attrs))

	matches := 0
	for _, branch := range raw {
		result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(branch), document)
		if err != nil {
			continue
		}
		if result.Valid() {
			matches++
		}
	}
	return matches, nil
}
