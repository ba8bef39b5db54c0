package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation reports a distribution document that fails structural
// validation before decoding.
var ErrSchemaViolation = errors.New("distribution document schema violation")

// distributionSchema is the structural contract for distribution documents:
// both parallel arrays present, numeric, and non-empty. Equal lengths and
// the probability axioms cannot be expressed in JSON Schema; they are
// enforced by Distribution.Validate and the engine respectively.
const distributionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["values", "probabilities"],
  "properties": {
    "values": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 1
    },
    "probabilities": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 1
    }
  },
  "additionalProperties": false
}`

// ValidateDistributionJSON checks raw JSON bytes against the distribution
// document schema and returns [ErrSchemaViolation] listing every failure.
func ValidateDistributionJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(distributionSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate distribution document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, issue := range result.Errors() {
		issues = append(issues, issue.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(issues, "; "))
}
