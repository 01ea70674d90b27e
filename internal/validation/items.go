// Package validation checks item seed files against an embedded JSON schema
// before anything touches the database.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// itemFileSchema is the schema for item seed files. Rarity values and the
// drop-rate range mirror the domain package.
const itemFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Item seed file",
  "type": "object",
  "required": ["items"],
  "additionalProperties": false,
  "properties": {
    "items": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "rarity", "value"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "rarity": {"enum": ["common", "uncommon", "rare", "epic", "legendary"]},
          "value": {"type": "integer", "minimum": 0},
          "drop_rate": {"type": "number", "minimum": 0, "maximum": 1},
          "min_level": {"type": "integer", "minimum": 1},
          "image_url": {"type": "string"}
        }
      }
    },
    "shop": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["item", "price"],
        "additionalProperties": false,
        "properties": {
          "item": {"type": "string", "minLength": 1},
          "price": {"type": "integer", "minimum": 0},
          "stock": {"type": "integer", "minimum": -1},
          "restock_to": {"type": "integer", "minimum": -1}
        }
      }
    }
  }
}`

const schemaURL = "items.schema.json"

// ItemValidator validates item seed files against the embedded schema
type ItemValidator struct {
	schema *jsonschema.Schema
}

// NewItemValidator compiles the embedded schema
func NewItemValidator() (*ItemValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(itemFileSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &ItemValidator{schema: schema}, nil
}

// Validate checks raw seed file bytes against the schema
func (v *ItemValidator) Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens nested schema errors into one readable message
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var errors []string
	collectErrors(validationErr, &errors)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}

	return fmt.Sprintf("  - at %s: validation failed", location)
}
