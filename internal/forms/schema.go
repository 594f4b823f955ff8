// internal/forms/schema.go
package forms

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// The JSON parts of the multipart protocol are validated against these
// schemas before any bytes leave the machine, so a malformed record never
// wastes a photo upload.

const reportSchema = `{
	"type": "object",
	"required": ["name", "phone", "description"],
	"properties": {
		"name":        {"type": "string", "minLength": 1},
		"phone":       {"type": "string", "pattern": "^[0-9]{1,10}$"},
		"description": {"type": "string", "minLength": 1},
		"location":    {"type": "string"}
	}
}`

const surrenderSchema = `{
	"type": "object",
	"required": ["ownerName", "ownerPhone", "dogName", "surrenderReason"],
	"properties": {
		"ownerName":       {"type": "string", "minLength": 1},
		"ownerPhone":      {"type": "string", "pattern": "^[0-9]{1,10}$"},
		"ownerEmail":      {"type": "string"},
		"ownerAddress":    {"type": "string"},
		"dogName":         {"type": "string", "minLength": 1},
		"dogBreed":        {"type": "string"},
		"dogAge":          {"type": "integer", "minimum": 0},
		"dogGender":       {"type": "string"},
		"dogSize":         {"type": "string"},
		"isVaccinated":    {"type": "boolean"},
		"isNeutered":      {"type": "boolean"},
		"medicalHistory":  {"type": "string"},
		"surrenderReason": {"type": "string", "minLength": 1},
		"isUrgent":        {"type": "boolean"},
		"preferredDate":   {"type": "string"}
	}
}`

// validateSchema runs payload against schema and returns field->message for
// every violation, or nil when valid.
func validateSchema(schema string, payload interface{}) map[string]string {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return map[string]string{"_schema": fmt.Sprintf("schema validation failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	errs := make(map[string]string, len(result.Errors()))
	for _, resErr := range result.Errors() {
		field := resErr.Field()
		if field == "(root)" {
			if prop, ok := resErr.Details()["property"].(string); ok {
				field = prop
			}
		}
		if _, seen := errs[field]; !seen {
			errs[field] = resErr.Description()
		}
	}
	return errs
}
