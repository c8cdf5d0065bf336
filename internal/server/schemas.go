package server

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Request schemas enforced at the boundary, before any pipeline stage runs.
// Unknown fields are rejected so typos fail loudly instead of being ignored.
var (
	triageTurnSchema = map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []interface{}{"sessionId", "text"},
		"properties": map[string]interface{}{
			"sessionId":     map[string]interface{}{"type": "string", "minLength": 1},
			"text":          map[string]interface{}{"type": "string"},
			"severity":      map[string]interface{}{"type": "integer"},
			"durationHours": map[string]interface{}{"type": "number"},
			"ageYears":      map[string]interface{}{"type": "integer"},
			"sexAtBirth":    map[string]interface{}{"type": "string", "enum": []interface{}{"female", "male"}},
			"pregnant":      map[string]interface{}{"type": "boolean"},
			"knownConditions": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"medications": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
	}

	medicationCheckSchema = map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"medications": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"newPrescription": map[string]interface{}{"type": "string"},
			"pregnant":        map[string]interface{}{"type": "boolean"},
			"knownConditions": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
	}

	reportValueSchema = map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []interface{}{"name", "value"},
		"properties": map[string]interface{}{
			"name":  map[string]interface{}{"type": "string", "minLength": 1},
			"value": map[string]interface{}{"type": "number"},
			"unit":  map[string]interface{}{"type": "string"},
			"referenceRange": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]interface{}{
					"low":  map[string]interface{}{"type": "number"},
					"high": map[string]interface{}{"type": "number"},
				},
			},
		},
	}

	// Exactly one of text or values; oneOf rejects payloads carrying both.
	reportAnalysisSchema = map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"oneOf": []interface{}{
			map[string]interface{}{"required": []interface{}{"text"}},
			map[string]interface{}{"required": []interface{}{"values"}},
		},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{"type": "string"},
			"values": map[string]interface{}{
				"type":     "array",
				"minItems": 1,
				"items":    reportValueSchema,
			},
		},
	}
)

func validateSchema(schemaMap, body map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schemaMap)
	documentLoader := gojsonschema.NewGoLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request validation failed: %v", errs)
	}

	return nil
}
