// Package schema provides JSON Schema validation for spell list documents.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/spells.schema.json
var schemaFS embed.FS

// SchemaError represents a single schema validation error.
type SchemaError struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	ParseError bool   `json:"-"` // true when the error is a JSON parse or read failure
}

func (e SchemaError) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator validates spell list JSON documents against the embedded schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new validator with the embedded schema compiled.
func NewValidator() (*Validator, error) {
	data, err := schemaFS.ReadFile("schemas/spells.schema.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal(data, &schemaDoc); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("spells.schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := c.Compile("spells.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate validates the spell list JSON document at the given path.
// Read and JSON syntax failures are reported with ParseError set.
func (v *Validator) Validate(docPath string) []SchemaError {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return []SchemaError{{Message: fmt.Sprintf("failed to read file: %v", err), ParseError: true}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []SchemaError{{Message: fmt.Sprintf("failed to parse JSON: %v", err), ParseError: true}}
	}

	return v.ValidateDocument(doc)
}

// ValidateDocument validates an already-parsed JSON document against the schema.
func (v *Validator) ValidateDocument(doc any) []SchemaError {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []SchemaError{{Message: err.Error()}}
	}

	return collectErrors(validationErr)
}

// collectErrors recursively collects all leaf validation errors from a ValidationError.
func collectErrors(ve *jsonschema.ValidationError) []SchemaError {
	var errors []SchemaError

	instancePath := "/" + strings.Join(ve.InstanceLocation, "/")
	if len(ve.InstanceLocation) == 0 {
		instancePath = ""
	}

	if len(ve.Causes) == 0 {
		msg := ve.Error()
		if msg != "" {
			errors = append(errors, SchemaError{
				Path:    instancePath,
				Message: msg,
			})
		}
	} else {
		for _, cause := range ve.Causes {
			errors = append(errors, collectErrors(cause)...)
		}
	}

	return errors
}
