// Package schema validates request parameters against embedded JSON schemas.
// The schema document ships inside the binary; every definition is compiled
// once at construction time and validation is a read-only lookup afterwards.
package schema

// file: internal/schema/validator.go

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
)

//go:embed schema.json
var embeddedSchemaContent []byte

const schemaResourceID = "shinkuro://schema.json"

// Message types with a compiled schema definition.
const (
	TypeInitializeParams  = "InitializeParams"
	TypeListPromptsParams = "ListPromptsParams"
	TypeGetPromptParams   = "GetPromptParams"
)

// Validator compiles the embedded schema document and validates parameter
// payloads against its definitions. Safe for concurrent use after creation.
type Validator struct {
	schemas map[string]*jsonschema.Schema
	logger  logging.Logger
}

// NewValidator compiles the embedded schema definitions.
func NewValidator(logger logging.Logger) (*Validator, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "schema_validator")

	var doc struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(embeddedSchemaContent, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded schema JSON")
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaResourceID, bytes.NewReader(embeddedSchemaContent)); err != nil {
		return nil, errors.Wrap(err, "failed to add embedded schema resource")
	}

	schemas := make(map[string]*jsonschema.Schema, len(doc.Definitions))
	for name := range doc.Definitions {
		compiledSchema, err := compiler.Compile(schemaResourceID + "#/definitions/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compile schema definition: %s", name)
		}
		schemas[name] = compiledSchema
	}
	log.Debug("Compiled embedded schema definitions.", "count", len(schemas))

	return &Validator{schemas: schemas, logger: log}, nil
}

// Validate checks data against the schema definition for messageType.
// A nil or empty payload is treated as an empty object, matching the
// omitted-params case on the wire.
func (v *Validator) Validate(messageType string, data []byte) error {
	compiledSchema, ok := v.schemas[messageType]
	if !ok {
		return NewValidationError(messageType, "no schema definition for message type", nil)
	}

	if len(data) == 0 {
		data = []byte("{}")
	}
	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return NewValidationError(messageType, "params are not valid JSON", err)
	}
	// Absent params arrive as JSON null; the schemas all describe objects.
	if instance == nil {
		instance = map[string]interface{}{}
	}

	if err := compiledSchema.Validate(instance); err != nil {
		var valErr *jsonschema.ValidationError
		if errors.As(err, &valErr) {
			v.logger.Debug("Parameter validation failed.", "messageType", messageType, "error", valErr.Message)
			return NewValidationError(messageType, valErr.Message, valErr)
		}
		return NewValidationError(messageType, "unexpected validation failure", err)
	}
	return nil
}

// HasSchema reports whether a definition exists for the given message type.
func (v *Validator) HasSchema(messageType string) bool {
	_, ok := v.schemas[messageType]
	return ok
}
