// Package validator checks parsed documents against JSON Schemas.
package validator

// A JSONDocument is a parsed JSON document, i.e. the result of decoding into an any.
type JSONDocument interface{}

// A JSONSchema is a parsed JSON document holding a JSON Schema.
// A Compiler must compile it before use, which surfaces any schema issues.
type JSONSchema JSONDocument

// Validator validates a JSON document.
type Validator interface {
	Validate(v JSONDocument) error
}

// Compiler turns registered JSON Schemas into Validators.
type Compiler interface {
	// AddSchema registers a JSONSchema with the compiler under id.
	AddSchema(id string, data JSONSchema) error

	// Compile creates a Validator from the JSONSchema previously added with the given ID.
	Compile(id string) (Validator, error)
}

// DecodeSchema parses raw JSON into a JSONSchema suitable for AddSchema.
func DecodeSchema(raw []byte) (JSONSchema, error) {
	return decodeJSON(raw)
}

// DecodeDocument parses raw JSON into a JSONDocument suitable for Validate.
func DecodeDocument(raw []byte) (JSONDocument, error) {
	return decodeJSON(raw)
}
