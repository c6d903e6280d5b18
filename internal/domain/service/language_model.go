package service

import "context"

// SchemaType is a JSON schema primitive understood by the language model.
type SchemaType string

const (
	SchemaObject  SchemaType = "object"
	SchemaArray   SchemaType = "array"
	SchemaString  SchemaType = "string"
	SchemaNumber  SchemaType = "number"
	SchemaInteger SchemaType = "integer"
	SchemaBoolean SchemaType = "boolean"
)

// Schema declares the shape of a structured model reply.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Enum        []string
}

// GenerateRequest is one prompt with its expected reply shape.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	Schema            *Schema
}

// LanguageModel calls a hosted LLM and returns its JSON reply verbatim.
type LanguageModel interface {
	GenerateJSON(ctx context.Context, req *GenerateRequest) ([]byte, error)
}
