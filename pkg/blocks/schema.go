package blocks

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
)

// ProgramSchema returns the JSON Schema a saved program file must satisfy.
// Field values and input wiring stay open-ended; only the structural shape
// and the declared output type enum are pinned down.
func ProgramSchema() *jsonschema.Schema {
	typeEnum := make([]any, 0, len(model.ValueTypePriority))
	for _, t := range model.ValueTypePriority {
		typeEnum = append(typeEnum, string(t))
	}

	blockSchema := &jsonschema.Schema{
		Type:        "object",
		Description: "one block of a visual program",
		Properties: map[string]*jsonschema.Schema{
			"id":     {Type: "string"},
			"type":   {Type: "string"},
			"fields": {Type: "object"},
			"inputs": {Type: "object"},
			"output": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string", Enum: typeEnum},
			},
		},
		Required: []string{"id", "type"},
	}

	return &jsonschema.Schema{
		Type:        "object",
		Description: "saved visual block program",
		Properties: map[string]*jsonschema.Schema{
			"id":         {Type: "string"},
			"name":       {Type: "string"},
			"blocks":     {Type: "array", Items: blockSchema},
			"created_at": {Type: "string"},
			"updated_at": {Type: "string"},
		},
		Required: []string{"blocks"},
	}
}

// ValidateProgram checks raw program JSON against ProgramSchema
func ValidateProgram(data []byte) error {
	resolved, err := ProgramSchema().Resolve(nil)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve program schema")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return goerr.Wrap(err, "program file is not valid JSON")
	}

	if err := resolved.Validate(doc); err != nil {
		return goerr.Wrap(err, "program file does not match schema")
	}

	return nil
}
