package table

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// DocumentSchema returns a JSON Schema for the table document format.
func DocumentSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Document{})
	sch.Title = "gridctl table document"
	sch.Description = "A table: column declarations plus rows keyed by column ID."
	return sch
}
