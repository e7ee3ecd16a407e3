package schema

import (
	"reflect"
	"testing"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

func TestTypeFromInputSchema(t *testing.T) {
	inputSchema := mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"name":  {"type": "string"},
			"count": {"type": "integer"},
			"ratio": {"type": "number"},
			"flags": {"type": "array", "items": map[string]interface{}{"type": "string"}},
		},
		Required: []string{"name", "count"},
	}
	structType, err := TypeFromInputSchema(inputSchema)
	if err != nil {
		t.Fatalf("TypeFromInputSchema failed: %v", err)
	}
	if structType.Kind() != reflect.Struct {
		t.Fatalf("expected struct type, got %v", structType.Kind())
	}
	if structType.NumField() != 4 {
		t.Fatalf("expected 4 fields, got %d", structType.NumField())
	}
	field, ok := structType.FieldByName("Name")
	if !ok {
		t.Fatalf("missing Name field")
	}
	if tag := field.Tag.Get("json"); tag != "name" {
		t.Fatalf("required field must not carry omitempty, got %q", tag)
	}
	field, _ = structType.FieldByName("Ratio")
	if tag := field.Tag.Get("json"); tag != "ratio,omitempty" {
		t.Fatalf("optional field must carry omitempty, got %q", tag)
	}
	field, _ = structType.FieldByName("Flags")
	if field.Type.Kind() != reflect.Slice || field.Type.Elem().Kind() != reflect.String {
		t.Fatalf("flags must be []string, got %v", field.Type)
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	// A schema turned into a type must build back into an equivalent schema.
	inputSchema := mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"city": {"type": "string"},
			"days": {"type": "integer"},
		},
		Required: []string{"city"},
	}
	structType, err := TypeFromInputSchema(inputSchema)
	if err != nil {
		t.Fatalf("TypeFromInputSchema failed: %v", err)
	}
	rebuilt, err := BuildInputSchema(structType)
	if err != nil {
		t.Fatalf("BuildInputSchema failed: %v", err)
	}
	if rebuilt.Properties["city"]["type"] != "string" || rebuilt.Properties["days"]["type"] != "integer" {
		t.Fatalf("round-trip lost property types: %v", rebuilt.Properties)
	}
	if len(rebuilt.Required) != 1 || rebuilt.Required[0] != "city" {
		t.Fatalf("round-trip lost required set: %v", rebuilt.Required)
	}
}

func TestToStruct(t *testing.T) {
	schemaJSON := []byte(`{"type":"object","properties":{"name":{"type":"string"},"age":{"type":"integer"}},"required":["name"]}`)
	payloadJSON := []byte(`{"name":"Ali","age":15}`)
	value, err := ToStruct(schemaJSON, payloadJSON)
	if err != nil {
		t.Fatalf("ToStruct failed: %v", err)
	}
	rv := reflect.ValueOf(value).Elem()
	if got := rv.FieldByName("Name").String(); got != "Ali" {
		t.Fatalf("expected name Ali, got %q", got)
	}
	if got := rv.FieldByName("Age").Int(); got != 15 {
		t.Fatalf("expected age 15, got %d", got)
	}
}
