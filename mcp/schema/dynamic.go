package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// typeRegistry holds dynamic Go types generated from JSON Schemas.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of dynamic types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a Go type for schema-based conversion.
func RegisterType(t reflect.Type, options ...x.Option) {
	typeRegistry.Register(x.NewType(t, options...))
}

// TypeFromInputSchema converts a tool input schema into a dynamically
// generated Go struct type so that schema-first callers (for example the
// route adapter) can round-trip payloads through typed values. The generated
// type is kept in the registry for reuse.
//
// When the schema defines no properties an empty struct type is returned;
// using a struct even when empty keeps the result usable wherever a struct
// kind is expected.
func TypeFromInputSchema(inputSchema mcpschema.ToolInputSchema) (reflect.Type, error) {
	if len(inputSchema.Properties) == 0 {
		return reflect.StructOf([]reflect.StructField{}), nil
	}
	fields, err := buildFields(inputSchema.Properties, inputSchema.Required)
	if err != nil {
		return nil, err
	}
	t := reflect.StructOf(fields)
	RegisterType(t)
	return t, nil
}

func buildFields(props map[string]map[string]interface{}, required []string) ([]reflect.StructField, error) {
	keys := make([]string, 0, len(props))
	for name := range props {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	requiredSet := make(map[string]struct{}, len(required))
	for _, n := range required {
		requiredSet[n] = struct{}{}
	}
	var fields []reflect.StructField
	for _, name := range keys {
		def := props[name]
		fieldType, err := goTypeFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("failed to determine type for field %q: %w", name, err)
		}
		tagName := name
		if _, ok := requiredSet[name]; !ok {
			tagName += ",omitempty"
		}
		fields = append(fields, reflect.StructField{
			Name: exportedName(name),
			Type: fieldType,
			Tag:  reflect.StructTag(fmt.Sprintf("json:%q", tagName)),
		})
	}
	return fields, nil
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func goTypeFromDef(def map[string]interface{}) (reflect.Type, error) {
	rawType := def["type"]
	var typeStr string
	switch v := rawType.(type) {
	case string:
		typeStr = v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				typeStr = s
			}
		}
	}
	switch typeStr {
	case "string":
		if format, ok := def["format"].(string); ok && (format == "date-time" || format == "date") {
			return reflect.TypeOf(time.Time{}), nil
		}
		return reflect.TypeOf(""), nil
	case "integer":
		return reflect.TypeOf(int64(0)), nil
	case "number":
		return reflect.TypeOf(float64(0)), nil
	case "boolean":
		return reflect.TypeOf(true), nil
	case "object":
		nested := map[string]map[string]interface{}{}
		var nestedRequired []string
		if rawReq, ok := def["required"].([]interface{}); ok {
			for _, raw := range rawReq {
				if s, ok := raw.(string); ok {
					nestedRequired = append(nestedRequired, s)
				}
			}
		}
		if raw, ok := def["properties"].(map[string]interface{}); ok {
			for k, v := range raw {
				if m, ok := v.(map[string]interface{}); ok {
					nested[k] = m
				}
			}
		}
		if raw, ok := def["properties"].(map[string]map[string]interface{}); ok {
			nested = raw
		}
		fields, err := buildFields(nested, nestedRequired)
		if err != nil {
			return nil, err
		}
		nestedType := reflect.StructOf(fields)
		RegisterType(nestedType)
		return nestedType, nil
	case "array":
		if raw, ok := def["items"].(map[string]interface{}); ok {
			itemType, err := goTypeFromDef(raw)
			if err != nil {
				return nil, err
			}
			return reflect.SliceOf(itemType), nil
		}
		return reflect.SliceOf(reflect.TypeOf(new(interface{})).Elem()), nil
	default:
		return reflect.TypeOf(new(interface{})).Elem(), nil
	}
}

// ToStruct builds a Go struct type from a JSON encoded input schema and
// unmarshals the raw payload into it. The populated value is returned as a
// pointer to the generated struct.
func ToStruct(schemaJSON, payloadJSON []byte) (any, error) {
	var schemaInput mcpschema.ToolInputSchema
	if err := json.Unmarshal(schemaJSON, &schemaInput); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}
	fields, err := buildFields(schemaInput.Properties, schemaInput.Required)
	if err != nil {
		return nil, err
	}
	structType := reflect.StructOf(fields)
	RegisterType(structType)
	instPtr := reflect.New(structType)
	if err := json.Unmarshal(payloadJSON, instPtr.Interface()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return instPtr.Interface(), nil
}
