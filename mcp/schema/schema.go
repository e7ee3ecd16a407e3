package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// UnsupportedTypeError reports a parameter type that cannot be expressed in
// the serializable schema subset. It is returned at registration time.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unsupported schema type %s", e.Type)
	}
	return fmt.Sprintf("unsupported schema type %s for field %q", e.Type, e.Field)
}

// BuildInputSchema converts an input struct type into a tool input schema.
// Each exported field becomes one parameter: its json tag supplies the name,
// pointer fields and fields tagged omitempty are optional, and a `default`
// struct tag supplies the default value. Pointers are dereferenced before
// inspection.
func BuildInputSchema(t reflect.Type) (mcpschema.ToolInputSchema, error) {
	props, required, err := structProperties(t, "")
	if err != nil {
		return mcpschema.ToolInputSchema{}, err
	}
	return mcpschema.ToolInputSchema{Type: "object", Properties: props, Required: required}, nil
}

// BuildOutputSchema converts a result struct type into a tool output schema.
func BuildOutputSchema(t reflect.Type) (*mcpschema.ToolOutputSchema, error) {
	props, required, err := structProperties(t, "")
	if err != nil {
		return nil, err
	}
	return &mcpschema.ToolOutputSchema{Type: "object", Properties: props, Required: required}, nil
}

func structProperties(t reflect.Type, path string) (map[string]map[string]interface{}, []string, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, nil, &UnsupportedTypeError{Field: path, Type: t}
	}
	props := map[string]map[string]interface{}{}
	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, optional, skip := fieldName(field)
		if skip {
			continue
		}
		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}
		def, err := propertyDef(field.Type, fieldPath)
		if err != nil {
			return nil, nil, err
		}
		if desc := field.Tag.Get("description"); desc != "" {
			def["description"] = desc
		}
		if raw, ok := field.Tag.Lookup("default"); ok {
			value, err := defaultValue(def, raw)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid default for field %q: %w", fieldPath, err)
			}
			def["default"] = value
			optional = true
		}
		props[name] = def
		if !optional && field.Type.Kind() != reflect.Pointer {
			required = append(required, name)
		}
	}
	return props, required, nil
}

// fieldName resolves the wire name of a struct field from its json tag.
func fieldName(field reflect.StructField) (name string, optional, skip bool) {
	name = field.Name
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				optional = true
			}
		}
	}
	return name, optional, false
}

func propertyDef(t reflect.Type, path string) (map[string]interface{}, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return map[string]interface{}{"type": "string", "format": "date-time"}, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return map[string]interface{}{"type": "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]interface{}{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]interface{}{"type": "number"}, nil
	case reflect.String:
		return map[string]interface{}{"type": "string"}, nil
	case reflect.Slice, reflect.Array:
		items, err := propertyDef(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": "array", "items": items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Field: path, Type: t}
		}
		values, err := propertyDef(t.Elem(), path+".*")
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": "object", "additionalProperties": values}, nil
	case reflect.Struct:
		props, required, err := structProperties(t, path)
		if err != nil {
			return nil, err
		}
		def := map[string]interface{}{"type": "object", "properties": props}
		if len(required) > 0 {
			def["required"] = required
		}
		return def, nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			// any accepts every JSON value; the property stays unconstrained.
			return map[string]interface{}{}, nil
		}
		return nil, &UnsupportedTypeError{Field: path, Type: t}
	default:
		// chan, func, complex, unsafe.Pointer have no serializable form.
		return nil, &UnsupportedTypeError{Field: path, Type: t}
	}
}

func defaultValue(def map[string]interface{}, raw string) (interface{}, error) {
	switch def["type"] {
	case "integer":
		return strconv.ParseInt(raw, 10, 64)
	case "number":
		return strconv.ParseFloat(raw, 64)
	case "boolean":
		return strconv.ParseBool(raw)
	case "string":
		return raw, nil
	default:
		return nil, fmt.Errorf("default tags are only supported on scalar fields")
	}
}
