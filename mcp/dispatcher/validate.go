package dispatcher

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// validateArguments checks an incoming argument mapping against the tool's
// input schema: unknown parameters are rejected, required parameters must be
// present, declared defaults are applied and values are coerced where the
// schema type allows (numeric strings to numbers, integral floats to
// integers). It returns a coerced copy and never mutates the input.
func validateArguments(schema mcpschema.ToolInputSchema, args map[string]interface{}) (map[string]interface{}, error) {
	coerced := make(map[string]interface{}, len(args))
	for name, value := range args {
		def, known := schema.Properties[name]
		if !known {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		out, err := coerceValue(def, value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		coerced[name] = out
	}
	for name, def := range schema.Properties {
		if _, present := coerced[name]; present {
			continue
		}
		if fallback, ok := def["default"]; ok {
			coerced[name] = fallback
		}
	}
	for _, name := range schema.Required {
		if _, present := coerced[name]; !present {
			return nil, fmt.Errorf("missing required parameter %q", name)
		}
	}
	return coerced, nil
}

func coerceValue(def map[string]interface{}, value interface{}) (interface{}, error) {
	typeStr, _ := def["type"].(string)
	switch typeStr {
	case "integer":
		return coerceInteger(value)
	case "number":
		return coerceNumber(value)
	case "string":
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("expected string, got %T", value)
	case "boolean":
		return coerceBool(value)
	case "array":
		items, ok := value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected array, got %T", value)
		}
		itemDef, _ := def["items"].(map[string]interface{})
		if itemDef == nil {
			return items, nil
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			coerced, err := coerceValue(itemDef, item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = coerced
		}
		return out, nil
	case "object":
		object, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("expected object, got %T", value)
		}
		props := nestedProperties(def)
		if props == nil {
			return object, nil
		}
		nested := mcpschema.ToolInputSchema{Type: "object", Properties: props, Required: nestedRequired(def)}
		return validateArguments(nested, object)
	default:
		return value, nil
	}
}

func coerceInteger(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("expected integer, got fractional number %v", v)
		}
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

func coerceNumber(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", value)
	}
}

func coerceBool(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("expected boolean, got %q", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("expected boolean, got %T", value)
	}
}

func nestedProperties(def map[string]interface{}) map[string]map[string]interface{} {
	if props, ok := def["properties"].(map[string]map[string]interface{}); ok {
		return props
	}
	raw, ok := def["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	props := make(map[string]map[string]interface{}, len(raw))
	for k, v := range raw {
		if m, ok := v.(map[string]interface{}); ok {
			props[k] = m
		}
	}
	return props
}

func nestedRequired(def map[string]interface{}) []string {
	switch v := def["required"].(type) {
	case []string:
		return v
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
