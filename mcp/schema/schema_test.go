package schema

import (
	"errors"
	"io"
	"reflect"
	"testing"
	"time"
)

func TestBuildInputSchema(t *testing.T) {
	type nested struct {
		City string `json:"city"`
		Zip  string `json:"zip,omitempty"`
	}
	type input struct {
		Name     string            `json:"name" description:"display name"`
		Age      int               `json:"age"`
		Score    float64           `json:"score,omitempty"`
		Active   *bool             `json:"active"`
		Tags     []string          `json:"tags,omitempty"`
		Labels   map[string]string `json:"labels,omitempty"`
		Address  nested            `json:"address,omitempty"`
		Lang     string            `json:"lang" default:"en"`
		When     time.Time         `json:"when,omitempty"`
		Internal string            `json:"-"`
		hidden   string
	}
	_ = input{hidden: ""}

	schema, err := BuildInputSchema(reflect.TypeOf(input{}))
	if err != nil {
		t.Fatalf("BuildInputSchema failed: %v", err)
	}
	if schema.Type != "object" {
		t.Fatalf("expected object schema, got %q", schema.Type)
	}
	if _, present := schema.Properties["Internal"]; present {
		t.Fatalf("json:\"-\" field must be skipped")
	}
	if _, present := schema.Properties["hidden"]; present {
		t.Fatalf("unexported field must be skipped")
	}

	cases := []struct {
		field string
		typ   string
	}{
		{"name", "string"},
		{"age", "integer"},
		{"score", "number"},
		{"active", "boolean"},
		{"tags", "array"},
		{"labels", "object"},
		{"address", "object"},
		{"when", "string"},
	}
	for _, tc := range cases {
		def, ok := schema.Properties[tc.field]
		if !ok {
			t.Fatalf("missing property %q", tc.field)
		}
		if def["type"] != tc.typ {
			t.Fatalf("property %q: expected type %q, got %v", tc.field, tc.typ, def["type"])
		}
	}

	if schema.Properties["when"]["format"] != "date-time" {
		t.Fatalf("time.Time must map to date-time format")
	}
	if schema.Properties["name"]["description"] != "display name" {
		t.Fatalf("description tag not propagated")
	}
	if schema.Properties["lang"]["default"] != "en" {
		t.Fatalf("default tag not propagated")
	}

	requiredSet := map[string]bool{}
	for _, name := range schema.Required {
		requiredSet[name] = true
	}
	if !requiredSet["name"] || !requiredSet["age"] {
		t.Fatalf("name and age must be required, got %v", schema.Required)
	}
	// omitempty, pointer and defaulted fields are optional.
	for _, optional := range []string{"score", "active", "tags", "labels", "lang", "when"} {
		if requiredSet[optional] {
			t.Fatalf("field %q must not be required", optional)
		}
	}
}

func TestBuildInputSchemaUnsupported(t *testing.T) {
	type withChan struct {
		C chan int `json:"c"`
	}
	type withFunc struct {
		F func() `json:"f"`
	}
	type withReader struct {
		R io.Reader `json:"r"`
	}
	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"chan", reflect.TypeOf(withChan{})},
		{"func", reflect.TypeOf(withFunc{})},
		{"non-empty interface", reflect.TypeOf(withReader{})},
		{"int-key map", reflect.TypeOf(struct {
			M map[int]string `json:"m"`
		}{})},
		{"non-struct", reflect.TypeOf(42)},
	}
	for _, tc := range cases {
		_, err := BuildInputSchema(tc.typ)
		if err == nil {
			t.Fatalf("[%s] expected UnsupportedTypeError", tc.name)
		}
		var unsupported *UnsupportedTypeError
		if !errors.As(err, &unsupported) {
			t.Fatalf("[%s] expected UnsupportedTypeError, got %T: %v", tc.name, err, err)
		}
	}
}

func TestBuildInputSchemaAnyField(t *testing.T) {
	type input struct {
		Extra interface{} `json:"extra"`
		Meta  any         `json:"meta,omitempty"`
	}
	schema, err := BuildInputSchema(reflect.TypeOf(input{}))
	if err != nil {
		t.Fatalf("BuildInputSchema failed: %v", err)
	}
	def, ok := schema.Properties["extra"]
	if !ok {
		t.Fatalf("missing extra property")
	}
	if len(def) != 0 {
		t.Fatalf("any field must stay unconstrained, got %v", def)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "extra" {
		t.Fatalf("expected extra required and meta optional, got %v", schema.Required)
	}
}

func TestBuildOutputSchema(t *testing.T) {
	type output struct {
		Sum int `json:"sum"`
	}
	schema, err := BuildOutputSchema(reflect.TypeOf(output{}))
	if err != nil {
		t.Fatalf("BuildOutputSchema failed: %v", err)
	}
	if schema.Properties["sum"]["type"] != "integer" {
		t.Fatalf("expected integer sum, got %v", schema.Properties["sum"])
	}
	if len(schema.Required) != 1 || schema.Required[0] != "sum" {
		t.Fatalf("expected sum required, got %v", schema.Required)
	}
}
