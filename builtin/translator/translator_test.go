package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("client") != "gtx" || query.Get("sl") != "auto" || query.Get("dt") != "t" {
			t.Errorf("unexpected query %v", query)
		}
		if query.Get("tl") != "es" || query.Get("q") != "Hello world" {
			t.Errorf("unexpected translation request %v", query)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["Hola ","Hello ",null,null,10],["mundo","world",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	translated, err := client.Translate(context.Background(), "Hello world", "es")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if translated != "Hola mundo" {
		t.Fatalf("expected joined chunks, got %q", translated)
	}
}

func TestTranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.Translate(context.Background(), "Hello", "fr"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestParseResponseMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>"},
		{"empty array", "[]"},
		{"wrong shape", `["text"]`},
		{"no chunks", `[[]]`},
	}
	for _, tc := range cases {
		if _, err := parseResponse([]byte(tc.body)); err == nil {
			t.Fatalf("[%s] expected parse error", tc.name)
		}
	}
}

func TestTools(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[["Bonjour","Hello",null,null,10]]]`))
	}))
	defer server.Close()

	tools, err := Tools(NewClient(WithBaseURL(server.URL)))
	if err != nil {
		t.Fatalf("Tools failed: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "translate_text" {
		t.Fatalf("expected translate_text descriptor, got %v", tools)
	}
	result, err := tools[0].Handler(context.Background(), map[string]interface{}{"text": "Hello", "target_lang": "fr"})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	out := result.(Output)
	if out.Translated != "Bonjour" || out.Original != "Hello" || out.TargetLang != "fr" {
		t.Fatalf("unexpected output: %+v", out)
	}
}
