package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const alertsBody = `{
	"features": [
		{"properties": {"event": "Flood Warning", "areaDesc": "Sacramento County", "severity": "Severe",
			"description": "River levels rising.", "instruction": "Move to higher ground."}},
		{"properties": {"event": "Heat Advisory", "areaDesc": "Central Valley", "severity": "Moderate",
			"description": "", "instruction": ""}}
	]
}`

func newAlertServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/geo+json" {
			t.Errorf("missing geo+json accept header")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing user agent")
		}
		switch r.URL.Path {
		case "/alerts/active/area/CA":
			_, _ = w.Write([]byte(alertsBody))
		case "/alerts/active/area/WY":
			_, _ = w.Write([]byte(`{"features": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestActiveAlerts(t *testing.T) {
	server := newAlertServer(t)
	defer server.Close()
	client := NewClient(WithBaseURL(server.URL))

	// Lowercase state codes are normalized before hitting the API.
	text, err := client.ActiveAlerts(context.Background(), "ca")
	if err != nil {
		t.Fatalf("ActiveAlerts failed: %v", err)
	}
	blocks := strings.Split(text, "\n---\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 alert blocks, got %d: %q", len(blocks), text)
	}
	if !strings.Contains(blocks[0], "Event: Flood Warning") || !strings.Contains(blocks[0], "Instructions: Move to higher ground.") {
		t.Fatalf("unexpected first block: %q", blocks[0])
	}
	// Empty fields render as Unknown.
	if !strings.Contains(blocks[1], "Description: Unknown") || !strings.Contains(blocks[1], "Instructions: Unknown") {
		t.Fatalf("unexpected second block: %q", blocks[1])
	}
}

func TestActiveAlertsNone(t *testing.T) {
	server := newAlertServer(t)
	defer server.Close()
	client := NewClient(WithBaseURL(server.URL))
	text, err := client.ActiveAlerts(context.Background(), "WY")
	if err != nil {
		t.Fatalf("ActiveAlerts failed: %v", err)
	}
	if text != "No active alerts for this state." {
		t.Fatalf("unexpected no-alert text: %q", text)
	}
}

func TestActiveAlertsDegraded(t *testing.T) {
	server := newAlertServer(t)
	defer server.Close()
	client := NewClient(WithBaseURL(server.URL))
	// Unknown state yields a 404; the lookup degrades rather than erroring.
	text, err := client.ActiveAlerts(context.Background(), "ZZ")
	if err != nil {
		t.Fatalf("ActiveAlerts failed: %v", err)
	}
	if text != "Unable to fetch alerts or no alerts found." {
		t.Fatalf("unexpected fallback text: %q", text)
	}

	server.Close()
	text, err = client.ActiveAlerts(context.Background(), "CA")
	if err != nil {
		t.Fatalf("ActiveAlerts failed: %v", err)
	}
	if text != "Unable to fetch alerts or no alerts found." {
		t.Fatalf("transport failure must degrade, got %q", text)
	}
}

func TestToolsAndResources(t *testing.T) {
	server := newAlertServer(t)
	defer server.Close()
	client := NewClient(WithBaseURL(server.URL))

	tools, err := Tools(client)
	if err != nil {
		t.Fatalf("Tools failed: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "get_weather_alerts" {
		t.Fatalf("expected get_weather_alerts descriptor, got %v", tools)
	}
	result, err := tools[0].Handler(context.Background(), map[string]interface{}{"state": "WY"})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.(Output).Alerts != "No active alerts for this state." {
		t.Fatalf("unexpected tool output: %+v", result)
	}

	resources := Resources(client)
	if len(resources) != 1 || resources[0].Template != "resource://weather/{state}/alerts" {
		t.Fatalf("unexpected resource descriptors: %v", resources)
	}
	payload, err := resources[0].Handler(context.Background(), map[string]string{"state": "CA"})
	if err != nil {
		t.Fatalf("resource handler failed: %v", err)
	}
	if !strings.Contains(payload.(Output).Alerts, "Flood Warning") {
		t.Fatalf("unexpected resource payload: %+v", payload)
	}
}
