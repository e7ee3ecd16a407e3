// Package weather exposes National Weather Service alert lookups as a tool
// and as a per-state resource template.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
)

const (
	defaultBaseURL = "https://api.weather.gov"
	userAgent      = "fnmcp-weather/1.0 (github.com/fnmcp/fnmcp)"

	// Fallback payloads mirrored by both the tool and the resource.
	msgUnavailable = "Unable to fetch alerts or no alerts found."
	msgNoAlerts    = "No active alerts for this state."
)

// Client calls the NWS alerts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates an alerts client with sane defaults.
func NewClient(options ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

type alertFeature struct {
	Properties struct {
		Event       string `json:"event"`
		AreaDesc    string `json:"areaDesc"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		Instruction string `json:"instruction"`
	} `json:"properties"`
}

type alertsResponse struct {
	Features []alertFeature `json:"features"`
}

// ActiveAlerts fetches and formats the active alerts for a two-letter US
// state code. Upstream failures degrade to the documented fallback text
// rather than an error so that alert lookups never fail hard.
func (c *Client) ActiveAlerts(ctx context.Context, state string) (string, error) {
	endpoint := fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, strings.ToUpper(state))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return msgUnavailable, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return msgUnavailable, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return msgUnavailable, nil
	}
	var parsed alertsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return msgUnavailable, nil
	}
	if len(parsed.Features) == 0 {
		return msgNoAlerts, nil
	}
	blocks := make([]string, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		blocks = append(blocks, formatAlert(feature))
	}
	return strings.Join(blocks, "\n---\n"), nil
}

func formatAlert(feature alertFeature) string {
	p := feature.Properties
	return fmt.Sprintf("Event: %s\nArea: %s\nSeverity: %s\nDescription: %s\nInstructions: %s",
		orUnknown(p.Event), orUnknown(p.AreaDesc), orUnknown(p.Severity),
		orUnknown(p.Description), orUnknown(p.Instruction))
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

// Input is the argument schema for get_weather_alerts.
type Input struct {
	State string `json:"state" description:"Two-letter US state code, e.g. CA or NY"`
}

// Output carries the formatted alert blocks.
type Output struct {
	Alerts string `json:"alerts"`
}

// Tools returns the descriptors this package contributes, bound to client.
func Tools(client *Client) ([]*registry.ToolDescriptor, error) {
	alerts := func(ctx context.Context, in Input) (Output, error) {
		text, err := client.ActiveAlerts(ctx, in.State)
		if err != nil {
			return Output{}, err
		}
		return Output{Alerts: text}, nil
	}
	descriptor, err := registry.Typed("get_weather_alerts", "Get active weather alerts for a US state", alerts)
	if err != nil {
		return nil, err
	}
	return []*registry.ToolDescriptor{descriptor}, nil
}

// Resources returns the per-state alerts resource template bound to client.
func Resources(client *Client) []*router.ResourceDescriptor {
	return []*router.ResourceDescriptor{
		{
			Template:    "resource://weather/{state}/alerts",
			Description: "Active weather alerts for a US state",
			Handler: func(ctx context.Context, params map[string]string) (interface{}, error) {
				text, err := client.ActiveAlerts(ctx, params["state"])
				if err != nil {
					return nil, err
				}
				return Output{Alerts: text}, nil
			},
		},
	}
}
