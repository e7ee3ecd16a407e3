// Package translator exposes a translation tool backed by the public gtx
// translate endpoint.
package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fnmcp/fnmcp/mcp/registry"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Client calls the translate endpoint. The zero value is not usable; create
// instances with NewClient.
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

// NewClient creates a translate client with sane defaults.
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

// Translate translates text into targetLang, auto-detecting the source
// language.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	endpoint := c.baseURL + "/translate_a/single?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request failed: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseResponse(body)
}

// parseResponse extracts the translated sentence chunks from the gtx nested
// array payload: [[["chunk","original",...],...],...].
func parseResponse(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}
	sentences, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}
	var builder strings.Builder
	for _, raw := range sentences {
		chunk, ok := raw.([]interface{})
		if !ok || len(chunk) == 0 {
			continue
		}
		if text, ok := chunk[0].(string); ok {
			builder.WriteString(text)
		}
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("translate response contained no text")
	}
	return builder.String(), nil
}

// Input is the argument schema for translate_text.
type Input struct {
	Text       string `json:"text" description:"Text to translate"`
	TargetLang string `json:"target_lang" description:"Target language code, e.g. es or fr"`
}

// Output carries the translation alongside the original text.
type Output struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	TargetLang string `json:"target_lang"`
}

// Tools returns the descriptors this package contributes, bound to client.
func Tools(client *Client) ([]*registry.ToolDescriptor, error) {
	translate := func(ctx context.Context, in Input) (Output, error) {
		translated, err := client.Translate(ctx, in.Text, in.TargetLang)
		if err != nil {
			return Output{}, err
		}
		return Output{Original: in.Text, Translated: translated, TargetLang: in.TargetLang}, nil
	}
	descriptor, err := registry.Typed("translate_text", "Translate text from one language to another", translate)
	if err != nil {
		return nil, err
	}
	return []*registry.ToolDescriptor{descriptor}, nil
}
