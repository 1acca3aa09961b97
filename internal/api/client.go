package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=requester_mock.go -package=api

// Requester is the transport seen by the resource services. *Client is the
// real implementation; tests use the generated mock.
type Requester interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Patch(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// Client performs JSON calls against the backend REST API and normalizes
// every failure into ValidationError, NetworkError or StatusError.
//
// The http.Client deliberately has no timeout: the backend contract defines
// no deadline and the views keep their loading state until a response lands.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if method == http.MethodPost || method == http.MethodPatch || method == http.MethodPut {
		slog.Info("api request",
			"id", uuid.NewString(),
			"method", method,
			"path", path,
			"payload", string(payload),
		)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 400 {
		return data, nil
	}

	return nil, newHTTPError(resp.StatusCode, url, data)
}

func newHTTPError(status int, url string, data []byte) error {
	if status == 400 {
		if verr := parseValidationError(data); verr != nil {
			return verr
		}
	}

	message := extractMessage(data)
	if fallback := statusFallback(status, url); fallback != "" {
		message = fallback
	}

	if message == "" {
		message = "erro ao processar requisição"
	}

	return &StatusError{Status: status, Message: message}
}

// parseValidationError recognizes the DRF serializer-error shape: an object
// where at least one value is a non-empty list of message strings.
func parseValidationError(data []byte) *ValidationError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	fields := make(map[string]string)
	for name, value := range raw {
		var messages []string
		if err := json.Unmarshal(value, &messages); err != nil || len(messages) == 0 {
			continue
		}
		fields[name] = messages[0]
	}

	if len(fields) == 0 {
		return nil
	}

	verr := &ValidationError{Fields: fields}
	for _, key := range []string{"detail", "message"} {
		var s string
		if value, ok := raw[key]; ok && json.Unmarshal(value, &s) == nil {
			verr.Message = s
			break
		}
	}

	return verr
}

// extractMessage prefers detail, message and error fields, then a plain
// JSON string body, then the first field-message list it finds.
func extractMessage(data []byte) string {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			var s string
			if value, ok := object[key]; ok && json.Unmarshal(value, &s) == nil && s != "" {
				return s
			}
		}

		for _, value := range object {
			var messages []string
			if json.Unmarshal(value, &messages) == nil && len(messages) > 0 {
				return messages[0]
			}
		}

		return ""
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}

	return ""
}
