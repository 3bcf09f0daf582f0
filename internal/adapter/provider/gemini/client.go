package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/walled99/Learn-Deutsch/internal/provider"
)

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultAPIVersion = "v1"
	DefaultModel      = "gemini-2.5-flash"

	providerName = "gemini"
	maxErrorBody = 4 << 10
)

// Config holds the connection parameters for the Gemini REST API.
// Parameters come from config.GeminiConfig.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	UserAgent  string
}

// Client calls the Gemini generateContent endpoint. Each call is exactly one
// HTTP attempt; deadlines and retries belong to the caller.
type Client struct {
	apiKey     string
	endpoint   string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Empty fields of cfg fall back to the defaults.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		endpoint:   fmt.Sprintf("%s/%s/models/%s:generateContent", baseURL, version, url.PathEscape(model)),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Transport: http.DefaultTransport},
		log:        logger.With("adapter", providerName, slog.String("model", model)),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateContent sends the prompt and the inline image and returns the
// model's first text part. A response without text yields "" and no error.
// Non-2xx responses are returned as *provider.StatusError.
func (c *Client) GenerateContent(ctx context.Context, prompt string, img provider.Image) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: prompt},
				{InlineData: &inlineData{MIMEType: img.MIMEType, Data: img.Data}},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	reqURL := c.endpoint + "?" + url.Values{"key": {c.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.DebugContext(ctx, "gemini request",
		slog.String("mime_type", img.MIMEType),
		slog.Int("payload_bytes", len(body)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the request URL, which holds the key.
		return "", fmt.Errorf("gemini: request failed: %w", redactKey(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "gemini error response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(errBody)),
			slog.Duration("duration", time.Since(start)),
		)
		return "", &provider.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       string(errBody),
		}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w: %w", provider.ErrInvalidResponse, err)
	}

	text := out.firstText()

	c.log.DebugContext(ctx, "gemini response",
		slog.Int("status", resp.StatusCode),
		slog.Int("text_len", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}

// redactKey strips the query string from a *url.Error.
func redactKey(err error) error {
	if ue, ok := err.(*url.Error); ok {
		if i := strings.IndexByte(ue.URL, '?'); i >= 0 {
			return &url.Error{Op: ue.Op, URL: ue.URL[:i], Err: ue.Err}
		}
	}
	return err
}
