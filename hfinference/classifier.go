// Package hfinference implements the TextClassifier interface against the
// HuggingFace inference API, used for the roberta-large-mnli entailment
// check.
package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blessedrishabh/tabeval/api"
)

const (
	// DefaultBaseURL is the hosted inference endpoint.
	DefaultBaseURL = "https://api-inference.huggingface.co"
	// DefaultModel is the NLI model the benchmark was calibrated against.
	DefaultModel = "roberta-large-mnli"
)

// Config carries the client configuration, constructed once per run.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls a hosted text-classification model.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewClient creates a HuggingFace inference client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// Classify implements TextClassifier.Classify. The endpoint returns all
// candidate labels ranked by score; the top one is the classification.
func (c *Client) Classify(ctx context.Context, input string) (api.Classification, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: input})
	if err != nil {
		return api.Classification{}, fmt.Errorf("marshal request body: %w", err)
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return api.Classification{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return api.Classification{}, fmt.Errorf("classification request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.Classification{}, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return api.Classification{}, fmt.Errorf("classification request: status=%d body=%s", resp.StatusCode, body)
	}

	// Response shape: [[{"label": "...", "score": ...}, ...]]
	var nested [][]api.Classification
	if err := json.Unmarshal(body, &nested); err != nil {
		return api.Classification{}, fmt.Errorf("decode classification response: %w", err)
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return api.Classification{}, fmt.Errorf("empty classification response")
	}

	top := nested[0][0]
	for _, c := range nested[0][1:] {
		if c.Confidence > top.Confidence {
			top = c
		}
	}
	return top, nil
}

// Verify that Client implements TextClassifier
var _ api.TextClassifier = (*Client)(nil)
