package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/model"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// RateLimitError is a quota-class upstream failure carrying the provider's
// suggested retry delay when one was present.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%v (retry after %s)", common.ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return common.ErrRateLimited
}

// geminiClient implements the Client interface for the Gemini API.
type geminiClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.4
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}

	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       modelName,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Classify sends the citizen message to Gemini with a structured
// instruction prompt and parses the JSON payload embedded in the reply.
func (c *geminiClient) Classify(ctx context.Context, text string, language model.Language) (ClassificationResponse, error) {
	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": buildPrompt(text, language)},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     c.temperature,
			"maxOutputTokens": c.maxTokens,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: failed to read response: %v", common.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return ClassificationResponse{}, &RateLimitError{RetryAfter: ParseRetryDelay(string(body))}
	}

	if resp.StatusCode != http.StatusOK {
		return ClassificationResponse{}, fmt.Errorf("%w: gemini API error (status %d): %s",
			common.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return ClassificationResponse{}, fmt.Errorf("%w: no candidates in response", common.ErrMalformedResponse)
	}

	return parseClassification(response.Candidates[0].Content.Parts[0].Text)
}

// buildPrompt creates the instruction prompt for message classification.
func buildPrompt(text string, language model.Language) string {
	languageName := "English"
	switch language {
	case model.LanguageHindi:
		languageName = "Hindi"
	case model.LanguageTelugu:
		languageName = "Telugu"
	}

	return fmt.Sprintf(`You are a community services assistant helping citizens with complaints, blood donation requests, and elder support.

Citizen message (%s): %s

Classify the message and reply helpfully in %s.

Respond with ONLY a JSON object in this exact format:
{"response": "<helpful reply in %s>", "category": "<blood_request|elder_support|complaint|emergency|general_inquiry>", "priority": "<low|medium|high|urgent>"}`,
		languageName, text, languageName, languageName)
}

// geminiResponse represents the Gemini API response structure.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}
