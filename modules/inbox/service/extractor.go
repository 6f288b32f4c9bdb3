package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"planit-api/core/config"
	"planit-api/modules/inbox/dto"
)

const extractionPrompt = `Analyze the following email content and extract any meeting, appointment, or event information.

IMPORTANT: Only extract events if there is CLEAR, SPECIFIC event information with dates and times. Do NOT create events for general mentions or vague references.

Return a JSON response with the following structure:
{"hasEvent": boolean, "events": [{"title": "string", "description": "string", "date": "YYYY-MM-DD", "startTime": "HH:MM", "endTime": "HH:MM", "category": "work|personal|meeting|appointment", "urgency": "low|medium|high|urgent"}]}

Rules:
1. Only extract events with specific dates and times
2. If no clear event information exists, return hasEvent: false with empty events array
3. Do not create events for general discussions about scheduling
4. Dates must be specific, not relative phrases like "next week"
5. Times must be 24-hour clock values, not "morning" or "afternoon"

Email content:
`

// EventExtractor turns free-form email text into structured event
// candidates. The extraction itself runs in an external service.
type EventExtractor interface {
	Extract(ctx context.Context, emailContent string) (*dto.ExtractionResult, error)
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

// HTTPEventExtractor posts prompts to a generateContent-style endpoint.
type HTTPEventExtractor struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPEventExtractor(cfg config.ExtractorConfig) *HTTPEventExtractor {
	return &HTTPEventExtractor{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *HTTPEventExtractor) Extract(ctx context.Context, emailContent string) (*dto.ExtractionResult, error) {
	if e.apiKey == "" {
		return &dto.ExtractionResult{HasEvent: false, Events: []dto.ExtractedEvent{}}, nil
	}

	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: extractionPrompt + emailContent}}},
		},
		GenerationConfig: generationConfig{Temperature: 0.1, MaxOutputTokens: 1000},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", e.baseURL, e.apiKey), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("extractor returned no candidates")
	}

	return parseExtraction(out.Candidates[0].Content.Parts[0].Text)
}

// parseExtraction pulls the first JSON object out of the model's text,
// which may be wrapped in markdown fences or prose.
func parseExtraction(text string) (*dto.ExtractionResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return &dto.ExtractionResult{HasEvent: false, Events: []dto.ExtractedEvent{}}, nil
	}

	var result dto.ExtractionResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("malformed extractor response: %w", err)
	}
	if result.Events == nil {
		result.Events = []dto.ExtractedEvent{}
	}
	return &result, nil
}
