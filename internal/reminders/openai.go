package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

const coachSystemPrompt = "You are a supportive fitness coach. " +
	"Write exactly one short reminder message under 240 chars with one actionable suggestion."

var coachRules = []string{
	"Do not invent numbers or history.",
	"If last workout category was strength, suggest light cardio or mobility.",
	"If cardio, suggest short bootcamp or strength.",
	"If none, suggest a 10-minute bootcamp baseline.",
	"Mention '2 days' only when hoursSinceLast >= 48.",
	"Return plain text only.",
}

// OpenAIProvider enriches reminder messages through a single-turn
// completion. Any failure, a timeout, a non-2xx status, an empty reply,
// falls back to the deterministic template, so Generate never fails.
type OpenAIProvider struct {
	apiKey     string
	model      string
	apiBaseURL string
	timeout    time.Duration
	maxLength  int
	httpClient *http.Client
	fallback   *TemplateProvider
}

func NewOpenAIProvider(
	apiKey string,
	model string,
	timeout time.Duration,
	maxLength int,
	httpClient *http.Client,
) *OpenAIProvider {
	if maxLength <= 0 {
		maxLength = DefaultMaxMessageLength
	}
	return &OpenAIProvider{
		apiKey:     apiKey,
		model:      model,
		apiBaseURL: defaultOpenAIBaseURL,
		timeout:    timeout,
		maxLength:  maxLength,
		httpClient: httpClient,
		fallback:   NewTemplateProvider(maxLength),
	}
}

type openAIInputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model           string               `json:"model"`
	Input           []openAIInputMessage `json:"input"`
	MaxOutputTokens int                  `json:"max_output_tokens"`
}

type openAIResponse struct {
	OutputText string `json:"output_text"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, msgCtx MessageContext) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reminders.openai.generate")
	defer span.End()

	if p.apiKey == "" || p.model == "" {
		return p.fallback.Generate(ctx, msgCtx)
	}

	message, err := p.generate(ctx, msgCtx)
	if err != nil {
		log.Warnf("openai reminder message generation failed, using template: %s", err)
		return p.fallback.Generate(ctx, msgCtx)
	}
	return message
}

func (p *OpenAIProvider) generate(ctx context.Context, msgCtx MessageContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	userContent, err := p.userContent(msgCtx)
	if err != nil {
		return "", fmt.Errorf("marshal message context: %w", err)
	}

	reqBody, err := json.Marshal(openAIRequest{
		Model: p.model,
		Input: []openAIInputMessage{
			{Role: "system", Content: coachSystemPrompt},
			{Role: "user", Content: userContent},
		},
		MaxOutputTokens: 120,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiBaseURL+"/v1/responses", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response bytes: %w", err)
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(respBytes, &openAIResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	// collapse whitespace so the message renders as one line
	message := strings.Join(strings.Fields(openAIResp.OutputText), " ")
	if message == "" {
		return "", fmt.Errorf("openai returned an empty message")
	}

	return clipMessage(message, p.maxLength), nil
}

// userContent serializes the gap context. Infinity is not valid json, so
// a never-trained gap is sent as a null hoursSinceLast.
func (p *OpenAIProvider) userContent(msgCtx MessageContext) (string, error) {
	var hoursSinceLast *float64
	if !math.IsInf(msgCtx.HoursSinceLast, 1) {
		hoursSinceLast = &msgCtx.HoursSinceLast
	}

	var lastWorkout map[string]interface{}
	if msgCtx.LastActivity != nil {
		lastWorkout = map[string]interface{}{
			"name":      msgCtx.LastActivity.Name,
			"category":  msgCtx.LastActivity.Category,
			"startTime": msgCtx.LastActivity.StartTime,
		}
	}

	content, err := json.Marshal(map[string]interface{}{
		"rules":          coachRules,
		"lastWorkout":    lastWorkout,
		"hoursSinceLast": hoursSinceLast,
	})
	if err != nil {
		return "", err
	}
	return string(content), nil
}
