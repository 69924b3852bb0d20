package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"

	"spendtui/category"
)

// AnthropicProvider implements AIProvider for Anthropic's Claude API.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic AI provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
	}
}

// SuggestCategory implements AIProvider interface.
func (p *AnthropicProvider) SuggestCategory(ctx context.Context, note string) (*CategorySuggestion, error) {
	prompt := p.buildPrompt(note)

	log.Debug("sending suggestion request to Anthropic", "note", note)

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     "claude-3-haiku-20240307", // Use faster, cheaper model for categorization
		MaxTokens: anthropicMaxTokens,        // Keep response short and focused
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Error("failed to call Anthropic API", "error", err)
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	// Extract text from response
	var responseText string
	if len(response.Content) > 0 {
		responseText = response.Content[0].Text
	}

	if responseText == "" {
		return nil, errors.New("empty response from Anthropic API")
	}

	suggestion, err := p.parseResponse(responseText)
	if err != nil {
		log.Error("failed to parse Anthropic response", "error", err, "response", responseText)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	log.Debug("received category suggestion",
		"category", suggestion.Category,
		"confidence", suggestion.Confidence)
	return suggestion, nil
}

// buildPrompt constructs the prompt for category suggestion.
func (p *AnthropicProvider) buildPrompt(note string) string {
	return fmt.Sprintf(`You are a personal finance categorization expert.
Please analyze the following expense note and pick the most appropriate category from the available options.

Expense note: %q

%s

Please respond with ONLY a JSON object in this exact format:
{
  "category": "<category name>",
  "confidence": <number between 0-100>,
  "reasoning": "<brief explanation>"
}

Guidelines:
- The category must be one of the available categories, spelled exactly as listed
- Confidence should reflect how certain you are (100 = very certain, 50 = moderate, 0 = just guessing)
- Keep reasoning brief (1-2 sentences max)
- If no category seems appropriate, choose Miscellaneous and set confidence low`, note, formatCategoriesForAI())
}

// parseResponse parses the AI response and extracts the suggestion.
func (p *AnthropicProvider) parseResponse(response string) (*CategorySuggestion, error) {
	// Clean up the response - remove any markdown formatting or extra text
	response = strings.TrimSpace(response)

	// Find JSON content between braces
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start == -1 || end == -1 {
		return nil, fmt.Errorf("no JSON found in response: %s", response)
	}

	jsonStr := response[start : end+1]

	var result struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w (original: %s)", err, jsonStr)
	}

	cat, ok := category.Parse(result.Category)
	if !ok {
		return nil, fmt.Errorf("suggested category %q is not a known category", result.Category)
	}

	// Clamp confidence to 0-100 range
	if result.Confidence < 0 {
		result.Confidence = 0
	} else if result.Confidence > maxConfidenceScore {
		result.Confidence = maxConfidenceScore
	}

	return &CategorySuggestion{
		Category:   cat,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}, nil
}
