package main

import (
	"context"
	"fmt"
	"strings"

	"spendtui/category"
)

// AIProvider defines the interface for AI-powered category suggestions.
type AIProvider interface {
	// SuggestCategory picks the best matching category for a free-text
	// expense note. Returns the suggestion with a 0-100 confidence score.
	SuggestCategory(ctx context.Context, note string) (*CategorySuggestion, error)
}

// CategorySuggestion represents an AI suggestion for an expense category.
type CategorySuggestion struct {
	Category   category.Category `json:"category"`
	Confidence float64           `json:"confidence"` // 0-100 confidence score
	Reasoning  string            `json:"reasoning"`  // Why this category was suggested
}

// formatCategoriesForAI formats the closed category set for AI analysis.
func formatCategoriesForAI() string {
	var sb strings.Builder
	sb.WriteString("Available Categories:\n")
	for _, c := range category.All() {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	return sb.String()
}
