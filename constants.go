package main

import "time"

const (
	standardMargin = 2

	// aiSuggestionTimeout bounds a single category suggestion request.
	aiSuggestionTimeout = 15 * time.Second
	anthropicMaxTokens  = 300
	maxConfidenceScore  = 100
)

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	historyState
	addExpenseState
	incomeState
	configState
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case historyState:
		return "history"
	case addExpenseState:
		return "add expense"
	case incomeState:
		return "income"
	case configState:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
