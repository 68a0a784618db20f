// Package model holds the shared data types persisted and served by the app.
package model

import "time"

// WordResult is the outcome of a single question.
type WordResult struct {
	Word    string `json:"word"`
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// GameRecord is a completed quiz run.
type GameRecord struct {
	ID               string       `json:"id"`
	Score            int          `json:"score"`
	Questions        int          `json:"questions"`
	MinWordLength    int          `json:"min_word_length"`
	MaxWordLength    int          `json:"max_word_length"`
	DictionarySource string       `json:"dictionary_source"`
	FinishedAt       time.Time    `json:"finished_at"`
	Words            []WordResult `json:"words"`
}
