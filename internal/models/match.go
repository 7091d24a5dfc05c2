package models

// MatchCandidate is the result of a top-1 similarity query. Ephemeral,
// never persisted. Score is provider-defined; higher is better.
type MatchCandidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}
