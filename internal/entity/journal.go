package entity

import "time"

const (
	JournalInitialize = "initialize"
	JournalReset      = "reset"
	JournalOptions    = "options"
	JournalMove       = "move"
	JournalAIRound    = "ai_round"
)

// JournalEntry is one applied server state, kept for later inspection.
type JournalEntry struct {
	Kind     string    `json:"kind"`
	Epoch    uint64    `json:"epoch"`
	Board    Board     `json:"board"`
	Winner   string    `json:"winner,omitempty"`
	GameOver bool      `json:"gameOver"`
	Scores   *Scores   `json:"scores,omitempty"`
	Moves    []Move    `json:"moves,omitempty"`
	At       time.Time `json:"at"`
}
