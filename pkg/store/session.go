package store

import "time"

// Turn is a single immutable message exchange unit.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds optional user context carried across a session.
// Fields are last-write-wins; empty values never overwrite.
type Profile struct {
	Dept            string `json:"dept"`
	SelectedProgram string `json:"selected_program"`
}

// Session represents the active conversational state held in memory.
// State is ephemeral: it does not survive a process restart.
type Session struct {
	Id           string    `json:"id"`
	History      []Turn    `json:"history"`
	Profile      Profile   `json:"profile"`
	LastAccessed time.Time `json:"last_accessed"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxHistoryEntries caps stored history at 10 user/assistant pairs.
	MaxHistoryEntries = 20
)
