// Package models defines the data shapes exchanged with the daybook backend.
package models

// Todo is a single to-do item. The identifier is assigned by the backend;
// the client never generates one.
type Todo struct {
	ID        int64  `json:"id,omitempty"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
