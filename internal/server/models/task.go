// Package models defines the server-side rows persisted in PostgreSQL.
// JSON tags follow the wire format the mobile clients already speak.
package models

import "time"

// Task is a unit of work owned by exactly one user. UserID is always
// assigned server-side from the authenticated identity, never taken from
// the request payload.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HexColor    string    `json:"hexColor"`
	DueAt       time.Time `json:"dueAt"`
	UserID      string    `json:"uid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
