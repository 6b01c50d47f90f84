package model

import "time"

// ActivityRecord is one line of the workspace-wide activity feed
type ActivityRecord struct {
	Entity    string    `json:"entity"` // "users", "roles"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
