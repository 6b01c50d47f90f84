package model

import "time"

// SystemActor names the author of server log rows that carry no user
const SystemActor = "System"

// ActivityLog is one row of the server-side activity log: who did what, and when
type ActivityLog struct {
	ID        string    `json:"id"`
	User      string    `json:"user"` // empty when the action was automated
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
