package models

import "time"

// Incident is one failed asynchronous update, kept so support can correlate
// the request ID a user reports with what actually happened.
// Severity: "danger", "warning", "info", "success"
type Incident struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RequestID string `gorm:"index"` // chi request ID surfaced to the client
	Path      string
	Status    int
	Severity  string
	Message   string
}
