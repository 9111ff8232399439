// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// SummaryGeneratedEvent is published after a résumé summary has been
// generated and persisted. It carries enough for downstream consumers to log
// or build usage analytics without querying the primary database. The summary
// text itself is deliberately omitted to keep user content out of the broker.
type SummaryGeneratedEvent struct {
	ResumeID    uint64 `json:"resume_id"`
	UserID      uint64 `json:"user_id"`
	Role        string `json:"role,omitempty"`
	Tone        string `json:"tone"`
	Length      int    `json:"length"`
	GeneratedAt string `json:"generated_at"`
}
