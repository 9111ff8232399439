package model

import "time"

// Resume is one persisted generation result. Records are written once on a
// successful generation and never updated or deleted afterwards. UserID
// references the owning user; removing a user does not cascade here.
//
// Skills and Role are stored post-sanitization (angle brackets stripped,
// whitespace trimmed, length-capped), Length post-clamping, so the table
// always reflects exactly what was sent to the generation service.
type Resume struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Skills     string    `json:"skills"`
	Role       string    `json:"role,omitempty"`
	Tone       string    `json:"tone"`
	Experience string    `json:"experience"`
	Length     int       `json:"length"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}
