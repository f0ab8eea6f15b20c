package model

import "time"

// Preference is a single per-user setting. Scope identifies the user (a
// browser visitor or a terminal profile) and Key the setting within it.
type Preference struct {
	Scope     string
	Key       string
	Value     string
	UpdatedAt time.Time
}
