package domain

import "time"

// FilterPreset is a named filter spec saved by the user. Presets live in
// memory only and are discarded on process exit.
type FilterPreset struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Filters   *FilterSpec `json:"filters"`
	CreatedAt time.Time   `json:"created_at"`
}
