package entities

import "time"

// UserStats tracks per-creator counters for the leaderboard.
// Counters are monotonically non-decreasing and never deleted.
type UserStats struct {
	Identity       string
	Username       string
	FirstName      string
	EventsCreated  int
	EventsApproved int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName prefers the handle, then the first name.
func (u UserStats) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.FirstName
}
