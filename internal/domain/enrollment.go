package domain

import "time"

// Enrollment ties a user to the event; tickets hang off it rather than
// off the user directly.
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
