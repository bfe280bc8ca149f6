package domain

import "time"

// Booking links one user to one room and consumes one unit of the room's
// capacity. A user holds at most one active booking; the store enforces
// this with a unique index on user_id.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room *Room `json:"Room,omitempty"`
}
