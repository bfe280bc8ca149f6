// Package queue defines booking lifecycle events and the RabbitMQ
// publisher that emits them.
package queue

// BookingCreatedEvent is published after a booking is inserted. It
// carries enough for downstream consumers (notifications, analytics)
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  int64  `json:"booking_id"`
	UserID     int64  `json:"user_id"`
	RoomID     int64  `json:"room_id"`
	OccurredAt string `json:"occurred_at"`
}

// BookingMovedEvent is published after a booking is re-pointed to a
// different room.
type BookingMovedEvent struct {
	BookingID  int64  `json:"booking_id"`
	UserID     int64  `json:"user_id"`
	FromRoomID int64  `json:"from_room_id"`
	ToRoomID   int64  `json:"to_room_id"`
	OccurredAt string `json:"occurred_at"`
}
