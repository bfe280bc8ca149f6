package booking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/queue"
)

// BookingRepository is the persistence port consumed by the service.
// The vacancy-checked writes are transactional: check and write happen
// under a row lock on the target room.
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	CreateInRoom(ctx context.Context, roomID, userID int64) (*domain.Booking, error)
	RepointToRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error)
}

type TicketRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Ticket, error)
}

// EventPublisher emits booking lifecycle events to the broker. A nil
// publisher disables eventing without touching the request path.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
	PublishBookingMoved(ctx context.Context, ev queue.BookingMovedEvent) error
}
