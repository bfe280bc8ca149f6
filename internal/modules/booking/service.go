package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/queue"
	"hotelbooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	tickets  TicketRepository
	events   EventPublisher
}

func NewService(bookings BookingRepository, tickets TicketRepository, events EventPublisher) *Service {
	return &Service{
		bookings: bookings,
		tickets:  tickets,
		events:   events,
	}
}

// GetByUser returns the caller's booking with its room, or ErrNotFound.
func (s *Service) GetByUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Create books a room for the user. The ticket must be paid, in-person
// and hotel-inclusive, and the room must exist; all four failures
// collapse into ErrNotFound so the caller cannot probe which one it was.
func (s *Service) Create(ctx context.Context, roomID, userID int64) (int64, error) {
	if roomID <= 0 {
		return 0, ErrRoomIDRequired
	}

	ticket, err := s.tickets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get ticket: %w", err)
	}
	if !ticket.EligibleForHotel() {
		return 0, ErrNotFound
	}

	b, err := s.bookings.CreateInRoom(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return 0, ErrNotFound
		case errors.Is(err, repository.ErrRoomFull):
			return 0, ErrNoVacancy
		case isUniqueViolation(err):
			return 0, ErrAlreadyBooked
		}
		return 0, fmt.Errorf("create booking: %w", err)
	}

	if s.events != nil {
		_ = s.events.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID:  b.ID,
			UserID:     userID,
			RoomID:     roomID,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return b.ID, nil
}

// ChangeRoom re-points the caller's booking to a different room. The
// bookingID from the path must match the caller's own booking.
func (s *Service) ChangeRoom(ctx context.Context, roomID, bookingID, userID int64) (int64, error) {
	if roomID <= 0 {
		return 0, ErrRoomIDRequired
	}

	current, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return 0, ErrNoActiveBooking
		}
		return 0, fmt.Errorf("get booking: %w", err)
	}

	if current.ID != bookingID {
		return 0, ErrNotOwner
	}

	updated, err := s.bookings.RepointToRoom(ctx, bookingID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return 0, ErrNotFound
		case errors.Is(err, repository.ErrRoomFull):
			return 0, ErrNoVacancy
		}
		return 0, fmt.Errorf("update booking: %w", err)
	}

	if s.events != nil {
		_ = s.events.PublishBookingMoved(ctx, queue.BookingMovedEvent{
			BookingID:  updated.ID,
			UserID:     userID,
			FromRoomID: current.RoomID,
			ToRoomID:   roomID,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return updated.ID, nil
}

// isUniqueViolation matches the postgres unique-index error raised when
// a user who already holds a booking inserts a second one.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
