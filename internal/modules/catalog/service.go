package catalog

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/internal/repository"
)

type Service struct {
	hotels   HotelRepository
	tickets  TicketRepository
	bookings BookingCounter
}

func NewService(hotels HotelRepository, tickets TicketRepository, bookings BookingCounter) *Service {
	return &Service{
		hotels:   hotels,
		tickets:  tickets,
		bookings: bookings,
	}
}

// ListHotels returns all hotels for a caller whose ticket entitles them
// to a hotel stay.
func (s *Service) ListHotels(ctx context.Context, userID int64) ([]HotelSummary, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelSummary{ID: h.ID, Name: h.Name, Image: h.Image})
	}
	return out, nil
}

// GetHotel returns a hotel with its rooms and each room's current
// booking count.
func (s *Service) GetHotel(ctx context.Context, hotelID, userID int64) (*HotelDetail, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	roomIDs := make([]int64, 0, len(hotel.Rooms))
	for _, r := range hotel.Rooms {
		roomIDs = append(roomIDs, r.ID)
	}
	counts, err := s.bookings.BookingCounts(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	detail := &HotelDetail{
		ID:    hotel.ID,
		Name:  hotel.Name,
		Image: hotel.Image,
		Rooms: make([]RoomWithOccupancy, 0, len(hotel.Rooms)),
	}
	for _, r := range hotel.Rooms {
		detail.Rooms = append(detail.Rooms, RoomWithOccupancy{
			ID:          r.ID,
			Name:        r.Name,
			Capacity:    r.Capacity,
			HotelID:     r.HotelID,
			BookedCount: counts[r.ID],
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return detail, nil
}

func (s *Service) checkEligibility(ctx context.Context, userID int64) error {
	ticket, err := s.tickets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}
	if !ticket.EligibleForHotel() {
		return ErrNotFound
	}
	return nil
}
