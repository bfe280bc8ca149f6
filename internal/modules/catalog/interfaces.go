package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error)
}

type TicketRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Ticket, error)
}

// BookingCounter reports current occupancy per room so the catalog can
// show vacancies.
type BookingCounter interface {
	BookingCounts(ctx context.Context, roomIDs []int64) (map[int64]int, error)
}
