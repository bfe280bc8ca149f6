package booking

import "hotelbooking/internal/domain"

type BookingRequest struct {
	RoomID int64 `json:"roomId"`
}

type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

// BookingResponse keeps the wire shape of the original API: the booking
// id plus the room snapshot under the "Room" key.
type BookingResponse struct {
	ID   int64       `json:"id"`
	Room domain.Room `json:"Room"`
}
