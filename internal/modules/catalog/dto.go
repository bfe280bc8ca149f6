package catalog

import "time"

type HotelSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type RoomWithOccupancy struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	HotelID     int64     `json:"hotelId"`
	BookedCount int       `json:"bookedCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type HotelDetail struct {
	ID    int64               `json:"id"`
	Name  string              `json:"name"`
	Image string              `json:"image"`
	Rooms []RoomWithOccupancy `json:"Rooms"`
}
