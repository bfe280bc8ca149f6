package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// TicketType describes what a ticket entitles its holder to. A remote
// ticket needs no physical presence; only hotel-inclusive tickets may
// book rooms.
type TicketType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

// Ticket is a user's admission credential. It belongs to the user
// indirectly through an enrollment.
type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollmentId"`
	TicketTypeID int64        `json:"ticketTypeId"`
	Status       TicketStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	TicketType TicketType `json:"TicketType"`
}

// EligibleForHotel reports whether the ticket allows booking a room:
// paid, in-person and hotel-inclusive.
func (t Ticket) EligibleForHotel() bool {
	return t.Status == TicketPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
