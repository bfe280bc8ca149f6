package repository

import (
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type hotelRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Image     string    `gorm:"column:image"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Rooms []roomRow `gorm:"foreignKey:HotelID"`
}

func (hotelRow) TableName() string { return "hotels" }

type roomRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Capacity  int       `gorm:"column:capacity"`
	HotelID   int64     `gorm:"column:hotel_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomRow) TableName() string { return "rooms" }

type enrollmentRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_enrollments_user"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (enrollmentRow) TableName() string { return "enrollments" }

type ticketTypeRow struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	Name          string `gorm:"column:name"`
	IsRemote      bool   `gorm:"column:is_remote"`
	IncludesHotel bool   `gorm:"column:includes_hotel"`
}

func (ticketTypeRow) TableName() string { return "ticket_types" }

type ticketRow struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	EnrollmentID int64     `gorm:"column:enrollment_id"`
	TicketTypeID int64     `gorm:"column:ticket_type_id"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	TicketType ticketTypeRow `gorm:"foreignKey:TicketTypeID"`
}

func (ticketRow) TableName() string { return "tickets" }

// One active booking per user: the unique index backs the invariant the
// lookup-by-user relies on.
type bookingRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_bookings_user"`
	RoomID    int64     `gorm:"column:room_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Room *roomRow `gorm:"foreignKey:RoomID"`
}

func (bookingRow) TableName() string { return "bookings" }

// AutoMigrate creates or updates the schema for all tables owned by this
// service. Called by the entrypoints before serving.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&hotelRow{},
		&roomRow{},
		&enrollmentRow{},
		&ticketTypeRow{},
		&ticketRow{},
		&bookingRow{},
	)
}

func toDomainRoom(m roomRow) domain.Room {
	return domain.Room{
		ID:        m.ID,
		Name:      m.Name,
		Capacity:  m.Capacity,
		HotelID:   m.HotelID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainBooking(m bookingRow) *domain.Booking {
	b := &domain.Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		RoomID:    m.RoomID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Room != nil {
		room := toDomainRoom(*m.Room)
		b.Room = &room
	}
	return b
}

func toDomainTicket(m ticketRow) *domain.Ticket {
	return &domain.Ticket{
		ID:           m.ID,
		EnrollmentID: m.EnrollmentID,
		TicketTypeID: m.TicketTypeID,
		Status:       domain.TicketStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		TicketType: domain.TicketType{
			ID:            m.TicketType.ID,
			Name:          m.TicketType.Name,
			IsRemote:      m.TicketType.IsRemote,
			IncludesHotel: m.TicketType.IncludesHotel,
		},
	}
}

func toDomainHotel(m hotelRow) *domain.Hotel {
	h := &domain.Hotel{
		ID:        m.ID,
		Name:      m.Name,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, r := range m.Rooms {
		h.Rooms = append(h.Rooms, toDomainRoom(r))
	}
	return h
}
