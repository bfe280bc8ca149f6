package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// GetByUserID resolves the user's ticket through their enrollment and
// loads the ticket type. Returns ErrTicketNotFound when the user has no
// enrollment or no ticket.
func (r *TicketRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Ticket, error) {
	var m ticketRow
	tx := r.db.WithContext(ctx).
		Select("tickets.*").
		Joins("JOIN enrollments ON enrollments.id = tickets.enrollment_id").
		Where("enrollments.user_id = ?", userID).
		Preload("TicketType").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, tx.Error
	}
	return toDomainTicket(m), nil
}
