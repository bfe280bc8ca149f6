package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var rows []hotelRow
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	hotels := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		hotels = append(hotels, *toDomainHotel(m))
	}
	return hotels, nil
}

// GetWithRooms returns the hotel and all of its rooms, or
// ErrHotelNotFound.
func (r *HotelRepository) GetWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	var m hotelRow
	tx := r.db.WithContext(ctx).Preload("Rooms").First(&m, hotelID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}
