package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetByUserID returns the user's booking with its room loaded, or
// ErrBookingNotFound.
func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	var m bookingRow
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CreateInRoom inserts a booking for userID in roomID after verifying,
// under a row lock on the room, that the room still has a vacancy.
// Returns ErrRoomNotFound or ErrRoomFull; a unique-index violation on
// user_id propagates as the driver error for the caller to classify.
func (r *BookingRepository) CreateInRoom(ctx context.Context, roomID, userID int64) (*domain.Booking, error) {
	var m bookingRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		capacity, err := lockRoom(tx, roomID)
		if err != nil {
			return err
		}

		var booked int64
		if err := tx.Model(&bookingRow{}).Where("room_id = ?", roomID).Count(&booked).Error; err != nil {
			return err
		}
		if int(booked) == capacity {
			return ErrRoomFull
		}

		m = bookingRow{UserID: userID, RoomID: roomID}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// RepointToRoom moves an existing booking to roomID under the same
// locked vacancy check. The booking's own row is excluded from the
// occupancy count, so moving within the current room is never blocked
// by the caller's own seat.
func (r *BookingRepository) RepointToRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	var m bookingRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		capacity, err := lockRoom(tx, roomID)
		if err != nil {
			return err
		}

		var booked int64
		if err := tx.Model(&bookingRow{}).
			Where("room_id = ? AND id <> ?", roomID, bookingID).
			Count(&booked).Error; err != nil {
			return err
		}
		if int(booked) == capacity {
			return ErrRoomFull
		}

		if err := tx.Model(&bookingRow{}).
			Where("id = ?", bookingID).
			Update("room_id", roomID).Error; err != nil {
			return err
		}
		return tx.First(&m, bookingID).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// BookingCounts returns the current booking count per room for the given
// room IDs. Rooms with no bookings are absent from the map.
func (r *BookingRepository) BookingCounts(ctx context.Context, roomIDs []int64) (map[int64]int, error) {
	if len(roomIDs) == 0 {
		return map[int64]int{}, nil
	}

	var rows []struct {
		RoomID int64
		N      int
	}
	tx := r.db.WithContext(ctx).
		Model(&bookingRow{}).
		Select("room_id, COUNT(1) AS n").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.RoomID] = row.N
	}
	return counts, nil
}

// lockRoom reads the room under FOR UPDATE so concurrent vacancy checks
// against the same room serialize. SQLite has no row locks; its writes
// serialize on the database level, so the clause is skipped there.
func lockRoom(tx *gorm.DB, roomID int64) (capacity int, err error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room roomRow
	err = q.First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}
	return room.Capacity, nil
}
