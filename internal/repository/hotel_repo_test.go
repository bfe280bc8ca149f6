package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewHotelRepository(db)

	require.NoError(t, db.Create(&hotelRow{ID: 2, Name: "Palace Hotel"}).Error)
	require.NoError(t, db.Create(&hotelRow{ID: 1, Name: "Driven Resort"}).Error)

	hotels, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Driven Resort", hotels[0].Name)
	assert.Equal(t, "Palace Hotel", hotels[1].Name)
}

func TestHotelRepository_GetWithRooms(t *testing.T) {
	db := newTestDB(t)
	repo := NewHotelRepository(db)

	require.NoError(t, db.Create(&hotelRow{ID: 1, Name: "Driven Resort"}).Error)
	seedRoom(t, db, 101, 2)
	seedRoom(t, db, 102, 3)

	hotel, err := repo.GetWithRooms(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Driven Resort", hotel.Name)
	assert.Len(t, hotel.Rooms, 2)
}

func TestHotelRepository_GetWithRooms_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewHotelRepository(db)

	_, err := repo.GetWithRooms(context.Background(), 42)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
