package booking

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/queue"
	"hotelbooking/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CreateInRoom(ctx context.Context, roomID, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, roomID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) RepointToRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBookingMoved(ctx context.Context, ev queue.BookingMovedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func paidHotelTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:     1,
		Status: domain.TicketPaid,
		TicketType: domain.TicketType{
			ID:            3,
			Name:          "In Person + Hotel",
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func TestService_GetByUser_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)

	room := domain.Room{ID: 101, Name: "101", Capacity: 2, HotelID: 1}
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID:     55,
		UserID: 7,
		RoomID: 101,
		Room:   &room,
	}, nil)

	service := NewService(mockBookings, mockTickets, nil)

	b, err := service.GetByUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(55), b.ID)
	assert.NotNil(t, b.Room)
	assert.Equal(t, int64(101), b.Room.ID)
}

func TestService_GetByUser_NoBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)

	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(nil, repository.ErrBookingNotFound)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.GetByUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockEvents := new(MockEventPublisher)

	mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(paidHotelTicket(), nil)
	mockBookings.On("CreateInRoom", mock.Anything, int64(101), int64(7)).Return(&domain.Booking{
		ID:     999,
		UserID: 7,
		RoomID: 101,
	}, nil)
	mockEvents.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockTickets, mockEvents)

	bookingID, err := service.Create(context.Background(), 101, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(999), bookingID)
	mockBookings.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestService_Create_MissingRoomID(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.Create(context.Background(), 0, 7)

	assert.ErrorIs(t, err, ErrRoomIDRequired)
	mockTickets.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestService_Create_TicketDisqualified(t *testing.T) {
	cases := []struct {
		name   string
		ticket *domain.Ticket
	}{
		{
			name: "not paid",
			ticket: &domain.Ticket{
				Status:     domain.TicketReserved,
				TicketType: domain.TicketType{IsRemote: false, IncludesHotel: true},
			},
		},
		{
			name: "remote only",
			ticket: &domain.Ticket{
				Status:     domain.TicketPaid,
				TicketType: domain.TicketType{IsRemote: true, IncludesHotel: false},
			},
		},
		{
			name: "no hotel included",
			ticket: &domain.Ticket{
				Status:     domain.TicketPaid,
				TicketType: domain.TicketType{IsRemote: false, IncludesHotel: false},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			mockTickets := new(MockTicketRepository)
			mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(tc.ticket, nil)

			service := NewService(mockBookings, mockTickets, nil)

			_, err := service.Create(context.Background(), 101, 7)

			assert.ErrorIs(t, err, ErrNotFound)
			mockBookings.AssertNotCalled(t, "CreateInRoom", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_NoTicket(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(nil, repository.ErrTicketNotFound)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.Create(context.Background(), 101, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_RoomMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(paidHotelTicket(), nil)
	mockBookings.On("CreateInRoom", mock.Anything, int64(404), int64(7)).Return(nil, repository.ErrRoomNotFound)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.Create(context.Background(), 404, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_RoomFull(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(paidHotelTicket(), nil)
	mockBookings.On("CreateInRoom", mock.Anything, int64(101), int64(7)).Return(nil, repository.ErrRoomFull)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.Create(context.Background(), 101, 7)
	assert.ErrorIs(t, err, ErrNoVacancy)
}

func TestService_Create_SecondBookingRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockTickets.On("GetByUserID", mock.Anything, int64(7)).Return(paidHotelTicket(), nil)
	mockBookings.On("CreateInRoom", mock.Anything, int64(101), int64(7)).
		Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_user"})

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.Create(context.Background(), 101, 7)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestService_ChangeRoom_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockEvents := new(MockEventPublisher)

	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID:     55,
		UserID: 7,
		RoomID: 101,
	}, nil)
	mockBookings.On("RepointToRoom", mock.Anything, int64(55), int64(102)).Return(&domain.Booking{
		ID:     55,
		UserID: 7,
		RoomID: 102,
	}, nil)
	mockEvents.On("PublishBookingMoved", mock.Anything, mock.MatchedBy(func(ev queue.BookingMovedEvent) bool {
		return ev.FromRoomID == 101 && ev.ToRoomID == 102
	})).Return(nil)

	service := NewService(mockBookings, mockTickets, mockEvents)

	bookingID, err := service.ChangeRoom(context.Background(), 102, 55, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(55), bookingID)
	mockEvents.AssertExpectations(t)
}

func TestService_ChangeRoom_MissingRoomID(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.ChangeRoom(context.Background(), 0, 55, 7)
	assert.ErrorIs(t, err, ErrRoomIDRequired)
}

func TestService_ChangeRoom_NoActiveBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(nil, repository.ErrBookingNotFound)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.ChangeRoom(context.Background(), 102, 55, 7)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestService_ChangeRoom_NotOwner(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)

	// the caller owns booking 55 but names booking 56 in the path
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID:     55,
		UserID: 7,
		RoomID: 101,
	}, nil)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.ChangeRoom(context.Background(), 102, 56, 7)

	assert.ErrorIs(t, err, ErrNotOwner)
	mockBookings.AssertNotCalled(t, "RepointToRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangeRoom_RoomMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 55, UserID: 7, RoomID: 101}, nil)
	mockBookings.On("RepointToRoom", mock.Anything, int64(55), int64(404)).Return(nil, repository.ErrRoomNotFound)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.ChangeRoom(context.Background(), 404, 55, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChangeRoom_TargetFull(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 55, UserID: 7, RoomID: 101}, nil)
	mockBookings.On("RepointToRoom", mock.Anything, int64(55), int64(102)).Return(nil, repository.ErrRoomFull)

	service := NewService(mockBookings, mockTickets, nil)

	_, err := service.ChangeRoom(context.Background(), 102, 55, 7)
	assert.ErrorIs(t, err, ErrNoVacancy)
}

// Re-pointing then reading back reflects the new room.
func TestService_ChangeRoom_RoundTrip(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockTickets := new(MockTicketRepository)

	newRoom := domain.Room{ID: 102, Name: "102", Capacity: 2, HotelID: 1}

	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 55, UserID: 7, RoomID: 101,
	}, nil).Once()
	mockBookings.On("RepointToRoom", mock.Anything, int64(55), int64(102)).Return(&domain.Booking{
		ID: 55, UserID: 7, RoomID: 102,
	}, nil)
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 55, UserID: 7, RoomID: 102, Room: &newRoom,
	}, nil).Once()

	service := NewService(mockBookings, mockTickets, nil)

	bookingID, err := service.ChangeRoom(context.Background(), 102, 55, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(55), bookingID)

	b, err := service.GetByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(102), b.RoomID)
	assert.Equal(t, int64(102), b.Room.ID)
}
