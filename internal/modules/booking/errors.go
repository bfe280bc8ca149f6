package booking

import "errors"

// Each failure mode gets its own sentinel so handlers can match
// exhaustively. ErrNoVacancy and ErrNoActiveBooking are distinct cases
// even though both surface as 403.
var (
	ErrRoomIDRequired  = errors.New("room id required")
	ErrNotFound        = errors.New("booking prerequisite not found")
	ErrNoVacancy       = errors.New("room has no vacancies")
	ErrNoActiveBooking = errors.New("user has no active booking")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrAlreadyBooked   = errors.New("user already has a booking")
)
