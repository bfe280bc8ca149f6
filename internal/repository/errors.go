// Package repository wraps all database access behind small typed
// repositories. Sentinel errors declared here let the service layer
// distinguish failure cases without inspecting driver errors.
package repository

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrHotelNotFound   = errors.New("hotel not found")

	// ErrRoomFull is returned by the vacancy-checked writes when the
	// target room's occupancy already equals its capacity. The check and
	// the write happen inside one transaction holding a row lock on the
	// room, so concurrent requests cannot both pass it.
	ErrRoomFull = errors.New("room has no vacancies")
)
