package repository

import "gorm.io/gorm"

// Seed loads a small demo dataset: two hotels with rooms, the three
// ticket types and a handful of enrolled users. Existing rows are
// cleared first, children before parents.
func Seed(db *gorm.DB) error {
	for _, table := range []string{"bookings", "tickets", "enrollments", "ticket_types", "rooms", "hotels"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	hotels := []hotelRow{
		{ID: 1, Name: "Driven Resort", Image: "https://example.com/driven-resort.jpg"},
		{ID: 2, Name: "Palace Hotel", Image: "https://example.com/palace-hotel.jpg"},
	}
	if err := db.Create(&hotels).Error; err != nil {
		return err
	}

	rooms := []roomRow{
		{ID: 101, Name: "101", Capacity: 1, HotelID: 1},
		{ID: 102, Name: "102", Capacity: 2, HotelID: 1},
		{ID: 103, Name: "103", Capacity: 3, HotelID: 1},
		{ID: 201, Name: "201", Capacity: 2, HotelID: 2},
		{ID: 202, Name: "202", Capacity: 4, HotelID: 2},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	types := []ticketTypeRow{
		{ID: 1, Name: "Online", IsRemote: true, IncludesHotel: false},
		{ID: 2, Name: "In Person", IsRemote: false, IncludesHotel: false},
		{ID: 3, Name: "In Person + Hotel", IsRemote: false, IncludesHotel: true},
	}
	if err := db.Create(&types).Error; err != nil {
		return err
	}

	enrollments := []enrollmentRow{
		{ID: 1, UserID: 1},
		{ID: 2, UserID: 2},
		{ID: 3, UserID: 3},
	}
	if err := db.Create(&enrollments).Error; err != nil {
		return err
	}

	tickets := []ticketRow{
		{ID: 1, EnrollmentID: 1, TicketTypeID: 3, Status: "PAID"},
		{ID: 2, EnrollmentID: 2, TicketTypeID: 3, Status: "RESERVED"},
		{ID: 3, EnrollmentID: 3, TicketTypeID: 1, Status: "PAID"},
	}
	return db.Create(&tickets).Error
}
