package model

import "time"

const (
	TableName  = "roombookings"
	EntityName = "booking"

	FieldID          = "bookingid"
	FieldCustomerID  = "customerid"
	FieldHotelID     = "hotelid"
	FieldRoomNumber  = "roomnumber"
	FieldBookingDate = "bookingdate"

	FieldHotelManagerUserID = "manageruserid"
	HotelTableName          = "hotel"

	CustomerBookingEntityName = "customer_booking"
	HotelBookingEntityName    = "hotel_booking"
)

type Booking struct {
	ID          int64     `db:"bookingid"   generated:"true"`
	CustomerID  int64     `db:"customerid"`
	HotelID     int64     `db:"hotelid"`
	RoomNumber  int64     `db:"roomnumber"`
	BookingDate time.Time `db:"bookingdate"`
}

// Receipt is the outcome of a successful booking.
type Receipt struct {
	BookingID int64
	Price     int64
}

// CustomerBooking is a booking together with the price of the booked room.
type CustomerBooking struct {
	ID          int64     `db:"bookingid"`
	HotelID     int64     `db:"hotelid"`
	RoomNumber  int64     `db:"roomnumber"`
	BookingDate time.Time `db:"bookingdate"`
	Price       int64     `db:"price"       table:"rooms"`
}

func (CustomerBooking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.hotelid = roombookings.hotelid AND rooms.roomnumber = roombookings.roomnumber"
}

// HotelBooking is a booking seen from the hotel side, with the customer's name.
type HotelBooking struct {
	ID           int64     `db:"bookingid"`
	CustomerName string    `db:"customer_name" table:"users" column:"name"`
	HotelID      int64     `db:"hotelid"`
	RoomNumber   int64     `db:"roomnumber"`
	BookingDate  time.Time `db:"bookingdate"`
}

func (HotelBooking) GetJoinQuery() string {
	return "JOIN users ON users.userid = roombookings.customerid JOIN hotel ON hotel.hotelid = roombookings.hotelid"
}

type RegularCustomer struct {
	CustomerID int64  `db:"customerid"`
	Name       string `db:"name"`
	Bookings   int64  `db:"bookings"`
}
