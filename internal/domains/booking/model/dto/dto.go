package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"time"
)

type BookRoomRequest struct {
	HotelID     int64     `validate:"gt=0"`
	RoomNumber  int64     `validate:"gt=0"`
	BookingDate time.Time `validate:"required"`
}

func (r *BookRoomRequest) ToModel(customerID int64) model.Booking {
	return model.Booking{
		CustomerID:  customerID,
		HotelID:     r.HotelID,
		RoomNumber:  r.RoomNumber,
		BookingDate: r.BookingDate,
	}
}

type BookingReceipt struct {
	BookingID  int64
	RoomNumber int64
	Price      int64
}

func (r *BookingReceipt) FromModel(req BookRoomRequest, receipt model.Receipt) {
	r.BookingID = receipt.BookingID
	r.RoomNumber = req.RoomNumber
	r.Price = receipt.Price
}

type CustomerBookingResponse struct {
	HotelID     int64
	RoomNumber  int64
	Price       int64
	BookingDate string
}

func (r *CustomerBookingResponse) FromModel(model model.CustomerBooking) {
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price
	r.BookingDate = model.BookingDate.Format(constant.DateFormat)
}

// HistoryRequest is an inclusive booking date range.
type HistoryRequest struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

type HotelBookingResponse struct {
	BookingID    int64
	CustomerName string
	HotelID      int64
	RoomNumber   int64
	BookingDate  string
}

func (r *HotelBookingResponse) FromModel(model model.HotelBooking) {
	r.BookingID = model.ID
	r.CustomerName = model.CustomerName
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.BookingDate = model.BookingDate.Format(constant.DateFormat)
}

type RegularCustomerResponse struct {
	Name     string
	Bookings int64
}

func (r *RegularCustomerResponse) FromModel(model model.RegularCustomer) {
	r.Name = model.Name
	r.Bookings = model.Bookings
}
