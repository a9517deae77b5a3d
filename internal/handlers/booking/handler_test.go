package booking_test

import (
	"bytes"
	"context"
	"hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/service/mocks"
	"hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	"hotel/internal/handlers/booking"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/console/session"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*bookingMocks.MockBooking, *authMocks.MockAuth, booking.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)
	auth := authMocks.NewMockAuth(ctrl)

	return svc, auth, booking.New(svc, auth, mocks.NewOtel())
}

func asUser(userID int64) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestHandler_BookRoom(t *testing.T) {
	t.Run("charged", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().
			Book(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req dto.BookRoomRequest) (dto.BookingReceipt, error) {
				assert.Equal(t, int64(1), req.HotelID)
				assert.Equal(t, int64(5), req.RoomNumber)
				assert.Equal(t, "2024-03-01", req.BookingDate.Format(constant.DateFormat))

				return dto.BookingReceipt{BookingID: 11, RoomNumber: 5, Price: 100}, nil
			})

		var out bytes.Buffer
		handler.BookRoom(asUser(3), session.New(strings.NewReader("1\n5\n2024-03-01\n"), &out))

		assert.Contains(t, out.String(), "The room 5 has been booked and you've been charged 100 bells\n")
	})

	t.Run("unavailable", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().Book(gomock.Any(), int64(3), gomock.Any()).Return(dto.BookingReceipt{}, failure.RoomUnavailable)

		var out bytes.Buffer
		handler.BookRoom(asUser(3), session.New(strings.NewReader("1\n5\n2024-03-01\n"), &out))

		assert.Contains(t, out.String(), failure.RoomUnavailable.Message)
		assert.NotContains(t, out.String(), "charged")
	})

	t.Run("room number must be positive", func(t *testing.T) {
		_, _, handler := setup(t)

		var out bytes.Buffer
		handler.BookRoom(asUser(3), session.New(strings.NewReader("1\n0\n2024-03-01\n"), &out))

		assert.Contains(t, out.String(), "RoomNumber must be greater than 0")
	})
}

func TestHandler_ViewRecentBookings(t *testing.T) {
	t.Run("lists bookings", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().GetRecent(gomock.Any(), int64(3)).Return([]dto.CustomerBookingResponse{
			{HotelID: 1, RoomNumber: 5, Price: 100, BookingDate: "2024-03-02"},
			{HotelID: 1, RoomNumber: 6, Price: 120, BookingDate: "2024-03-01"},
		}, nil)

		var out bytes.Buffer
		handler.ViewRecentBookings(asUser(3), session.New(strings.NewReader(""), &out))

		assert.Equal(t,
			"The hotelID is 1\nThe roomNumber is 5\nThe price is 100\nThe date is 2024-03-02\n\n"+
				"The hotelID is 1\nThe roomNumber is 6\nThe price is 120\nThe date is 2024-03-01\n\n",
			out.String())
	})

	t.Run("no history", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().GetRecent(gomock.Any(), int64(3)).Return(nil, nil)

		var out bytes.Buffer
		handler.ViewRecentBookings(asUser(3), session.New(strings.NewReader(""), &out))

		assert.Equal(t, "Sorry you have no current booking history\n", out.String())
	})
}

func TestHandler_ViewBookingHistoryOfHotel(t *testing.T) {
	t.Run("within range", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().
			GetHotelHistory(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req dto.HistoryRequest) ([]dto.HotelBookingResponse, error) {
				assert.Equal(t, time.March, req.From.Month())
				assert.Equal(t, 31, req.To.Day())

				return []dto.HotelBookingResponse{{BookingID: 11, CustomerName: "Alice", HotelID: 1, RoomNumber: 5, BookingDate: "2024-03-01"}}, nil
			})

		var out bytes.Buffer
		handler.ViewBookingHistoryOfHotel(asUser(7), session.New(strings.NewReader("3/1/2024\n3/31/2024\n"), &out))

		assert.Contains(t, out.String(), "The bookingID is 11\nThe customer name is Alice\nThe hotelID is 1\nThe roomNumber is 5\nThe date is 2024-03-01\n")
	})

	t.Run("empty range", func(t *testing.T) {
		svc, _, handler := setup(t)

		svc.EXPECT().GetHotelHistory(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)

		var out bytes.Buffer
		handler.ViewBookingHistoryOfHotel(asUser(7), session.New(strings.NewReader("2024-01-01\n2024-01-31\n"), &out))

		assert.Contains(t, out.String(), "No bookings between those time spans")
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, handler := setup(t)

		var out bytes.Buffer
		handler.ViewBookingHistoryOfHotel(asUser(7), session.New(strings.NewReader("2024-03-31\n2024-03-01\n"), &out))

		assert.Contains(t, out.String(), "To must not be before From")
	})
}

func TestHandler_ViewRegularCustomers(t *testing.T) {
	t.Run("top customers", func(t *testing.T) {
		svc, auth, handler := setup(t)

		auth.EXPECT().IsManagerOfHotel(gomock.Any(), int64(7), int64(1)).Return(true)
		svc.EXPECT().GetRegularCustomers(gomock.Any(), int64(1)).Return([]dto.RegularCustomerResponse{
			{Name: "Alice", Bookings: 4},
			{Name: "Bob", Bookings: 2},
		}, nil)

		var out bytes.Buffer
		handler.ViewRegularCustomers(asUser(7), session.New(strings.NewReader("1\n"), &out))

		assert.Contains(t, out.String(), "The top 5 customers who made the most bookings:\nAlice 4\nBob 2\n")
	})

	t.Run("manager of another hotel", func(t *testing.T) {
		_, auth, handler := setup(t)

		auth.EXPECT().IsManagerOfHotel(gomock.Any(), int64(7), int64(2)).Return(false)

		var out bytes.Buffer
		handler.ViewRegularCustomers(asUser(7), session.New(strings.NewReader("2\n"), &out))

		assert.Contains(t, out.String(), failure.NotManagerOfHotel.Message)
	})
}
