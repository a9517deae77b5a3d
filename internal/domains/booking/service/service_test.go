package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	"hotel/shared/failure"
)

var bookingDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestBookingService_Book(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.BookRoomRequest{HotelID: 1, RoomNumber: 5, BookingDate: bookingDate}
	want := model.Booking{CustomerID: 7, HotelID: 1, RoomNumber: 5, BookingDate: bookingDate}

	tests := []struct {
		name      string
		setupMock func()
		wantPrice int64
		wantCode  failure.Code
	}{
		{
			name: "free room is charged at its price",
			setupMock: func() {
				mockRepo.EXPECT().Book(gomock.Any(), want).Return(model.Receipt{BookingID: 11, Price: 100}, nil)
			},
			wantPrice: 100,
		},
		{
			name: "taken room is unavailable",
			setupMock: func() {
				mockRepo.EXPECT().Book(gomock.Any(), want).Return(model.Receipt{}, repository.ErrRoomBooked)
			},
			wantCode: failure.CodeConflict,
		},
		{
			name: "missing room is unavailable",
			setupMock: func() {
				mockRepo.EXPECT().Book(gomock.Any(), want).Return(model.Receipt{}, repository.ErrRoomNotFound)
			},
			wantCode: failure.CodeConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Book(gomock.Any(), want).Return(model.Receipt{}, errors.New("database error"))
			},
			wantCode: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Book(context.Background(), 7, req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.Price)
			assert.Equal(t, int64(5), res.RoomNumber)
		})
	}
}

func TestBookingService_Book_SecondAttemptUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.BookRoomRequest{HotelID: 1, RoomNumber: 5, BookingDate: bookingDate}

	gomock.InOrder(
		mockRepo.EXPECT().Book(gomock.Any(), gomock.Any()).Return(model.Receipt{BookingID: 1, Price: 100}, nil),
		mockRepo.EXPECT().Book(gomock.Any(), gomock.Any()).Return(model.Receipt{}, repository.ErrRoomBooked),
	)

	_, err := svc.Book(context.Background(), 7, req)
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), 8, req)
	assert.ErrorIs(t, err, failure.RoomUnavailable)
}

func TestBookingService_Book_TracesReturnedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	recorder := mocks.NewOtel()
	svc := service.New(mockRepo, recorder)

	req := dto.BookRoomRequest{HotelID: 1, RoomNumber: 5, BookingDate: bookingDate}

	mockRepo.EXPECT().Book(gomock.Any(), gomock.Any()).Return(model.Receipt{BookingID: 11, Price: 100}, nil)
	mockRepo.EXPECT().Book(gomock.Any(), gomock.Any()).Return(model.Receipt{}, errors.New("connection reset"))

	_, err := svc.Book(context.Background(), 7, req)
	require.NoError(t, err)
	assert.Empty(t, recorder.TracedErrors())

	_, err = svc.Book(context.Background(), 7, req)
	require.Error(t, err)

	traced := recorder.TracedErrors()
	require.Len(t, traced, 1)
	assert.ErrorContains(t, traced[0], "connection reset")
	assert.Contains(t, recorder.Scopes(), "service.Book")
}

func TestBookingService_GetRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	bookings := []model.CustomerBooking{}
	for day := 7; day >= 1; day-- {
		bookings = append(bookings, model.CustomerBooking{
			ID:          int64(day),
			HotelID:     1,
			RoomNumber:  int64(day),
			BookingDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			Price:       100,
		})
	}

	mockRepo.EXPECT().GetRecentByCustomer(gomock.Any(), int64(7), 5).Return(bookings, nil)

	res, err := svc.GetRecent(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, res, 5)

	for idx, booking := range res {
		assert.Equal(t, fmt.Sprintf("2024-03-0%d", 7-idx), booking.BookingDate)
	}
}

func TestBookingService_GetRecent_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().GetRecentByCustomer(gomock.Any(), int64(7), 5).Return([]model.CustomerBooking{}, nil)

	res, err := svc.GetRecent(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingService_GetHotelHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetByManager(gomock.Any(), int64(3), from, to).Return([]model.HotelBooking{
		{ID: 1, CustomerName: "Alice", HotelID: 1, RoomNumber: 5, BookingDate: from},
		{ID: 2, CustomerName: "Bob", HotelID: 1, RoomNumber: 6, BookingDate: to},
	}, nil)

	res, err := svc.GetHotelHistory(context.Background(), 3, dto.HistoryRequest{From: from, To: to})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, dto.HotelBookingResponse{BookingID: 1, CustomerName: "Alice", HotelID: 1, RoomNumber: 5, BookingDate: "2024-03-01"}, res[0])
	assert.Equal(t, "2024-03-31", res[1].BookingDate)
}

func TestBookingService_GetRegularCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("ranked customers", func(t *testing.T) {
		mockRepo.EXPECT().GetRegularCustomers(gomock.Any(), int64(1), 5).Return([]model.RegularCustomer{
			{CustomerID: 2, Name: "Bob", Bookings: 4},
			{CustomerID: 1, Name: "Alice", Bookings: 2},
		}, nil)

		res, err := svc.GetRegularCustomers(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, []dto.RegularCustomerResponse{{Name: "Bob", Bookings: 4}, {Name: "Alice", Bookings: 2}}, res)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().GetRegularCustomers(gomock.Any(), int64(1), 5).Return(nil, errors.New("database error"))

		_, err := svc.GetRegularCustomers(context.Background(), 1)

		assert.Error(t, err)
	})
}
