package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
)

var (
	date    = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	booking = model.Booking{CustomerID: 7, HotelID: 1, RoomNumber: 5, BookingDate: date}
)

const (
	lockQuery   = "SELECT price FROM rooms WHERE hotelid = $1 AND roomnumber = $2 FOR UPDATE"
	bookedQuery = "SELECT EXISTS(SELECT 1 FROM roombookings WHERE hotelid = $1 AND roomnumber = $2 AND bookingdate = $3)"
	insertQuery = "INSERT INTO roombookings (customerid, hotelid, roomnumber, bookingdate) VALUES ($1, $2, $3, $4) RETURNING bookingid"
)

func setup(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel()), mock
}

func TestBook_FreeRoom(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(int64(100)))
	mock.ExpectQuery(regexp.QuoteMeta(bookedQuery)).
		WithArgs(int64(1), int64(5), date).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectPrepare(regexp.QuoteMeta(insertQuery)).
		ExpectQuery().
		WithArgs(int64(7), int64(1), int64(5), date).
		WillReturnRows(sqlmock.NewRows([]string{"bookingid"}).AddRow(int64(11)))
	mock.ExpectCommit()

	receipt, err := repo.Book(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, model.Receipt{BookingID: 11, Price: 100}, receipt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBook_AlreadyBooked(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(int64(100)))
	mock.ExpectQuery(regexp.QuoteMeta(bookedQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), booking)

	assert.ErrorIs(t, err, repository.ErrRoomBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBook_UniqueViolationMeansBooked(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(int64(100)))
	mock.ExpectQuery(regexp.QuoteMeta(bookedQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectPrepare(regexp.QuoteMeta(insertQuery)).
		ExpectQuery().
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), booking)

	assert.ErrorIs(t, err, repository.ErrRoomBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBook_MissingRoom(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), booking)

	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBook_DatabaseError(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), booking)

	assert.ErrorContains(t, err, "connection reset")
	assert.False(t, errors.Is(err, repository.ErrRoomBooked))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentByCustomer(t *testing.T) {
	repo, mock := setup(t)

	query := "SELECT roombookings.bookingid, roombookings.hotelid, roombookings.roomnumber, roombookings.bookingdate, rooms.price " +
		"FROM roombookings JOIN rooms ON rooms.hotelid = roombookings.hotelid AND rooms.roomnumber = roombookings.roomnumber " +
		"WHERE (roombookings.customerid = $1) ORDER BY roombookings.bookingdate DESC LIMIT $2"

	mock.ExpectPrepare(regexp.QuoteMeta(query)).
		ExpectQuery().
		WithArgs(int64(7), 5).
		WillReturnRows(sqlmock.NewRows([]string{"bookingid", "hotelid", "roomnumber", "bookingdate", "price"}).
			AddRow(int64(2), int64(1), int64(5), date.AddDate(0, 0, 1), int64(100)).
			AddRow(int64(1), int64(1), int64(6), date, int64(80)))

	bookings, err := repo.GetRecentByCustomer(context.Background(), 7, 5)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, model.CustomerBooking{ID: 2, HotelID: 1, RoomNumber: 5, BookingDate: date.AddDate(0, 0, 1), Price: 100}, bookings[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByManager(t *testing.T) {
	repo, mock := setup(t)

	to := date.AddDate(0, 1, 0)
	query := "SELECT roombookings.bookingid, users.name AS customer_name, roombookings.hotelid, roombookings.roomnumber, roombookings.bookingdate " +
		"FROM roombookings JOIN users ON users.userid = roombookings.customerid JOIN hotel ON hotel.hotelid = roombookings.hotelid " +
		"WHERE (hotel.manageruserid = $1 AND roombookings.bookingdate >= $2 AND roombookings.bookingdate <= $3) " +
		"ORDER BY roombookings.bookingdate ASC"

	mock.ExpectPrepare(regexp.QuoteMeta(query)).
		ExpectQuery().
		WithArgs(int64(3), date, to).
		WillReturnRows(sqlmock.NewRows([]string{"bookingid", "customer_name", "hotelid", "roomnumber", "bookingdate"}).
			AddRow(int64(1), "Alice", int64(1), int64(5), date).
			AddRow(int64(2), "Bob", int64(1), int64(6), to))

	bookings, err := repo.GetByManager(context.Background(), 3, date, to)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Alice", bookings[0].CustomerName)
	assert.Equal(t, to, bookings[1].BookingDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRegularCustomers(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT users.userid AS customerid, users.name, COUNT(*) AS bookings FROM roombookings")).
		WithArgs(int64(1), 5).
		WillReturnRows(sqlmock.NewRows([]string{"customerid", "name", "bookings"}).
			AddRow(int64(2), "Bob", int64(4)).
			AddRow(int64(1), "Alice", int64(2)))

	customers, err := repo.GetRegularCustomers(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, []model.RegularCustomer{
		{CustomerID: 2, Name: "Bob", Bookings: 4},
		{CustomerID: 1, Name: "Alice", Bookings: 2},
	}, customers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
