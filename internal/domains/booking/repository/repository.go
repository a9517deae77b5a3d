package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomBooked   = errors.New("room already booked on that date")
)

const (
	queryLockRoom = `SELECT price FROM rooms WHERE hotelid = $1 AND roomnumber = $2 FOR UPDATE`

	queryBooked = `SELECT EXISTS(SELECT 1 FROM roombookings WHERE hotelid = $1 AND roomnumber = $2 AND bookingdate = $3)`

	queryRegularCustomers = `SELECT users.userid AS customerid, users.name, COUNT(*) AS bookings FROM roombookings
JOIN users ON users.userid = roombookings.customerid
WHERE roombookings.hotelid = $1
GROUP BY users.userid, users.name
ORDER BY bookings DESC, users.userid LIMIT $2`
)

type Booking interface {
	Book(ctx context.Context, booking model.Booking) (model.Receipt, error)
	GetRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]model.CustomerBooking, error)
	GetByManager(ctx context.Context, managerID int64, from, to time.Time) ([]model.HotelBooking, error)
	GetRegularCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	customerBookings gRepo.Repository[model.CustomerBooking]
	hotelBookings    gRepo.Repository[model.HotelBooking]
	db               *postgres.Connection
	otel             otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:       gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		customerBookings: gRepo.NewRepository[model.CustomerBooking](model.CustomerBookingEntityName, model.TableName, model.FieldID, db, otel),
		hotelBookings:    gRepo.NewRepository[model.HotelBooking](model.HotelBookingEntityName, model.TableName, model.FieldID, db, otel),
		db:               db,
		otel:             otel,
	}
}

// Book locks the room row, makes sure nobody holds it on the booking date and
// inserts the booking, all in one transaction. ErrRoomBooked is returned both
// when the check finds a booking and when the unique constraint rejects the insert.
func (r *repositoryImpl) Book(ctx context.Context, booking model.Booking) (model.Receipt, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Book")
	defer scope.End()

	var receipt model.Receipt

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &receipt.Price, queryLockRoom, booking.HotelID, booking.RoomNumber); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRoomNotFound
			}

			return fmt.Errorf("failed to lock room: %w", err)
		}

		booked := false
		if err := tx.GetContext(ctx, &booked, queryBooked, booking.HotelID, booking.RoomNumber, booking.BookingDate); err != nil {
			return fmt.Errorf("failed to check room booking: %w", err)
		}

		if booked {
			return ErrRoomBooked
		}

		id, err := r.InsertReturningTx(ctx, tx, booking)
		if err != nil {
			if postgres.IsUniqueViolation(err) {
				return ErrRoomBooked
			}

			return err
		}

		receipt.BookingID = id

		return nil
	})

	switch {
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrRoomBooked):
		return model.Receipt{}, err
	case err != nil:
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Receipt{}, fmt.Errorf("failed to book room: %w", err)
	}

	return receipt, nil
}

// GetRecentByCustomer returns the customer's newest limit bookings with room prices.
func (r *repositoryImpl) GetRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]model.CustomerBooking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.TableName,
			},
		},
	}

	return r.customerBookings.GetAll(ctx, gDto.Latest(model.TableName+"."+model.FieldBookingDate, limit), filter)
}

// GetByManager returns bookings in [from, to] at every hotel managed by managerID.
func (r *repositoryImpl) GetByManager(ctx context.Context, managerID int64, from, to time.Time) ([]model.HotelBooking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelManagerUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    managerID,
				Table:    model.HotelTableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldBookingDate,
		SortDir: gDto.SortDirAsc,
	}

	return r.hotelBookings.GetAll(ctx, params, filter)
}

// GetRegularCustomers ranks the customers of hotelID by booking count.
func (r *repositoryImpl) GetRegularCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRegularCustomers")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRegularCustomers)

	customers := []model.RegularCustomer{}

	if err := r.db.DB.SelectContext(ctx, &customers, queryRegularCustomers, hotelID, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return customers, fmt.Errorf("failed to get regular customers: %w", err)
	}

	return customers, nil
}
