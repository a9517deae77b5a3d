package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryAvailable = `SELECT rooms.hotelid, rooms.roomnumber, rooms.price, rooms.imageurl FROM rooms
WHERE rooms.hotelid = $1 AND NOT EXISTS (
	SELECT 1 FROM roombookings
	WHERE roombookings.hotelid = rooms.hotelid
	AND roombookings.roomnumber = rooms.roomnumber
	AND roombookings.bookingdate = $2
) ORDER BY rooms.roomnumber`

	queryRecentUpdates = `SELECT hotelid, roomnumber, updatedon FROM roomupdateslog
WHERE managerid = $1 ORDER BY updatedon DESC, updatenumber DESC LIMIT $2`
)

type Room interface {
	GetAvailable(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error)
	UpdateWithLog(ctx context.Context, mod map[string]any, entry model.UpdateLog) (bool, error)
	PrintRecentUpdates(ctx context.Context, w io.Writer, managerID int64, limit int) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	logs gRepo.Repository[model.UpdateLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomNumber, db, otel),
		logs:       gRepo.NewRepository[model.UpdateLog](model.UpdateLogEntityName, model.UpdateLogTableName, model.FieldUpdateNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAvailable lists the rooms of hotelID that have no booking on date.
func (r *repositoryImpl) GetAvailable(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAvailable")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAvailable)

	rooms := []model.Room{}

	if err := r.db.DB.SelectContext(ctx, &rooms, queryAvailable, hotelID, date); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

// UpdateWithLog applies mod to the room named by entry and appends entry to the
// update log in one transaction. It reports false, writing nothing, when the room does not exist.
func (r *repositoryImpl) UpdateWithLog(ctx context.Context, mod map[string]any, entry model.UpdateLog) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateWithLog")
	defer scope.End()

	found := false

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByFields(model.TableName,
			gDto.Filter{Field: model.FieldHotelID, Value: entry.HotelID},
			gDto.Filter{Field: model.FieldRoomNumber, Value: entry.RoomNumber},
		)

		affected, err := r.UpdateTx(ctx, tx, mod, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return nil
		}

		found = true

		return r.logs.InsertTx(ctx, tx, entry)
	})
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update room: %w", err)
	}

	return found, nil
}

// PrintRecentUpdates writes the newest limit update log rows of managerID to w as a table.
func (r *repositoryImpl) PrintRecentUpdates(ctx context.Context, w io.Writer, managerID int64, limit int) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.PrintRecentUpdates")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecentUpdates)

	count, err := r.db.QueryPrint(ctx, w, queryRecentUpdates, managerID, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to print recent updates: %w", err)
	}

	return count, nil
}
