package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"io"

	"github.com/jmoiron/sqlx"
)

const queryHistory = `SELECT companyid, hotelid, roomnumber, repairdate FROM roomrepairs
WHERE hotelid IN (SELECT hotelid FROM hotel WHERE manageruserid = $1)
ORDER BY repairdate DESC, repairid DESC`

type Repair interface {
	CompanyExists(ctx context.Context, companyID int64) (bool, error)
	Place(ctx context.Context, repair model.Repair, managerID int64) (int64, error)
	PrintHistory(ctx context.Context, w io.Writer, managerID int64) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Repair]
	requests  gRepo.Repository[model.Request]
	companies gRepo.Repository[model.Company]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Repair {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Repair](model.EntityName, model.TableName, model.FieldID, db, otel),
		requests:   gRepo.NewRepository[model.Request](model.RequestEntityName, model.RequestTableName, model.FieldRequestNumber, db, otel),
		companies:  gRepo.NewRepository[model.Company](model.CompanyEntityName, model.CompanyTableName, model.FieldCompanyID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CompanyExists(ctx context.Context, companyID int64) (bool, error) {
	return r.companies.Exist(ctx, shared.FilterByID(companyID, model.FieldCompanyID, model.CompanyTableName))
}

// Place records the repair and the manager's request for it in one transaction
// and returns the generated repair id.
func (r *repositoryImpl) Place(ctx context.Context, repair model.Repair, managerID int64) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.Place")
	defer scope.End()

	var repairID int64

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		id, err := r.InsertReturningTx(ctx, tx, repair)
		if err != nil {
			return err
		}

		repairID = id

		return r.requests.InsertTx(ctx, tx, model.Request{ManagerID: managerID, RepairID: id})
	})
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to place repair: %w", err)
	}

	return repairID, nil
}

// PrintHistory writes every repair on the hotels managed by managerID to w as a table.
func (r *repositoryImpl) PrintHistory(ctx context.Context, w io.Writer, managerID int64) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.PrintHistory")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHistory)

	count, err := r.db.QueryPrint(ctx, w, queryHistory, managerID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to print repair history: %w", err)
	}

	return count, nil
}
