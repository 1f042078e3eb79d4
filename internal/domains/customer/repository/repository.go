package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/postgres"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/logger"
	gRepo "github.com/yamanfurkan353-eng/lumina/shared/repository"
)

const incrementStatsQuery = `
UPDATE customers
SET total_stays = total_stays + 1,
    total_spent = total_spent + $2,
    modified_at = NOW(),
    modified_by = $3
WHERE id = $1`

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IncrementStatsTx(ctx context.Context, sqltx *sqlx.Tx, id string, spent float64, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IncrementStatsTx bumps the stay counters after a completed stay. Runs in
// the caller's transaction so it commits or rolls back with the check-out.
func (repo *repositoryImpl) IncrementStatsTx(ctx context.Context, sqltx *sqlx.Tx, id string, spent float64, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.IncrementStatsTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, incrementStatsQuery)

	_, err := sqltx.ExecContext(ctx, incrementStatsQuery, id, spent, user)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment customer stats: %w", err)
	}

	return nil
}
