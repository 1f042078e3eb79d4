package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/postgres"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/logger"
	gRepo "github.com/yamanfurkan353-eng/lumina/shared/repository"
)

// A room is sellable for a range when its status is available and no
// confirmed or checked-in reservation overlaps it. Ranges are half-open:
// check-out day does not block check-in.
const availableQuery = `
SELECT id, room_number, floor, type, status, price_per_night, capacity, amenities, description,
       created_at, modified_at, created_by, modified_by
FROM rooms
WHERE status = 'available'
  AND NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.room_id = rooms.id
      AND r.status IN ('confirmed', 'checked_in')
      AND NOT (r.check_out <= $1 OR r.check_in >= $2)
  )
ORDER BY floor, room_number`

const countByStatusQuery = `
SELECT status, COUNT(id) AS count
FROM rooms
GROUP BY status`

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availableQuery)

	var rooms []model.Room

	err := repo.db.Read.SelectContext(ctx, &rooms, availableQuery, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountByStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByStatusQuery)

	var counts []model.StatusCount

	err := repo.db.Read.SelectContext(ctx, &counts, countByStatusQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return counts, nil
}
