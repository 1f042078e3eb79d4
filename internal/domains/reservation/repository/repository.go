package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/postgres"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/logger"
	gRepo "github.com/yamanfurkan353-eng/lumina/shared/repository"
)

// Overlap uses half-open ranges: a stay ending on a given day does not
// collide with one starting that day. Only confirmed and checked-in
// reservations block a room. Callers lock the room row first, so concurrent
// bookings against the same room serialize before reaching this check.
const overlappingQuery = `
SELECT EXISTS(
  SELECT 1 FROM reservations
  WHERE room_id = $1
    AND status IN ('confirmed', 'checked_in')
    AND NOT (check_out <= $2 OR check_in >= $3)
    AND ($4 = '' OR id != $4)
)`

const monthlyRevenueQuery = `
SELECT to_char(check_in, 'YYYY-MM') AS month,
       COALESCE(SUM(total_price), 0) AS revenue,
       COUNT(id) AS reservations
FROM reservations
WHERE status != 'cancelled'
  AND check_in >= $1
GROUP BY to_char(check_in, 'YYYY-MM')
ORDER BY month`

// Earned revenue for a period: stays that ended in it, plus booked ones that
// have not started. Cancelled and in-house stays do not count.
const revenueStatsQuery = `
SELECT COUNT(id) AS total_reservations,
       COALESCE(SUM(total_price), 0) AS total_revenue,
       COALESCE(AVG(total_price), 0) AS avg_price
FROM reservations
WHERE check_out BETWEEN $1 AND $2
  AND status IN ('checked_out', 'confirmed')`

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ExistOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error)
	MonthlyRevenue(ctx context.Context, since time.Time) ([]model.RevenueBucket, error)
	RevenueStats(ctx context.Context, from, to time.Time) (model.RevenueSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ExistOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ExistOverlappingTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlappingQuery)

	var exist bool

	err := sqltx.GetContext(ctx, &exist, overlappingQuery, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	return exist, nil
}

func (repo *repositoryImpl) MonthlyRevenue(ctx context.Context, since time.Time) ([]model.RevenueBucket, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.MonthlyRevenue")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, monthlyRevenueQuery)

	var buckets []model.RevenueBucket

	err := repo.db.Read.SelectContext(ctx, &buckets, monthlyRevenueQuery, since)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return buckets, nil
}

func (repo *repositoryImpl) RevenueStats(ctx context.Context, from, to time.Time) (model.RevenueSummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.RevenueStats")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueStatsQuery)

	var summary model.RevenueSummary

	err := repo.db.Read.GetContext(ctx, &summary, revenueStatsQuery, from, to)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to get revenue stats: %w", err)
	}

	return summary, nil
}
