package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	customerRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/repository"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/dashboard/model/dto"
	reservationModel "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	reservationRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/repository"
	roomRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/room/repository"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

const (
	cacheDashboard = "dashboard:summary"

	revenueMonths = 12
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	roomRepo        roomRepo.Room
	reservationRepo reservationRepo.Reservation
	customerRepo    customerRepo.Customer
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	reservationRepo reservationRepo.Reservation,
	customerRepo customerRepo.Customer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	counts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return res, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	res.Rooms.FromCounts(counts)

	today := timezone.Today()
	monthStart := today.AddDate(0, 0, -today.Day()+1)

	res.TodayCheckIns, err = s.reservationRepo.Count(ctx, statusDateFilter(reservationModel.StatusConfirmed, reservationModel.FieldCheckIn, today))
	if err != nil {
		return res, fmt.Errorf("failed to count today check-ins: %w", err)
	}

	res.TodayCheckOuts, err = s.reservationRepo.Count(ctx, statusDateFilter(reservationModel.StatusCheckedIn, reservationModel.FieldCheckOut, today))
	if err != nil {
		return res, fmt.Errorf("failed to count today check-outs: %w", err)
	}

	res.ActiveReservations, err = s.reservationRepo.Count(ctx, gDto.FilterGroup{Filters: []any{gDto.Filter{
		Field:    reservationModel.FieldStatus,
		Table:    reservationModel.TableName,
		Value:    reservationModel.ActiveStatuses,
		Operator: gDto.FilterOperatorIn,
	}}})
	if err != nil {
		return res, fmt.Errorf("failed to count active reservations: %w", err)
	}

	res.UpcomingWeek, err = s.reservationRepo.Count(ctx, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: reservationModel.FieldStatus, Table: reservationModel.TableName, Value: reservationModel.ActiveStatuses, Operator: gDto.FilterOperatorIn},
		gDto.Filter{ArgName: "check_in_from", Field: reservationModel.FieldCheckIn, Table: reservationModel.TableName, Value: today, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{ArgName: "check_in_to", Field: reservationModel.FieldCheckIn, Table: reservationModel.TableName, Value: today.AddDate(0, 0, constant.DefaultUpcomingDays), Operator: gDto.FilterOperatorLess},
	}})
	if err != nil {
		return res, fmt.Errorf("failed to count upcoming reservations: %w", err)
	}

	res.ReservationsInMonth, err = s.reservationRepo.Count(ctx, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: reservationModel.FieldCheckIn, Table: reservationModel.TableName, Value: monthStart, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{Field: reservationModel.FieldStatus, Table: reservationModel.TableName, Value: reservationModel.StatusCancelled, Operator: gDto.FilterOperatorNotEq},
	}})
	if err != nil {
		return res, fmt.Errorf("failed to count reservations this month: %w", err)
	}

	res.TotalCustomers, err = s.customerRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	summary, err := s.reservationRepo.RevenueStats(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return res, fmt.Errorf("failed to get revenue stats: %w", err)
	}

	buckets, err := s.reservationRepo.MonthlyRevenue(ctx, monthStart.AddDate(0, -revenueMonths+1, 0))
	if err != nil {
		return res, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	res.SetRevenue(summary, buckets)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func statusDateFilter(status, dateField string, day interface{}) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: reservationModel.FieldStatus, Table: reservationModel.TableName, Value: status, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: dateField, Table: reservationModel.TableName, Value: day, Operator: gDto.FilterOperatorEq},
	}}
}
