package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/postgres"
	customerModel "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	customerRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/repository"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/repository"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	roomRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/room/repository"
	"github.com/yamanfurkan353-eng/lumina/shared"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	cacheGetRoom       = "room:get"
	cacheGetAllRoom    = "room:gets"
	cacheAvailableRoom = "room:available"
	cacheGetCustomer   = "customer:get"
	cacheDashboard     = "dashboard"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) error
	Cancel(ctx context.Context, id string) error
	ListByDateRange(ctx context.Context, from, to time.Time) (dto.GetReservationsResponse, error)
	ListUpcoming(ctx context.Context, days int) (dto.GetReservationsResponse, error)
	ListTodayCheckIns(ctx context.Context) (dto.GetReservationsResponse, error)
	ListTodayCheckOuts(ctx context.Context) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	customerExist, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer existence")

		return res, fmt.Errorf("failed to check customer existence: %w", err)
	}

	if !customerExist {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		if req.Guests > room.Capacity {
			return failure.BadRequestFromString("guests exceed room capacity") // nolint:wrapcheck
		}

		overlap, err := s.repo.ExistOverlappingTx(ctx, tx, req.RoomID, reservation.CheckIn, reservation.CheckOut, constant.Empty)
		if err != nil {
			return err
		}

		if overlap {
			return failure.Conflict("room is already reserved for the requested dates") // nolint:wrapcheck
		}

		reservation.TotalPrice = float64(reservation.Nights()) * room.PricePerNight

		return s.repo.InsertTx(ctx, tx, reservation)
	})
	if err != nil {
		return res, err
	}

	s.invalidateReservation(ctx, reservation.ID, reservation.RoomID, reservation.CustomerID)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var roomID, customerID string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		roomID, customerID = current.RoomID, current.CustomerID

		if current.IsTerminal() {
			return failure.InvalidState(fmt.Sprintf("reservation is %s and can no longer be modified", current.Status)) // nolint:wrapcheck
		}

		fields := map[string]any{
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		checkIn, checkOut := current.CheckIn, current.CheckOut

		if req.ChangesDates() {
			checkInStr := req.CheckIn
			if checkInStr == constant.Empty {
				checkInStr = current.CheckIn.Format(constant.DateOnlyFormat)
			}

			checkOutStr := req.CheckOut
			if checkOutStr == constant.Empty {
				checkOutStr = current.CheckOut.Format(constant.DateOnlyFormat)
			}

			checkIn, checkOut, err = dto.ParseStayRange(checkInStr, checkOutStr)
			if err != nil {
				return err
			}

			fields[model.FieldCheckIn] = checkIn
			fields[model.FieldCheckOut] = checkOut
		}

		room, err := s.lockRoom(ctx, tx, current.RoomID)
		if err != nil {
			return err
		}

		if req.Guests != nil {
			if *req.Guests > room.Capacity {
				return failure.BadRequestFromString("guests exceed room capacity") // nolint:wrapcheck
			}

			fields[model.FieldGuests] = *req.Guests
		}

		if req.Notes != nil {
			fields[model.FieldNotes] = *req.Notes
		}

		if req.ChangesDates() {
			overlap, err := s.repo.ExistOverlappingTx(ctx, tx, current.RoomID, checkIn, checkOut, current.ID)
			if err != nil {
				return err
			}

			if overlap {
				return failure.Conflict("room is already reserved for the requested dates") // nolint:wrapcheck
			}

			nights := int(checkOut.Sub(checkIn).Hours() / 24)
			fields[model.FieldTotalPrice] = float64(nights) * room.PricePerNight
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return err
	}

	s.invalidateReservation(ctx, id, roomID, customerID)

	return nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var roomID, customerID string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		roomID, customerID = current.RoomID, current.CustomerID

		fields := map[string]any{
			model.FieldPaymentStatus: req.PaymentStatus,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return err
	}

	s.invalidateReservation(ctx, id, roomID, customerID)

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var roomID, customerID string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		roomID, customerID = current.RoomID, current.CustomerID

		if current.Status != model.StatusConfirmed {
			return failure.InvalidState(fmt.Sprintf("cannot check in a %s reservation", current.Status)) // nolint:wrapcheck
		}

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCheckedIn,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		return s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		return err
	}

	s.invalidateReservation(ctx, id, roomID, customerID)

	return nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var roomID, customerID string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		roomID, customerID = current.RoomID, current.CustomerID

		if current.Status != model.StatusCheckedIn {
			return failure.InvalidState(fmt.Sprintf("cannot check out a %s reservation", current.Status)) // nolint:wrapcheck
		}

		finalPrice := current.TotalPrice
		if req.FinalPrice != nil {
			finalPrice = *req.FinalPrice
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if finalPrice != current.TotalPrice {
			fields[model.FieldTotalPrice] = finalPrice
		}

		err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		err = s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    roomModel.StatusDirty,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return err
		}

		return s.customerRepo.IncrementStatsTx(ctx, tx, current.CustomerID, finalPrice, user)
	})
	if err != nil {
		return err
	}

	s.invalidateReservation(ctx, id, roomID, customerID)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var roomID, customerID string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		roomID, customerID = current.RoomID, current.CustomerID

		if current.IsTerminal() {
			return failure.InvalidState(fmt.Sprintf("cannot cancel a %s reservation", current.Status)) // nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if current.PaymentStatus == model.PaymentPaid {
			fields[model.FieldPaymentStatus] = model.PaymentRefunded
		}

		err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		// A cancelled in-house stay frees the room without a housekeeping pass.
		if current.Status == model.StatusCheckedIn {
			return s.roomRepo.UpdateTx(ctx, tx, map[string]any{
				roomModel.FieldStatus:    roomModel.StatusAvailable,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName))
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateReservation(ctx, id, roomID, customerID)

	return nil
}

func (s *serviceImpl) ListByDateRange(ctx context.Context, from, to time.Time) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !to.After(from) {
		return res, failure.BadRequestFromString("to must be after from") // nolint:wrapcheck
	}

	// Only active stays fully contained in the window.
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn},
		gDto.Filter{Field: model.FieldCheckIn, Table: model.TableName, Value: from, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{Field: model.FieldCheckOut, Table: model.TableName, Value: to, Operator: gDto.FilterOperatorLessEq},
	}}

	return s.list(ctx, filter)
}

func (s *serviceImpl) ListUpcoming(ctx context.Context, days int) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUpcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	if days <= 0 {
		days = constant.DefaultUpcomingDays
	}

	today := timezone.Today()

	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn},
		gDto.Filter{ArgName: "check_in_from", Field: model.FieldCheckIn, Table: model.TableName, Value: today, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{ArgName: "check_in_to", Field: model.FieldCheckIn, Table: model.TableName, Value: today.AddDate(0, 0, days), Operator: gDto.FilterOperatorLess},
	}}

	return s.list(ctx, filter)
}

func (s *serviceImpl) ListTodayCheckIns(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTodayCheckIns")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldCheckIn, Table: model.TableName, Value: timezone.Today(), Operator: gDto.FilterOperatorEq},
	}}

	return s.list(ctx, filter)
}

func (s *serviceImpl) ListTodayCheckOuts(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTodayCheckOuts")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.StatusCheckedIn, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldCheckOut, Table: model.TableName, Value: timezone.Today(), Operator: gDto.FilterOperatorEq},
	}}

	return s.list(ctx, filter)
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCheckIn,
		SortDir: "ASC",
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations")

		return res, fmt.Errorf("failed to list reservations: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

func (s *serviceImpl) lockReservation(ctx context.Context, tx *sqlx.Tx, id string) (model.Reservation, error) {
	current, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to lock reservation")

		return current, err
	}

	if current.ID == constant.Empty {
		return current, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return current, nil
}

func (s *serviceImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to lock room")

		return room, err
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, id, roomID, customerID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)

		if roomID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomID)); err != nil {
				log.Error().Err(err).Msg("failed to delete room cache")
			}
		}

		if customerID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, customerID)); err != nil {
				log.Error().Err(err).Msg("failed to delete customer cache")
			}
		}
	}()
}
