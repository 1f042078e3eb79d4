package reservation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/service"
	"github.com/yamanfurkan353-eng/lumina/shared/audit"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
	"github.com/yamanfurkan353-eng/lumina/shared/validator"
	"github.com/yamanfurkan353-eng/lumina/transport/http/response"
)

const auditEntity = "reservation"

type Handler struct {
	service service.Reservation
	audit   audit.Publisher
	otel    otel.Otel
}

func New(service service.Reservation, audit audit.Publisher, otel otel.Otel) Handler {
	return Handler{
		service: service,
		audit:   audit,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/upcoming", handler.GetUpcoming)
		routerGroup.Get("/today/check-ins", handler.GetTodayCheckIns)
		routerGroup.Get("/today/check-outs", handler.GetTodayCheckOuts)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Patch("/{id}/payment", handler.UpdatePaymentStatus)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// CreateReservation books a room for a customer.
// @Summary Create a new reservation
// @Description Create a new reservation for a customer and room over the requested stay window.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.created",
		Entity:   auditEntity,
		EntityID: res.ID,
		ActorID:  user,
	})

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations retrieves all reservations based on query parameters.
// @Summary Get all reservations
// @Description Retrieve all reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (confirmed, checked_in, checked_out, cancelled)"
// @Param payment_status query string false "Filter by payment status (pending, paid, refunded)"
// @Param room_id query string false "Filter by room ID"
// @Param customer_id query string false "Filter by customer ID"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus)
	roomID := r.URL.Query().Get(model.FieldRoomID)
	customerID := r.URL.Query().Get(model.FieldCustomerID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetCalendar retrieves active reservations within a date window.
// @Summary Get reservations for a date range
// @Description Retrieve active reservations whose stay falls within the given window, ordered by check-in date.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param from query string true "Window start date (YYYY-MM-DD)"
// @Param to query string true "Window end date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservations in range"
// @Failure 400 {object} response.Error
// @Router /v1/reservations/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	from, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamFrom))
	if err != nil {
		err = failure.BadRequestFromString("from must be a valid date in YYYY-MM-DD format")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	to, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamTo))
	if err != nil {
		err = failure.BadRequestFromString("to must be a valid date in YYYY-MM-DD format")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.ListByDateRange(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by date range")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully for date range")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetUpcoming retrieves reservations checking in within the next days.
// @Summary Get upcoming reservations
// @Description Retrieve active reservations checking in within the next N days (default 7).
// @Tags Reservation
// @Accept json
// @Produce json
// @Param days query int false "Look-ahead window in days"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Upcoming reservations"
// @Failure 400 {object} response.Error
// @Router /v1/reservations/upcoming [get]
// @Security BearerAuth
func (handler *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcoming")
	defer scope.End()

	days := 0

	if raw := r.URL.Query().Get(constant.RequestParamDays); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			err = failure.BadRequestFromString("days must be a positive integer")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		days = parsed
	}

	reservations, err := handler.service.ListUpcoming(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetTodayCheckIns retrieves reservations due to check in today.
// @Summary Get today's check-ins
// @Description Retrieve confirmed reservations whose check-in date is today.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Today's check-ins"
// @Router /v1/reservations/today/check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetTodayCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckIns")
	defer scope.End()

	reservations, err := handler.service.ListTodayCheckIns(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's check-ins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Today's check-ins retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetTodayCheckOuts retrieves reservations due to check out today.
// @Summary Get today's check-outs
// @Description Retrieve in-house reservations whose check-out date is today.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Today's check-outs"
// @Router /v1/reservations/today/check-outs [get]
// @Security BearerAuth
func (handler *Handler) GetTodayCheckOuts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckOuts")
	defer scope.End()

	reservations, err := handler.service.ListTodayCheckOuts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's check-outs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Today's check-outs retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation updates an existing reservation by its ID.
// @Summary Update a reservation by ID
// @Description Update the stay dates, guest count or notes of an active reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Message "Reservation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.updated",
		Entity:   auditEntity,
		EntityID: id,
		ActorID:  user,
	})

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

// UpdatePaymentStatus changes the payment status of a reservation.
// @Summary Update reservation payment status
// @Description Change the payment status of a reservation (pending, paid, refunded).
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdatePaymentStatusRequest true "Update Payment Status Request"
// @Success 200 {object} response.Message "Payment status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePaymentStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment status updated successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.payment_updated",
		Entity:   auditEntity,
		EntityID: id,
		ActorID:  user,
		Detail:   req.PaymentStatus,
	})

	response.WithMessage(w, http.StatusOK, "Payment status updated successfully")
}

// CheckIn marks a confirmed reservation as checked in.
// @Summary Check in a reservation
// @Description Mark a confirmed reservation as checked in and the room as occupied.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation checked in successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CheckIn(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation checked in successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.checked_in",
		Entity:   auditEntity,
		EntityID: id,
		ActorID:  user,
	})

	response.WithMessage(w, http.StatusOK, "Reservation checked in successfully")
}

// CheckOut marks an in-house reservation as checked out.
// @Summary Check out a reservation
// @Description Mark an in-house reservation as checked out, the room as dirty, and update guest stay statistics.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.CheckOutRequest false "Optional final price override"
// @Success 200 {object} response.Message "Reservation checked out successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CheckOutRequest{}

	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	if err := handler.service.CheckOut(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation checked out successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.checked_out",
		Entity:   auditEntity,
		EntityID: id,
		ActorID:  user,
	})

	response.WithMessage(w, http.StatusOK, "Reservation checked out successfully")
}

// Cancel cancels a non-terminal reservation.
// @Summary Cancel a reservation
// @Description Cancel a reservation that has not been checked out. Paid reservations are marked refunded.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation cancelled successfully by user " + user)

	handler.audit.Publish(ctx, audit.Event{
		Action:   "reservation.cancelled",
		Entity:   auditEntity,
		EntityID: id,
		ActorID:  user,
	})

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}
