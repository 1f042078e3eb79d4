package export

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/export/service"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
	"github.com/yamanfurkan353-eng/lumina/transport/http/response"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exports", func(routerGroup chi.Router) {
		routerGroup.Get("/reservations", handler.ExportReservations)
		routerGroup.Get("/customers", handler.ExportCustomers)
		routerGroup.Get("/rooms", handler.ExportRooms)
	})
}

// ExportReservations generates a CSV export of reservations in a date window.
// @Summary Export reservations
// @Description Generate a CSV file of reservations overlapping the given window and return its download URL.
// @Tags Export
// @Accept json
// @Produce json
// @Param from query string true "Window start date (YYYY-MM-DD)"
// @Param to query string true "Window end date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ExportResponse] "Export file details"
// @Failure 400 {object} response.Error
// @Router /v1/exports/reservations [get]
// @Security BearerAuth
func (handler *Handler) ExportReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReservations")
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

	res, err := handler.service.ExportReservations(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export reservations")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservations exported successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ExportCustomers generates a CSV export of all guest profiles.
// @Summary Export customers
// @Description Generate a CSV file of all guest profiles and return its download URL.
// @Tags Export
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ExportResponse] "Export file details"
// @Router /v1/exports/customers [get]
// @Security BearerAuth
func (handler *Handler) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCustomers")
	defer scope.End()

	res, err := handler.service.ExportCustomers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export customers")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customers exported successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ExportRooms generates a CSV export of the room inventory.
// @Summary Export rooms
// @Description Generate a CSV file of the full room inventory and return its download URL.
// @Tags Export
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ExportResponse] "Export file details"
// @Router /v1/exports/rooms [get]
// @Security BearerAuth
func (handler *Handler) ExportRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRooms")
	defer scope.End()

	res, err := handler.service.ExportRooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export rooms")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rooms exported successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
