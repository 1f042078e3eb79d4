package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/s3"
	customerModel "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	customerRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/repository"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/export/model/dto"
	reservationModel "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	reservationRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/repository"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	roomRepo "github.com/yamanfurkan353-eng/lumina/internal/domains/room/repository"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
)

const exportDirectory = "exports"

type Export interface {
	ExportReservations(ctx context.Context, from, to time.Time) (dto.ExportResponse, error)
	ExportCustomers(ctx context.Context) (dto.ExportResponse, error)
	ExportRooms(ctx context.Context) (dto.ExportResponse, error)
}

type serviceImpl struct {
	reservationRepo reservationRepo.Reservation
	customerRepo    customerRepo.Customer
	roomRepo        roomRepo.Room
	cfg             *config.Config
	otel            otel.Otel
	s3              s3.S3
}

func New(reservationRepo reservationRepo.Reservation, customerRepo customerRepo.Customer, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel, s3 s3.S3) Export {
	return &serviceImpl{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		roomRepo:        roomRepo,
		cfg:             cfg,
		otel:            otel,
		s3:              s3,
	}
}

func (s *serviceImpl) ExportReservations(ctx context.Context, from, to time.Time) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !to.After(from) {
		return res, failure.BadRequestFromString("to must be after from") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: reservationModel.FieldCheckIn, Table: reservationModel.TableName, Value: to, Operator: gDto.FilterOperatorLess},
		gDto.Filter{Field: reservationModel.FieldCheckOut, Table: reservationModel.TableName, Value: from, Operator: gDto.FilterOperatorGreater},
	}}

	params := gDto.QueryParams{
		SortBy:  reservationModel.TableName + "." + reservationModel.FieldCheckIn,
		SortDir: "ASC",
	}

	reservations, err := s.reservationRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for export")

		return res, fmt.Errorf("failed to load reservations for export: %w", err)
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{"id", "customer", "email", "room", "check_in", "check_out", "nights", "guests", "status", "total_price", "payment_status"}
	if err = writer.Write(header); err != nil {
		return res, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range reservations {
		record := []string{
			r.ID,
			r.CustomerFirstName + " " + r.CustomerLastName,
			r.CustomerEmail,
			r.RoomNumber,
			r.CheckIn.Format(constant.DateOnlyFormat),
			r.CheckOut.Format(constant.DateOnlyFormat),
			strconv.Itoa(r.Nights()),
			strconv.Itoa(r.Guests),
			r.Status,
			strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
			r.PaymentStatus,
		}

		if err = writer.Write(record); err != nil {
			return res, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return res, fmt.Errorf("failed to flush export: %w", err)
	}

	return s.upload(ctx, "reservations", buf.Bytes(), len(reservations))
}

func (s *serviceImpl) ExportCustomers(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  customerModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	customers, err := s.customerRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load customers for export")

		return res, fmt.Errorf("failed to load customers for export: %w", err)
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{"id", "first_name", "last_name", "email", "phone", "nationality", "total_stays", "total_spent"}
	if err = writer.Write(header); err != nil {
		return res, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, c := range customers {
		record := []string{
			c.ID,
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Nationality,
			strconv.Itoa(c.TotalStays),
			strconv.FormatFloat(c.TotalSpent, 'f', 2, 64),
		}

		if err = writer.Write(record); err != nil {
			return res, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return res, fmt.Errorf("failed to flush export: %w", err)
	}

	return s.upload(ctx, "customers", buf.Bytes(), len(customers))
}

func (s *serviceImpl) ExportRooms(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  roomModel.TableName + "." + roomModel.FieldRoomNumber,
		SortDir: "ASC",
	}

	rooms, err := s.roomRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms for export")

		return res, fmt.Errorf("failed to load rooms for export: %w", err)
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{"id", "room_number", "floor", "type", "status", "price_per_night", "capacity", "amenities"}
	if err = writer.Write(header); err != nil {
		return res, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range rooms {
		record := []string{
			r.ID,
			r.RoomNumber,
			strconv.Itoa(r.Floor),
			r.Type,
			r.Status,
			strconv.FormatFloat(r.PricePerNight, 'f', 2, 64),
			strconv.Itoa(r.Capacity),
			strings.Join(r.Amenities, "|"),
		}

		if err = writer.Write(record); err != nil {
			return res, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return res, fmt.Errorf("failed to flush export: %w", err)
	}

	return s.upload(ctx, "rooms", buf.Bytes(), len(rooms))
}

func (s *serviceImpl) upload(ctx context.Context, prefix string, data []byte, rows int) (res dto.ExportResponse, err error) {
	fileName := fmt.Sprintf("%s-%s.csv", prefix, uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, exportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload export to S3")

		return res, fmt.Errorf("failed to upload export: %w", err)
	}

	return dto.ExportResponse{
		URL:      url,
		FileName: fileName,
		Rows:     rows,
	}, nil
}
