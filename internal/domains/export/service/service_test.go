package service_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel/mocks"
	s3Mocks "github.com/yamanfurkan353-eng/lumina/infras/s3/mocks"
	customerMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/mocks"
	customerModel "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/export/service"
	reservationMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/mocks"
	reservationModel "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	roomMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/room/mocks"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

type fixture struct {
	reservationRepo *reservationMocks.MockReservation
	customerRepo    *customerMocks.MockCustomer
	roomRepo        *roomMocks.MockRoom
	s3              *s3Mocks.MockS3
	svc             service.Export
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		customerRepo:    customerMocks.NewMockCustomer(ctrl),
		roomRepo:        roomMocks.NewMockRoom(ctrl),
		s3:              s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.reservationRepo, f.customerRepo, f.roomRepo, &config.Config{}, mocks.NewOtel(), f.s3)

	return f
}

func stay(t *testing.T, from, to string) (time.Time, time.Time) {
	t.Helper()

	checkIn, err := timezone.Parse("2006-01-02", from)
	require.NoError(t, err)

	checkOut, err := timezone.Parse("2006-01-02", to)
	require.NoError(t, err)

	return checkIn, checkOut
}

func TestExportService_ExportReservations(t *testing.T) {
	t.Run("writes a csv and uploads it", func(t *testing.T) {
		f := newFixture(t)

		checkIn, checkOut := stay(t, "2026-09-10", "2026-09-13")

		f.reservationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reservationModel.Reservation{
				{
					ID:                "res-1",
					CheckIn:           checkIn,
					CheckOut:          checkOut,
					Guests:            2,
					Status:            reservationModel.StatusConfirmed,
					TotalPrice:        3000,
					PaymentStatus:     reservationModel.PaymentPaid,
					CustomerFirstName: "Ayşe",
					CustomerLastName:  "Yılmaz",
					CustomerEmail:     "ayse@example.com",
					RoomNumber:        "204",
				},
			}, nil)

		var uploaded []byte

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), "exports", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
				uploaded = data

				return "https://bucket.example.com/exports/" + fileName, nil
			})

		from, to := stay(t, "2026-09-01", "2026-09-30")

		res, err := f.svc.ExportReservations(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Rows)
		assert.Contains(t, res.URL, "exports/")
		assert.True(t, strings.HasSuffix(res.FileName, ".csv"))

		records, err := csv.NewReader(strings.NewReader(string(uploaded))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "id", records[0][0])
		assert.Equal(t, "Ayşe Yılmaz", records[1][1])
		assert.Equal(t, "3", records[1][6])
		assert.Equal(t, "3000.00", records[1][9])
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		f := newFixture(t)

		from, to := stay(t, "2026-09-30", "2026-09-01")

		_, err := f.svc.ExportReservations(context.Background(), from, to)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestExportService_ExportCustomers(t *testing.T) {
	f := newFixture(t)

	f.customerRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]customerModel.Customer{
			{
				ID:         "cust-1",
				FirstName:  "Ayşe",
				LastName:   "Yılmaz",
				Email:      "ayse@example.com",
				TotalStays: 3,
				TotalSpent: 9000,
			},
		}, nil)

	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), "exports", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://bucket.example.com/exports/customers.csv", nil)

	res, err := f.svc.ExportCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)
	assert.True(t, strings.HasPrefix(res.FileName, "customers-"))
}

func TestExportService_ExportRooms(t *testing.T) {
	f := newFixture(t)

	f.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{
				ID:            "room-1",
				RoomNumber:    "204",
				Floor:         2,
				Type:          roomModel.TypeDouble,
				Status:        roomModel.StatusAvailable,
				PricePerNight: 1000,
				Capacity:      2,
				Amenities:     pq.StringArray{"wifi", "tv"},
			},
		}, nil)

	var uploaded []byte

	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), "exports", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			uploaded = data

			return "https://bucket.example.com/exports/" + fileName, nil
		})

	res, err := f.svc.ExportRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)
	assert.True(t, strings.HasPrefix(res.FileName, "rooms-"))

	records, err := csv.NewReader(strings.NewReader(string(uploaded))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "204", records[1][1])
	assert.Equal(t, "1000.00", records[1][5])
	assert.Equal(t, "wifi|tv", records[1][7])
}
