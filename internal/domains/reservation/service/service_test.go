package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel/mocks"
	postgresMocks "github.com/yamanfurkan353-eng/lumina/infras/postgres/mocks"
	customerMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/mocks"
	reservationMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/service"
	roomMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/room/mocks"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

const (
	testCustomerID    = "7b5a1f9e-2c3d-4e5f-8a9b-0c1d2e3f4a5b"
	testRoomID        = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
	testReservationID = "9f8e7d6c-5b4a-4f2e-8d0c-9b8a7f6e5d4c"
)

type fixture struct {
	repo         *reservationMocks.MockReservation
	roomRepo     *roomMocks.MockRoom
	customerRepo *customerMocks.MockCustomer
	transactor   *postgresMocks.MockTransactor
	cache        *cacheMocks.MockRedisCache
	svc          service.Reservation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         reservationMocks.NewMockReservation(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		transactor:   postgresMocks.NewMockTransactor(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs asynchronously after mutations.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.roomRepo, f.customerRepo, f.transactor, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

// runTx makes the transactor execute the closure directly. Repository mocks
// accept the nil tx.
func (f *fixture) runTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func testRoom() roomModel.Room {
	return roomModel.Room{
		ID:            testRoomID,
		RoomNumber:    "204",
		Type:          roomModel.TypeDouble,
		Status:        roomModel.StatusAvailable,
		PricePerNight: 1000,
		Capacity:      2,
	}
}

func testReservation(status string) model.Reservation {
	checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-10")
	checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-13")

	return model.Reservation{
		ID:            testReservationID,
		CustomerID:    testCustomerID,
		RoomID:        testRoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		Status:        status,
		TotalPrice:    3000,
		PaymentStatus: model.PaymentPending,
	}
}

func TestReservationService_Create(t *testing.T) {
	validReq := dto.CreateReservationRequest{
		CustomerID: testCustomerID,
		RoomID:     testRoomID,
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-13",
		Guests:     2,
	}

	t.Run("books the room and prices the stay per night", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.runTx()
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRoom(), nil)
		f.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), testRoomID, gomock.Any(), gomock.Any(), constant.Empty).
			Return(false, nil)

		var inserted model.Reservation
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m model.Reservation) error {
				inserted = m

				return nil
			})

		res, err := f.svc.Create(context.Background(), validReq)
		require.NoError(t, err)

		// 3 nights at 1000 per night
		assert.Equal(t, float64(3000), inserted.TotalPrice)
		assert.Equal(t, model.StatusConfirmed, inserted.Status)
		assert.Equal(t, model.PaymentPending, inserted.PaymentStatus)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, float64(3000), res.TotalPrice)
	})

	t.Run("rejects overlapping reservations", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.runTx()
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRoom(), nil)
		f.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), testRoomID, gomock.Any(), gomock.Any(), constant.Empty).
			Return(true, nil)

		_, err := f.svc.Create(context.Background(), validReq)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("rejects guests above room capacity", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.Guests = 4

		f.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.runTx()
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRoom(), nil)

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects unknown customers", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), validReq)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("rejects unknown rooms", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.runTx()
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(context.Background(), validReq)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("rejects an inverted stay range", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.CheckIn = "2026-09-13"
		req.CheckOut = "2026-09-10"

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_CheckIn(t *testing.T) {
	t.Run("moves a confirmed reservation in-house and occupies the room", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusConfirmed), nil)

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])

				return nil
			})
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

				return nil
			})

		err := f.svc.CheckIn(context.Background(), testReservationID)
		assert.NoError(t, err)
	})

	t.Run("rejects a second check-in", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedIn), nil)

		err := f.svc.CheckIn(context.Background(), testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("rejects checking in a cancelled reservation", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCancelled), nil)

		err := f.svc.CheckIn(context.Background(), testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("returns not found for a missing reservation", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.CheckIn(context.Background(), testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReservationService_CheckOut(t *testing.T) {
	t.Run("completes the stay and updates guest statistics", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedIn), nil)

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])

				return nil
			})
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusDirty, fields[roomModel.FieldStatus])

				return nil
			})
		f.customerRepo.EXPECT().
			IncrementStatsTx(gomock.Any(), gomock.Any(), testCustomerID, float64(3000), gomock.Any()).
			Return(nil)

		err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{}, testReservationID)
		assert.NoError(t, err)
	})

	t.Run("applies an overridden final price to the bill and statistics", func(t *testing.T) {
		f := newFixture(t)

		finalPrice := 3500.0

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedIn), nil)

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
				assert.Equal(t, finalPrice, fields[model.FieldTotalPrice])

				return nil
			})
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.customerRepo.EXPECT().
			IncrementStatsTx(gomock.Any(), gomock.Any(), testCustomerID, finalPrice, gomock.Any()).
			Return(nil)

		err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{FinalPrice: &finalPrice}, testReservationID)
		assert.NoError(t, err)
	})

	t.Run("rejects checking out a reservation that is not in-house", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusConfirmed), nil)

		err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{}, testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("refunds a paid reservation on cancellation", func(t *testing.T) {
		f := newFixture(t)

		reservation := testReservation(model.StatusConfirmed)
		reservation.PaymentStatus = model.PaymentPaid

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
				assert.Equal(t, model.PaymentRefunded, fields[model.FieldPaymentStatus])

				return nil
			})

		err := f.svc.Cancel(context.Background(), testReservationID)
		assert.NoError(t, err)
	})

	t.Run("frees the room when cancelling an in-house stay", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedIn), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		err := f.svc.Cancel(context.Background(), testReservationID)
		assert.NoError(t, err)
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCancelled), nil)

		err := f.svc.Cancel(context.Background(), testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("rejects cancelling a completed stay", func(t *testing.T) {
		f := newFixture(t)

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedOut), nil)

		err := f.svc.Cancel(context.Background(), testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestReservationService_Update(t *testing.T) {
	t.Run("recomputes the price when the stay range changes", func(t *testing.T) {
		f := newFixture(t)

		newCheckOut := "2026-09-15"
		req := dto.UpdateReservationRequest{CheckOut: newCheckOut}

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusConfirmed), nil)
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRoom(), nil)
		f.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), testRoomID, gomock.Any(), gomock.Any(), testReservationID).
			Return(false, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				// 5 nights at 1000 per night
				assert.Equal(t, float64(5000), fields[model.FieldTotalPrice])

				return nil
			})

		err := f.svc.Update(context.Background(), req, testReservationID)
		assert.NoError(t, err)
	})

	t.Run("rejects date changes that collide with another reservation", func(t *testing.T) {
		f := newFixture(t)

		req := dto.UpdateReservationRequest{CheckOut: "2026-09-20"}

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusConfirmed), nil)
		f.roomRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRoom(), nil)
		f.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), testRoomID, gomock.Any(), gomock.Any(), testReservationID).
			Return(true, nil)

		err := f.svc.Update(context.Background(), req, testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("rejects modifying a terminal reservation", func(t *testing.T) {
		f := newFixture(t)

		notes := "late arrival"
		req := dto.UpdateReservationRequest{Notes: &notes}

		f.runTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReservation(model.StatusCheckedOut), nil)

		err := f.svc.Update(context.Background(), req, testReservationID)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestReservationService_ListByDateRange(t *testing.T) {
	t.Run("rejects an inverted window", func(t *testing.T) {
		f := newFixture(t)

		from, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-20")
		to, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-10")

		_, err := f.svc.ListByDateRange(context.Background(), from, to)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("queries active stays contained in the window", func(t *testing.T) {
		f := newFixture(t)

		from, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-01")
		to, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-30")

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				operators := filterOperators(t, filter)

				assert.Equal(t, gDto.FilterOperatorIn, operators[model.FieldStatus])
				assert.Equal(t, gDto.FilterOperatorGreaterEq, operators[model.FieldCheckIn])
				assert.Equal(t, gDto.FilterOperatorLessEq, operators[model.FieldCheckOut])

				return []model.Reservation{testReservation(model.StatusConfirmed)}, nil
			})

		res, err := f.svc.ListByDateRange(context.Background(), from, to)
		require.NoError(t, err)
		assert.Len(t, res.Reservations, 1)
	})
}

func TestReservationService_ListUpcoming(t *testing.T) {
	t.Run("includes in-house stays alongside confirmed ones", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				operators := filterOperators(t, filter)

				assert.Equal(t, gDto.FilterOperatorIn, operators[model.FieldStatus])

				for _, raw := range filter.Filters {
					if fl, ok := raw.(gDto.Filter); ok && fl.Field == model.FieldStatus {
						assert.Equal(t, model.ActiveStatuses, fl.Value)
					}
				}

				return []model.Reservation{testReservation(model.StatusCheckedIn)}, nil
			})

		res, err := f.svc.ListUpcoming(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, res.Reservations, 1)
	})
}

// filterOperators flattens a filter group into a field → operator map.
func filterOperators(t *testing.T, group gDto.FilterGroup) map[string]string {
	t.Helper()

	operators := make(map[string]string)

	for _, raw := range group.Filters {
		fl, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		operators[fl.Field] = fl.Operator
	}

	return operators
}
