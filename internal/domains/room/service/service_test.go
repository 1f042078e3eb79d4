package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel/mocks"
	reservationMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/mocks"
	roomMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/room/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/room/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/room/service"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

const testRoomID = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"

type fixture struct {
	repo            *roomMocks.MockRoom
	reservationRepo *reservationMocks.MockReservation
	cache           *cacheMocks.MockRedisCache
	svc             service.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:            roomMocks.NewMockRoom(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.reservationRepo, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber:    "204",
		Floor:         2,
		Type:          model.TypeDouble,
		PricePerNight: 1000,
		Capacity:      2,
	}

	t.Run("creates a room as available", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Room) error {
				assert.Equal(t, model.StatusAvailable, m.Status)
				assert.Equal(t, "204", m.RoomNumber)

				return nil
			})

		err := f.svc.Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects a duplicate room number", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("returns not found for an unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), testRoomID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns the room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:         testRoomID,
			RoomNumber: "204",
			Status:     model.StatusAvailable,
		}, nil)

		res, err := f.svc.Get(context.Background(), testRoomID)
		require.NoError(t, err)
		assert.Equal(t, "204", res.RoomNumber)
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	t.Run("updates the room status", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance}, testRoomID)
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: model.StatusDirty}, testRoomID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("refuses to delete a room with reservations", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Delete(context.Background(), testRoomID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("deletes an unreferenced room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), testRoomID)
		assert.NoError(t, err)
	})
}

func TestRoomService_ListAvailable(t *testing.T) {
	t.Run("rejects an inverted stay range", func(t *testing.T) {
		f := newFixture(t)

		checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-13")
		checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-10")

		_, err := f.svc.ListAvailable(context.Background(), checkIn, checkOut)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("lists free rooms for the window", func(t *testing.T) {
		f := newFixture(t)

		checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-10")
		checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-13")

		f.repo.EXPECT().
			ListAvailable(gomock.Any(), checkIn, checkOut).
			Return([]model.Room{{ID: testRoomID, RoomNumber: "204", Status: model.StatusAvailable}}, nil)

		res, err := f.svc.ListAvailable(context.Background(), checkIn, checkOut)
		require.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
	})
}
