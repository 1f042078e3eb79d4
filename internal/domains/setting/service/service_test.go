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
	settingMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/setting/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/setting/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/setting/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/setting/service"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
)

type fixture struct {
	repo  *settingMocks.MockSetting
	cache *cacheMocks.MockRedisCache
	svc   service.Setting
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  settingMocks.NewMockSetting(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func TestSettingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{Key: "hotel_name", Value: "Lumina Hotel"},
			{Key: "currency", Value: "USD"},
		}, nil)

	res, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lumina Hotel", res.Settings["hotel_name"])
	assert.Equal(t, "USD", res.Settings["currency"])
}

func TestSettingService_Get(t *testing.T) {
	t.Run("returns a setting by key", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Setting{Key: "check_in_time", Value: "14:00"}, nil)

		res, err := f.svc.Get(context.Background(), "check_in_time")
		require.NoError(t, err)
		assert.Equal(t, "14:00", res.Value)
	})

	t.Run("returns not found for an unknown key", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Setting{}, nil)

		_, err := f.svc.Get(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestSettingService_Upsert(t *testing.T) {
	f := newFixture(t)

	var upserted model.Setting

	f.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.Setting) error {
			upserted = m

			return nil
		})

	err := f.svc.Upsert(context.Background(), dto.UpsertSettingRequest{Value: "18"}, "tax_rate")
	require.NoError(t, err)
	assert.Equal(t, "tax_rate", upserted.Key)
	assert.Equal(t, "18", upserted.Value)
}
