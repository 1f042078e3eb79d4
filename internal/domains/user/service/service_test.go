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
	userMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/user/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/user/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/user/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/user/service"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
)

const testUserID = "f3a1b6d2-8c4e-4b9a-a7d5-1e2f3a4b5c6d"

func strPtr(s string) *string {
	return &s
}

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func TestUserService_Create(t *testing.T) {
	t.Run("creates a user with a hashed password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		var inserted model.User

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.User) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), dto.CreateUserRequest{
			Email:    "new@hotel.test",
			Password: "plainpassword",
			Name:     "New Staff",
			Role:     constant.RoleManager,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, constant.RoleManager, inserted.Role)
		assert.NotEqual(t, "plainpassword", inserted.Password)
	})

	t.Run("defaults the role to reception", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		var inserted model.User

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.User) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), dto.CreateUserRequest{
			Email:    "desk@hotel.test",
			Password: "plainpassword",
			Name:     "Desk Staff",
		})
		require.NoError(t, err)
		assert.Equal(t, constant.RoleReception, inserted.Role)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(context.Background(), dto.CreateUserRequest{
			Email:    "taken@hotel.test",
			Password: "plainpassword",
			Name:     "Dup",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("rejects an empty update", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{}, testUserID)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Name: strPtr("Renamed")}, testUserID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("updates an existing user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Name: strPtr("Renamed")}, testUserID)
		assert.NoError(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("refuses self-deletion", func(t *testing.T) {
		f := newFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

		err := f.svc.Delete(ctx, testUserID)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deletes another user", func(t *testing.T) {
		f := newFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "another-admin-id")

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(ctx, testUserID)
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown user", func(t *testing.T) {
		f := newFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "another-admin-id")

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(ctx, testUserID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
