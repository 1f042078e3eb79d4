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
	customerMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model/dto"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/customer/service"
	reservationMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
)

const testCustomerID = "0b54c9dd-45ad-4a79-9cf0-3ef2c4a7d6c1"

type fixture struct {
	repo            *customerMocks.MockCustomer
	reservationRepo *reservationMocks.MockReservation
	cache           *cacheMocks.MockRedisCache
	svc             service.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:            customerMocks.NewMockCustomer(ctrl),
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

func testCustomer() model.Customer {
	return model.Customer{
		ID:          testCustomerID,
		FirstName:   "Ayşe",
		LastName:    "Yılmaz",
		Email:       "ayse@example.com",
		Phone:       "+90 555 000 0000",
		Nationality: "TR",
	}
}

func TestCustomerService_Create(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		var inserted model.Customer

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Customer) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), dto.CreateCustomerRequest{
			FirstName: "Ayşe",
			LastName:  "Yılmaz",
			Phone:     "+90 555 000 0000",
			Email:     "ayse@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, "ayse@example.com", inserted.Email)
	})

	t.Run("skips the email check when no email is given", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Create(context.Background(), dto.CreateCustomerRequest{
			FirstName: "Mehmet",
			LastName:  "Demir",
			Phone:     "+90 555 222 2222",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(context.Background(), dto.CreateCustomerRequest{
			FirstName: "Ayşe",
			LastName:  "Yılmaz",
			Phone:     "+90 555 000 0000",
			Email:     "ayse@example.com",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("returns a customer by id", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testCustomer(), nil)

		res, err := f.svc.Get(context.Background(), testCustomerID)
		require.NoError(t, err)
		assert.Equal(t, "ayse@example.com", res.Email)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		_, err := f.svc.Get(context.Background(), testCustomerID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_Update(t *testing.T) {
	t.Run("checks email uniqueness when the email changes", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testCustomer(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Update(context.Background(), dto.UpdateCustomerRequest{
			Email: "taken@example.com",
		}, testCustomerID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("updates without an email check when the email is unchanged", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testCustomer(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdateCustomerRequest{
			Email: "ayse@example.com",
			Phone: "+90 555 111 1111",
		}, testCustomerID)
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown customer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateCustomerRequest{}, testCustomerID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_Delete(t *testing.T) {
	t.Run("refuses to delete a customer with reservations", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Delete(context.Background(), testCustomerID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("deletes a customer without reservations", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), testCustomerID)
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown customer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), testCustomerID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
