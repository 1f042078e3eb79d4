package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/otel/mocks"
	customerMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/mocks"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/dashboard/service"
	reservationMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/mocks"
	reservationModel "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	roomMocks "github.com/yamanfurkan353-eng/lumina/internal/domains/room/mocks"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	cacheMocks "github.com/yamanfurkan353-eng/lumina/shared/cache/mocks"
)

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRoomRepo, mockReservationRepo, mockCustomerRepo, &config.Config{}, mockCache, mocks.NewOtel())

	mockRoomRepo.EXPECT().CountByStatus(gomock.Any()).Return([]roomModel.StatusCount{
		{Status: roomModel.StatusAvailable, Count: 6},
		{Status: roomModel.StatusOccupied, Count: 3},
		{Status: roomModel.StatusMaintenance, Count: 1},
	}, nil)

	// today check-ins, today check-outs, active, upcoming week, month
	gomock.InOrder(
		mockReservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
		mockReservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil),
		mockReservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil),
		mockReservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
		mockReservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil),
	)

	mockCustomerRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(42, nil)

	mockReservationRepo.EXPECT().
		RevenueStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reservationModel.RevenueSummary{
			TotalReservations: 9,
			TotalRevenue:      12500,
			AvgPrice:          1388.89,
		}, nil)

	mockReservationRepo.EXPECT().
		MonthlyRevenue(gomock.Any(), gomock.Any()).
		Return([]reservationModel.RevenueBucket{
			{Month: "2026-08", Revenue: 12500, Reservations: 9},
		}, nil)

	res, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, res.Rooms.Total)
	assert.Equal(t, 6, res.Rooms.ReadyToSell)
	assert.Equal(t, 1, res.Rooms.OutOfOrder)
	assert.InEpsilon(t, 0.3, res.Rooms.Occupancy, 0.001)

	assert.Equal(t, 2, res.TodayCheckIns)
	assert.Equal(t, 1, res.TodayCheckOuts)
	assert.Equal(t, 5, res.ActiveReservations)
	assert.Equal(t, 4, res.UpcomingWeek)
	assert.Equal(t, 7, res.ReservationsInMonth)
	assert.Equal(t, 42, res.TotalCustomers)

	assert.InEpsilon(t, 12500, res.Revenue.ThisMonth, 0.001)
	assert.Equal(t, 9, res.Revenue.Reservations)
	assert.InEpsilon(t, 1388.89, res.Revenue.AveragePrice, 0.001)

	require.Len(t, res.MonthlyRevenue, 1)
	assert.Equal(t, "2026-08", res.MonthlyRevenue[0].Month)
}
