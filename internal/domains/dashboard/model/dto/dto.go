package dto

import (
	reservationModel "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	roomModel "github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
)

type RoomSummary struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	Occupancy   float64        `json:"occupancy_rate"`
	OutOfOrder  int            `json:"out_of_order"`
	ReadyToSell int            `json:"ready_to_sell"`
}

func (r *RoomSummary) FromCounts(counts []roomModel.StatusCount) {
	r.ByStatus = make(map[string]int, len(counts))

	for _, c := range counts {
		r.ByStatus[c.Status] = c.Count
		r.Total += c.Count
	}

	r.OutOfOrder = r.ByStatus[roomModel.StatusMaintenance]
	r.ReadyToSell = r.ByStatus[roomModel.StatusAvailable]

	if r.Total > 0 {
		r.Occupancy = float64(r.ByStatus[roomModel.StatusOccupied]) / float64(r.Total)
	}
}

type RevenueMonth struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
}

// RevenueSummary is the current month's earned-revenue aggregate.
type RevenueSummary struct {
	ThisMonth    float64 `json:"this_month"`
	Reservations int     `json:"reservations"`
	AveragePrice float64 `json:"average_price"`
}

type DashboardResponse struct {
	Rooms               RoomSummary    `json:"rooms"`
	TodayCheckIns       int            `json:"today_check_ins"`
	TodayCheckOuts      int            `json:"today_check_outs"`
	ActiveReservations  int            `json:"active_reservations"`
	UpcomingWeek        int            `json:"upcoming_week"`
	TotalCustomers      int            `json:"total_customers"`
	Revenue             RevenueSummary `json:"revenue"`
	MonthlyRevenue      []RevenueMonth `json:"monthly_revenue"`
	ReservationsInMonth int            `json:"reservations_in_month"`
}

func (d *DashboardResponse) SetRevenue(summary reservationModel.RevenueSummary, buckets []reservationModel.RevenueBucket) {
	d.Revenue = RevenueSummary{
		ThisMonth:    summary.TotalRevenue,
		Reservations: summary.TotalReservations,
		AveragePrice: summary.AvgPrice,
	}

	d.MonthlyRevenue = make([]RevenueMonth, len(buckets))
	for i, b := range buckets {
		d.MonthlyRevenue[i] = RevenueMonth{
			Month:        b.Month,
			Revenue:      b.Revenue,
			Reservations: b.Reservations,
		}
	}
}
