package model

import (
	"time"

	"github.com/yamanfurkan353-eng/lumina/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldStatus        = "status"
	FieldTotalPrice    = "total_price"
	FieldPaymentStatus = "payment_status"
	FieldNotes         = "notes"

	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"

	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// ActiveStatuses are the states that keep a room blocked for its dates.
var ActiveStatuses = []string{StatusConfirmed, StatusCheckedIn}

type Reservation struct {
	ID            string    `db:"id"`
	CustomerID    string    `db:"customer_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Guests        int       `db:"guests"`
	Status        string    `db:"status"`
	TotalPrice    float64   `db:"total_price"`
	PaymentStatus string    `db:"payment_status"`
	Notes         string    `db:"notes"`

	CustomerFirstName string `db:"customer_first_name" table:"customers" column:"first_name"`
	CustomerLastName  string `db:"customer_last_name"  table:"customers" column:"last_name"`
	CustomerEmail     string `db:"customer_email"      table:"customers" column:"email"`
	RoomNumber        string `db:"room_number"         table:"rooms"     column:"room_number"`
	RoomType          string `db:"room_type"           table:"rooms"     column:"type"`

	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return `JOIN customers ON customers.id = reservations.customer_id
		JOIN rooms ON rooms.id = reservations.room_id`
}

// IsTerminal reports whether the reservation can no longer change state.
func (r Reservation) IsTerminal() bool {
	return r.Status == StatusCheckedOut || r.Status == StatusCancelled
}

// Nights returns the length of stay. Check-out day is not counted.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// RevenueBucket is one month of the revenue breakdown.
type RevenueBucket struct {
	Month        string  `db:"month"`
	Revenue      float64 `db:"revenue"`
	Reservations int     `db:"reservations"`
}

// RevenueSummary aggregates revenue for a check-out window.
type RevenueSummary struct {
	TotalReservations int     `db:"total_reservations"`
	TotalRevenue      float64 `db:"total_revenue"`
	AvgPrice          float64 `db:"avg_price"`
}
