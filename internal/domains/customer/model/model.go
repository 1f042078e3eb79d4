package model

import (
	"github.com/yamanfurkan353-eng/lumina/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldIDNumber    = "id_number"
	FieldNationality = "nationality"
	FieldNotes       = "notes"
	FieldTotalStays  = "total_stays"
	FieldTotalSpent  = "total_spent"
)

type Customer struct {
	ID          string  `db:"id"`
	FirstName   string  `db:"first_name"`
	LastName    string  `db:"last_name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	Address     string  `db:"address"`
	IDNumber    string  `db:"id_number"`
	Nationality string  `db:"nationality"`
	Notes       string  `db:"notes"`
	TotalStays  int     `db:"total_stays"`
	TotalSpent  float64 `db:"total_spent"`
	model.Metadata
}
