package model

import "github.com/yamanfurkan353-eng/lumina/shared/model"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey   = "key"
	FieldValue = "value"

	KeyHotelName    = "hotel_name"
	KeyCurrency     = "currency"
	KeyCheckInTime  = "check_in_time"
	KeyCheckOutTime = "check_out_time"
	KeyTaxRate      = "tax_rate"
)

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
