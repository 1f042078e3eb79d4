package model

import (
	"github.com/lib/pq"

	"github.com/yamanfurkan353-eng/lumina/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldFloor         = "floor"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldAmenities     = "amenities"
	FieldDescription   = "description"

	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeDeluxe = "deluxe"

	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusDirty       = "dirty"
)

type Room struct {
	ID            string         `db:"id"`
	RoomNumber    string         `db:"room_number"`
	Floor         int            `db:"floor"`
	Type          string         `db:"type"`
	Status        string         `db:"status"`
	PricePerNight float64        `db:"price_per_night"`
	Capacity      int            `db:"capacity"`
	Amenities     pq.StringArray `db:"amenities"`
	Description   string         `db:"description"`
	model.Metadata
}

// StatusCount is one bucket of the per-status room breakdown.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
