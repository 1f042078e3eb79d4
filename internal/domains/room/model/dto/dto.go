package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/yamanfurkan353-eng/lumina/internal/domains/room/model"
	"github.com/yamanfurkan353-eng/lumina/shared"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	gModel "github.com/yamanfurkan353-eng/lumina/shared/model"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber    string   `json:"room_number"     validate:"required,max=10"`
	Floor         int      `json:"floor"           validate:"required,min=1"`
	Type          string   `json:"type"            validate:"required,oneof=single double suite deluxe"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	Capacity      int      `json:"capacity"        validate:"required,min=1"`
	Amenities     []string `json:"amenities"       validate:"omitempty,dive,max=50"`
	Description   string   `json:"description"     validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		Floor:         c.Floor,
		Type:          c.Type,
		Status:        model.StatusAvailable,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Amenities:     pq.StringArray(c.Amenities),
		Description:   c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string         `db:"room_number"     json:"room_number"     validate:"omitempty,max=10"`
	Floor         *int           `db:"floor"           json:"floor"           validate:"omitempty,min=1"`
	Type          string         `db:"type"            json:"type"            validate:"omitempty,oneof=single double suite deluxe"`
	Status        string         `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied maintenance dirty"`
	PricePerNight *float64       `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Capacity      *int           `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=50"`
	Description   *string        `db:"description"     json:"description"     validate:"omitempty,max=500"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance dirty"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"room_number"`
	Floor         int      `json:"floor"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.Type = model.Type
	r.Status = model.Status
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type GetAvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
