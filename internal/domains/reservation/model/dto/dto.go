package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/shared"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/failure"
	gModel "github.com/yamanfurkan353-eng/lumina/shared/model"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

type CreateReservationRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
	RoomID     string `json:"room_id"     validate:"required,uuid4"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests"      validate:"required,min=1"`
	Notes      string `json:"notes"       validate:"omitempty,max=1000"`
}

// ToModel builds the reservation in its initial state. The total price is
// filled in later, once the room rate is known.
func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	checkIn, checkOut, err := ParseStayRange(c.CheckIn, c.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:            uuid.NewString(),
		CustomerID:    c.CustomerID,
		RoomID:        c.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        c.Guests,
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentPending,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// ParseStayRange parses a pair of stay dates and enforces their ordering.
func ParseStayRange(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, checkInStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, checkOutStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type UpdateReservationRequest struct {
	CheckIn  string  `json:"check_in"  validate:"omitempty,datetime=2006-01-02"`
	CheckOut string  `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	Guests   *int    `json:"guests"    validate:"omitempty,min=1"`
	Notes    *string `json:"notes"     validate:"omitempty,max=1000"`
}

// ChangesDates reports whether the update touches the stay range.
func (u *UpdateReservationRequest) ChangesDates() bool {
	return u.CheckIn != constant.Empty || u.CheckOut != constant.Empty
}

// CheckOutRequest optionally overrides the final bill at check-out, e.g. for
// late-checkout fees or manual discounts.
type CheckOutRequest struct {
	FinalPrice *float64 `json:"final_price" validate:"omitempty,gt=0"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid refunded"`
}

type ReservationResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	RoomID        string  `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"total_price"`
	PaymentStatus string  `json:"payment_status"`
	Notes         string  `json:"notes"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.Guests = model.Guests
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.PaymentStatus = model.PaymentStatus
	r.Notes = model.Notes
	r.CustomerName = model.CustomerFirstName + " " + model.CustomerLastName
	r.CustomerEmail = model.CustomerEmail
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
