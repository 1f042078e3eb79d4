package dto

import (
	"github.com/google/uuid"

	"github.com/yamanfurkan353-eng/lumina/internal/domains/customer/model"
	"github.com/yamanfurkan353-eng/lumina/shared"
	gDto "github.com/yamanfurkan353-eng/lumina/shared/dto"
	gModel "github.com/yamanfurkan353-eng/lumina/shared/model"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"  validate:"required,max=100"`
	LastName    string `json:"last_name"   validate:"required,max=100"`
	Phone       string `json:"phone"       validate:"required,max=30"`
	Email       string `json:"email"       validate:"omitempty,email,max=255"`
	Address     string `json:"address"     validate:"omitempty,max=255"`
	IDNumber    string `json:"id_number"   validate:"omitempty,max=50"`
	Nationality string `json:"nationality" validate:"omitempty,max=100"`
	Notes       string `json:"notes"       validate:"omitempty,max=1000"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		IDNumber:    c.IDNumber,
		Nationality: c.Nationality,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FirstName   string `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName    string `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
	Email       string `db:"email"       json:"email"       validate:"omitempty,email,max=255"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=255"`
	IDNumber    string `db:"id_number"   json:"id_number"   validate:"omitempty,max=50"`
	Nationality string `db:"nationality" json:"nationality" validate:"omitempty,max=100"`
	Notes       string `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
}

type CustomerResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	IDNumber    string  `json:"id_number"`
	Nationality string  `json:"nationality"`
	Notes       string  `json:"notes"`
	TotalStays  int     `json:"total_stays"`
	TotalSpent  float64 `json:"total_spent"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.IDNumber = model.IDNumber
	r.Nationality = model.Nationality
	r.Notes = model.Notes
	r.TotalStays = model.TotalStays
	r.TotalSpent = model.TotalSpent
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
