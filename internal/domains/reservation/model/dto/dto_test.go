package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/model/dto"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

func TestParseStayRange(t *testing.T) {
	t.Run("parses a valid range", func(t *testing.T) {
		checkIn, checkOut, err := dto.ParseStayRange("2026-09-10", "2026-09-13")
		require.NoError(t, err)
		assert.True(t, checkOut.After(checkIn))
	})

	t.Run("rejects an invalid check_in", func(t *testing.T) {
		_, _, err := dto.ParseStayRange("not-a-date", "2026-09-13")
		assert.Error(t, err)
	})

	t.Run("rejects an invalid check_out", func(t *testing.T) {
		_, _, err := dto.ParseStayRange("2026-09-10", "13-09-2026")
		assert.Error(t, err)
	})

	t.Run("rejects check_out before check_in", func(t *testing.T) {
		_, _, err := dto.ParseStayRange("2026-09-13", "2026-09-10")
		assert.Error(t, err)
	})

	t.Run("rejects a zero-night stay", func(t *testing.T) {
		_, _, err := dto.ParseStayRange("2026-09-10", "2026-09-10")
		assert.Error(t, err)
	})
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		CustomerID: "4f2b5a7e-9f6a-4a0f-8a4e-0f2d1c3b4a5e",
		RoomID:     "9c8b7a6d-5e4f-4d3c-b2a1-0f9e8d7c6b5a",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-13",
		Guests:     2,
		Notes:      "late arrival",
	}

	m, err := req.ToModel("user-id")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, req.CustomerID, m.CustomerID)
	assert.Equal(t, req.RoomID, m.RoomID)
	assert.Equal(t, model.StatusConfirmed, m.Status)
	assert.Equal(t, model.PaymentPending, m.PaymentStatus)
	assert.Equal(t, 3, m.Nights())
	assert.Equal(t, "user-id", m.CreatedBy)
}

func TestUpdateReservationRequest_ChangesDates(t *testing.T) {
	guests := 3

	assert.False(t, (&dto.UpdateReservationRequest{Guests: &guests}).ChangesDates())
	assert.True(t, (&dto.UpdateReservationRequest{CheckIn: "2026-09-11"}).ChangesDates())
	assert.True(t, (&dto.UpdateReservationRequest{CheckOut: "2026-09-14"}).ChangesDates())
}

func TestReservationResponse_FromModel(t *testing.T) {
	checkIn, err := timezone.Parse("2006-01-02", "2026-09-10")
	require.NoError(t, err)

	checkOut, err := timezone.Parse("2006-01-02", "2026-09-13")
	require.NoError(t, err)

	m := model.Reservation{
		ID:                "res-id",
		CustomerID:        "customer-id",
		RoomID:            "room-id",
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guests:            2,
		Status:            model.StatusConfirmed,
		TotalPrice:        3000,
		PaymentStatus:     model.PaymentPending,
		CustomerFirstName: "Ayşe",
		CustomerLastName:  "Yılmaz",
		CustomerEmail:     "ayse@example.com",
		RoomNumber:        "204",
		RoomType:          "double",
	}

	var res dto.ReservationResponse
	res.FromModel(m)

	assert.Equal(t, "2026-09-10", res.CheckIn)
	assert.Equal(t, "2026-09-13", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "Ayşe Yılmaz", res.CustomerName)
	assert.Equal(t, "204", res.RoomNumber)
	assert.InEpsilon(t, 3000.0, res.TotalPrice, 0.001)
}
