package shared_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/yamanfurkan353-eng/lumina/shared"
	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	"github.com/yamanfurkan353-eng/lumina/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "1", input: "1", expected: boolPtr(true)},
		{name: "0", input: "0", expected: boolPtr(false)},
		{name: "t", input: "t", expected: boolPtr(true)},
		{name: "F", input: "F", expected: boolPtr(false)},
		{name: "TRUE", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Errorf("expected %v, got nil", *tt.expected)
			} else if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		RoomNumber string `db:"room_number"`
		Status     string `db:"status"`
		Untracked  string
	}

	data := TestStruct{
		RoomNumber: "204",
		Status:     "available",
		Untracked:  "ignored",
	}

	result := shared.TransformFields(data, "testuser")

	if result["room_number"] != "204" {
		t.Errorf("expected room_number to be 204, got %v", result["room_number"])
	}

	if result["status"] != "available" {
		t.Errorf("expected status to be available, got %v", result["status"])
	}

	if _, exists := result["Untracked"]; exists {
		t.Error("field without a db tag must not be included")
	}

	if result[constant.FieldModifiedBy] != "testuser" {
		t.Errorf("expected modified_by to be testuser, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestTransformFieldsSkipsZeroValues(t *testing.T) {
	type TestStruct struct {
		Name  string `db:"name"`
		Floor int    `db:"floor"`
	}

	result := shared.TransformFields(TestStruct{Name: "deluxe"}, "admin")

	if _, exists := result["floor"]; exists {
		t.Error("zero-valued field must not be included")
	}

	if result["name"] != "deluxe" {
		t.Errorf("expected name to be deluxe, got %v", result["name"])
	}
}

func TestTransformFieldsKeepsPointerToZero(t *testing.T) {
	type TestStruct struct {
		Guests *int `db:"guests"`
	}

	guests := 0

	result := shared.TransformFields(TestStruct{Guests: &guests}, "admin")

	if !reflect.DeepEqual(result["guests"], &guests) {
		t.Errorf("expected guests pointer to survive, got %v", result["guests"])
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("room", "get", "123"); key != "room:get:123" {
		t.Errorf("expected room:get:123, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: "asc"}
	filter := shared.FilterByID("abc", "id", "rooms")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if first != second {
		t.Errorf("equal queries must produce equal keys: %s vs %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", params, shared.FilterByID("def", "id", "rooms"))
	if first == other {
		t.Error("different filters must produce different keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
