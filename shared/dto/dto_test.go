package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamanfurkan353-eng/lumina/shared/constant"
	"github.com/yamanfurkan353-eng/lumina/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Table:    "rooms",
				Value:    "available",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "rooms.status = :status",
			expectedArgs: map[string]any{"status": "available"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "id = :id",
			expectedArgs: map[string]any{"id": "123"},
		},
		{
			name: "like wraps the value in wildcards",
			filter: dto.Filter{
				Field:    "last_name",
				Table:    "customers",
				Value:    "yıl",
				Operator: dto.FilterOperatorLike,
			},
			expectedSQL:  "LOWER(customers.last_name) LIKE LOWER(:last_name) ",
			expectedArgs: map[string]any{"last_name": "%yıl%"},
		},
		{
			name: "in expands a slice",
			filter: dto.Filter{
				Field:    "status",
				Table:    "reservations",
				Value:    []string{"confirmed", "checked_in"},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL: "reservations.status IN (:status_0, :status_1) ",
			expectedArgs: map[string]any{
				"status_0": "confirmed",
				"status_1": "checked_in",
			},
		},
		{
			name: "less with a custom arg name",
			filter: dto.Filter{
				ArgName:  "check_in_to",
				Field:    "check_in",
				Table:    "reservations",
				Value:    "2026-09-13",
				Operator: dto.FilterOperatorLess,
			},
			expectedSQL:  "reservations.check_in < :check_in_to",
			expectedArgs: map[string]any{"check_in_to": "2026-09-13"},
		},
		{
			name: "greater or equal",
			filter: dto.Filter{
				Field:    "check_out",
				Value:    "2026-09-10",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedSQL:  "check_out >= :check_out",
			expectedArgs: map[string]any{"check_out": "2026-09-10"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "deleted_at",
				Table:    "rooms",
				Operator: dto.FilterIsNull,
			},
			expectedSQL:  "rooms.deleted_at IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Operator: "bogus",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("joins filters with AND by default", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "floor", Value: 2, Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		assert.Equal(t, "(status = :status AND floor = :floor)", sql)
		assert.Len(t, args, 2)
	})

	t.Run("honors the OR operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
				dto.Filter{ArgName: "status_alt", Field: "status", Value: "checked_in", Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		assert.Equal(t, "(status = :status OR status = :status_alt)", sql)
		assert.Len(t, args, 2)
	})

	t.Run("supports nested groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_alt", Field: "status", Value: "checked_in", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		sql, _ := group.GetWhereClause()

		assert.Equal(t, "(room_id = :room_id AND (status = :status OR status = :status_alt))", sql)
	})

	t.Run("empty group yields nothing", func(t *testing.T) {
		group := dto.FilterGroup{}

		sql, args := group.GetWhereClause()

		assert.Empty(t, sql)
		assert.Empty(t, args)
	})
}

func TestQueryParams_FromRequest(t *testing.T) {
	t.Run("reads all params", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/rooms?page=2&limit=25&sort_by=room_number&sort_dir=desc", nil)

		var params dto.QueryParams
		params.FromRequest(r, false)

		assert.Equal(t, 2, params.Page)
		assert.Equal(t, 25, params.Limit)
		assert.Equal(t, "room_number", params.SortBy)
		assert.Equal(t, dto.SortDirDesc, params.SortDir)
	})

	t.Run("applies defaults when requested", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/rooms", nil)

		var params dto.QueryParams
		params.FromRequest(r, true)

		assert.Equal(t, constant.DefaultValuePage, params.Page)
		assert.Equal(t, constant.DefaultValueLimit, params.Limit)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/rooms?page=abc&limit=-5&sort_dir=sideways", nil)

		var params dto.QueryParams
		params.FromRequest(r, false)

		assert.Zero(t, params.Page)
		assert.Zero(t, params.Limit)
		assert.Empty(t, params.SortDir)
	})
}
