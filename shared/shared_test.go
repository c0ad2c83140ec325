package shared_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
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
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "upper case false", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "walk_in", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "plain number", input: "3", expected: 3},
		{name: "surrounding spaces", input: " 12 ", expected: 12},
		{name: "negative", input: "-1", expected: -1},
		{name: "not a number", input: "third", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
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
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Floor   int    `db:"floor"`
		Notes   string `db:"notes"`
		Status  string `db:"status"`
		Ignored string
	}

	tests := []struct {
		name     string
		data     any
		username string
		expected map[string]any
	}{
		{
			name:     "populated fields are kept",
			data:     roomPatch{Floor: 3, Notes: "sea view", Ignored: "x"},
			username: "frontdesk",
			expected: map[string]any{"floor": 3, "notes": "sea view"},
		},
		{
			name:     "zero values produce only metadata",
			data:     roomPatch{},
			username: "frontdesk",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
			assert.Equal(t, tt.username, result[constant.FieldModifiedBy])

			delete(result, constant.FieldModifiedAt)
			delete(result, constant.FieldModifiedBy)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("room-1", "id", "rooms")

	where, args := result.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "room-1"}, args)
}

func TestFilterByIDAndStatus(t *testing.T) {
	result := shared.FilterByIDAndStatus("room-1", "id", "status", "occupied", "rooms")

	where, args := result.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id AND rooms.status = :current_status)", where)
	assert.Equal(t, map[string]any{"id": "room-1", "current_status": "occupied"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room_type", shared.BuildCacheKey("room_type"))
	assert.Equal(t, "room_type:deluxe", shared.BuildCacheKey("room_type", "deluxe"))
	assert.Equal(t, "room_type:slug:deluxe", shared.BuildCacheKey("room_type", "slug", "deluxe"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	active := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
	}}
	inactive := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "active", Value: false, Operator: dto.FilterOperatorEq},
	}}
	page1 := dto.QueryParams{Page: 1, Limit: 10}
	page2 := dto.QueryParams{Page: 2, Limit: 10}

	key := shared.BuildCacheKeyWithQuery("room_type", page1, active)

	assert.Contains(t, key, "room_type:")
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("room_type", page1, active))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("room_type", page2, active))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("room_type", page1, inactive))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "room_type*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "room_type")
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)}
	fk := &pq.Error{Code: "23503"}

	assert.True(t, shared.IsUniqueViolation(unique))
	assert.True(t, shared.IsUniqueViolation(fmt.Errorf("insert room: %w", unique)))
	assert.False(t, shared.IsUniqueViolation(fk))
	assert.False(t, shared.IsUniqueViolation(errors.New("boom")))
	assert.False(t, shared.IsUniqueViolation(nil))
}

func boolPtr(b bool) *bool {
	return &b
}
