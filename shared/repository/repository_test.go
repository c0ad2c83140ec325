package repository

import (
	"context"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type audit struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}

type roomRow struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	Floor      int    `db:"floor"`
	Scratch    string `db:"-"`
	Untagged   string
	audit
}

func newRoomRepository() Repository[roomRow] {
	return NewRepository[roomRow]("room", "rooms", "id", nil, mocks.NewOtel())
}

func TestNewRepository_Columns(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t, []string{"id", "room_number", "floor", "created_at", "created_by"}, repo.columns)
	assert.Equal(t, "rooms.id, rooms.room_number, rooms.floor, rooms.created_at, rooms.created_by", repo.Columns(context.Background()))
}

func TestRepository_selectList(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t, "rooms.id, rooms.floor", repo.selectList([]string{"floor", "id", "missing"}))
	assert.Empty(t, repo.selectList([]string{"missing"}))
}

func TestRepository_insertQuery(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t,
		"INSERT INTO rooms (id, room_number, floor, created_at, created_by) VALUES (:id, :room_number, :floor, :created_at, :created_by)",
		repo.insertQuery(),
	)
}

func TestSetList(t *testing.T) {
	got := setList(map[string]any{"status": "available", "modified_by": "u-1", "active": true})

	assert.Equal(t, "active = :active, modified_by = :modified_by, status = :status", got)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newRoomRepository()

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "floor", Operator: dto.FilterOperatorEq, Value: 3, Table: "rooms"}},
	})

	assert.Equal(t, " WHERE (rooms.floor = :floor)", where)
	assert.Equal(t, map[string]any{"floor": 3}, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{})

	assert.Empty(t, where)
	assert.NotNil(t, args)
}

func TestRepository_WritesRequireFilter(t *testing.T) {
	repo := newRoomRepository()
	ctx := context.Background()

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	require.ErrorIs(t, err, ErrMissingFilter)

	err = repo.Delete(ctx, dto.FilterGroup{})
	require.ErrorIs(t, err, ErrMissingFilter)

	_, err = repo.UpdateCount(ctx, map[string]any{"status": "available"}, dto.FilterGroup{})
	require.ErrorIs(t, err, ErrMissingFilter)
}
