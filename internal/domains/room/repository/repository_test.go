package repository_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
)

// claimQuery pins the parts of the claim statement that decide which room a
// booking gets: only active, available rooms of the type, shortest then
// lexically lowest number first, skipping rows another claim has locked.
var claimQuery = strings.Join([]string{
	regexp.QuoteMeta("UPDATE rooms SET status = $1, modified_at = $2, modified_by = $3"),
	regexp.QuoteMeta("SELECT id FROM rooms"),
	regexp.QuoteMeta("WHERE room_type_slug = $4 AND status = $5 AND active = TRUE"),
	regexp.QuoteMeta("ORDER BY LENGTH(room_number), room_number"),
	regexp.QuoteMeta("LIMIT 1"),
	regexp.QuoteMeta("FOR UPDATE SKIP LOCKED"),
	regexp.QuoteMeta(") AND status = $6"),
	regexp.QuoteMeta("RETURNING rooms.id"),
}, ".*")

func newRepository(t *testing.T) (repository.Room, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres"), Read: sqlx.NewDb(db, "postgres")}

	return repository.New(conn, otelMocks.NewOtel()), mock
}

func TestRepository_ClaimAvailable(t *testing.T) {
	t.Run("claims the first free room of the type", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(claimQuery).
			ExpectQuery().
			WithArgs("occupied", sqlmock.AnyArg(), "staff-1", "deluxe", "available", "available").
			WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type_slug", "status", "active"}).
				AddRow("r-101", "101", "deluxe", "occupied", true))

		room, found, err := repo.ClaimAvailable(context.Background(), "deluxe", "staff-1")
		require.NoError(t, err)

		assert.True(t, found)
		assert.Equal(t, "101", room.RoomNumber)
		assert.Equal(t, model.StatusOccupied, room.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing free", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(claimQuery).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "room_number"}))

		room, found, err := repo.ClaimAvailable(context.Background(), "suite", "staff-1")
		require.NoError(t, err)

		assert.False(t, found)
		assert.Empty(t, room.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(claimQuery).
			ExpectQuery().
			WillReturnError(errors.New("could not serialize access"))

		_, found, err := repo.ClaimAvailable(context.Background(), "deluxe", "staff-1")
		require.Error(t, err)

		assert.False(t, found)
		assert.Contains(t, err.Error(), "could not serialize access")
	})
}
