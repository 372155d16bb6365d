package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapErr(fmt.Errorf("scan: %w", pgx.ErrNoRows)), domain.ErrNotFound)

	for _, code := range []string{"40001", "40P01", "55P03"} {
		err := mapErr(&pgconn.PgError{Code: code, Message: "conflict"})
		assert.ErrorIs(t, err, domain.ErrTransientConflict, code)
	}

	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	err := mapErr(unique)
	assert.False(t, errors.Is(err, domain.ErrTransientConflict))
	assert.Same(t, unique, err)
}

func pgTime(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func TestScheduleFromRow(t *testing.T) {
	sched, err := scheduleFromRow(3, pgTime(22*time.Hour), pgTime(2*time.Hour), "fri,sat", "late")
	require.NoError(t, err)
	assert.Equal(t, int64(3), sched.ID)
	assert.Equal(t, "22:00", sched.StartTime.String())
	assert.Equal(t, "02:00", sched.EndTime.String())
	assert.True(t, sched.DaysOfWeek.Has(time.Saturday))
	assert.Equal(t, "late", sched.Description)

	_, err = scheduleFromRow(4, pgTime(time.Hour), pgTime(2*time.Hour), "someday", "")
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	_, err = scheduleFromRow(5, pgTime(time.Hour), pgTime(time.Hour), "mon", "")
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}
