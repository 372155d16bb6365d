package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriods(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))
	assert.Equal(t, "2024-03-02", DayPeriod(ts))
	assert.Equal(t, "2024-03", MonthPeriod(ts))
}

func TestResetDue(t *testing.T) {
	assert.True(t, ResetDue("", "2024-03-01"))
	assert.True(t, ResetDue("2024-02-29", "2024-03-01"))
	assert.False(t, ResetDue("2024-03-01", "2024-03-01"))
	// marker ahead of the requested period
	assert.False(t, ResetDue("2024-03-02", "2024-03-01"))

	assert.True(t, ResetDue("2023-12", "2024-01"))
	assert.False(t, ResetDue("2024-01", "2024-01"))
}
