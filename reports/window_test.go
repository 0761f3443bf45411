package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyWindowBoundaries(t *testing.T) {
	start, end, err := Window("daily", "2024-03-10")
	require.NoError(t, err)

	midnight := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	justBefore := time.Date(2024, 3, 9, 23, 59, 59, 0, time.Local)
	lastSecond := time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)

	// Exactly midnight of the selected day is inside the window.
	assert.False(t, midnight.Before(start))
	assert.False(t, midnight.After(end))

	// One second before midnight belongs to the previous day.
	assert.True(t, justBefore.Before(start))

	assert.False(t, lastSecond.After(end))
	assert.True(t, end.Before(midnight.AddDate(0, 0, 1)))
}

func TestMonthlyWindow(t *testing.T) {
	start, end, err := Window("monthly", "2024-02-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	// 2024 is a leap year.
	assert.True(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local).Before(end))
	assert.True(t, end.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)))
}

func TestYearlyWindow(t *testing.T) {
	start, end, err := Window("yearly", "2024-07-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.True(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local).Before(end) ||
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local).Equal(end))
	assert.True(t, end.Before(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)))
}

func TestWindowRejectsBadInput(t *testing.T) {
	_, _, err := Window("daily", "10-03-2024")
	assert.Error(t, err)

	_, _, err = Window("weekly", "2024-03-10")
	assert.Error(t, err)
}
