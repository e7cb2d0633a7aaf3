package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule_DayOffset(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)

	got, err := parseSchedule("+30d", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 30), got)

	got, err = parseSchedule(" +1d ", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 1), got)
}

func TestParseSchedule_CalendarDate(t *testing.T) {
	now := time.Now()

	got, err := parseSchedule("2027-06-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2027, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseSchedule_RFC3339(t *testing.T) {
	got, err := parseSchedule("2027-06-01T09:00:00Z", time.Now())
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2027, 6, 1, 9, 0, 0, 0, time.UTC)))
}

func TestParseSchedule_Rejects(t *testing.T) {
	now := time.Now()

	for _, bad := range []string{"", "someday", "+d", "+threed", "01/06/2027"} {
		_, err := parseSchedule(bad, now)
		require.Error(t, err, "input %q must be rejected", bad)
	}
}
