package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutes(t *testing.T) {
	t.Run("first_digit_run", func(t *testing.T) {
		assert.Equal(t, 60, DurationMinutes("60 min"))
		assert.Equal(t, 90, DurationMinutes("90 min"))
		assert.Equal(t, 45, DurationMinutes("about 45 minutes or 50"))
		assert.Equal(t, 120, DurationMinutes("120"))
	})

	t.Run("no_digits", func(t *testing.T) {
		assert.Equal(t, 0, DurationMinutes(""))
		assert.Equal(t, 0, DurationMinutes("call for details"))
		assert.Equal(t, 0, DurationMinutes("min"))
	})
}

func TestAddMinutes(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		assert.Equal(t, "11:00", AddMinutes("10:00", 60))
		assert.Equal(t, "10:45", AddMinutes("10:00", 45))
	})

	t.Run("hour_carry", func(t *testing.T) {
		assert.Equal(t, "11:30", AddMinutes("10:45", 45))
	})

	t.Run("midnight_rollover_discarded", func(t *testing.T) {
		// the date component is dropped, so the result lands "before" the start
		assert.Equal(t, "00:10", AddMinutes("23:50", 20))
		assert.Equal(t, "01:00", AddMinutes("23:00", 120))
	})

	t.Run("zero_padded", func(t *testing.T) {
		assert.Equal(t, "09:05", AddMinutes("09:00", 5))
		assert.Equal(t, "00:00", AddMinutes("23:59", 1))
	})

	t.Run("invalid_start", func(t *testing.T) {
		assert.Equal(t, "", AddMinutes("", 30))
		assert.Equal(t, "", AddMinutes("not a time", 30))
	})
}

func TestClockFormats(t *testing.T) {
	at := time.Date(2025, 9, 5, 8, 7, 0, 0, time.Local)
	assert.Equal(t, "08:07", CurrentTimeHHMM(at))
	assert.Equal(t, "2025-09-05", TodayISO(at))
}

func TestFormatDateReadable(t *testing.T) {
	assert.Equal(t, "5 Sep 2025", FormatDateReadable("2025-09-05"))
	assert.Equal(t, "not a date", FormatDateReadable("not a date"))
}
