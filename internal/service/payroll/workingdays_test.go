package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, referenceTZ)
}

func TestPeriodBounds(t *testing.T) {
	first, last := periodBounds(2, 2026)
	assert.Equal(t, day(2026, time.February, 1), first)
	assert.Equal(t, day(2026, time.February, 28), last)

	first, last = periodBounds(12, 2025)
	assert.Equal(t, day(2025, time.December, 1), first)
	assert.Equal(t, day(2025, time.December, 31), last)
}

func TestNextPeriod(t *testing.T) {
	m, y := nextPeriod(11, 2025)
	assert.Equal(t, 12, m)
	assert.Equal(t, 2025, y)

	m, y = nextPeriod(12, 2025)
	assert.Equal(t, 1, m)
	assert.Equal(t, 2026, y)
}

func TestCountWorkingDays(t *testing.T) {
	// September 2025 starts on a Monday and has 22 weekdays.
	afterMonth := day(2025, time.October, 15)

	t.Run("full month", func(t *testing.T) {
		got := CountWorkingDays(9, 2025, nil, afterMonth, nil)
		assert.Equal(t, 22, got)
	})

	t.Run("weekday holiday is skipped", func(t *testing.T) {
		holidays := holidaySet([]time.Time{day(2025, time.September, 15)})
		got := CountWorkingDays(9, 2025, nil, afterMonth, holidays)
		assert.Equal(t, 21, got)
	})

	t.Run("weekend holiday changes nothing", func(t *testing.T) {
		holidays := holidaySet([]time.Time{day(2025, time.September, 6)})
		got := CountWorkingDays(9, 2025, nil, afterMonth, holidays)
		assert.Equal(t, 22, got)
	})

	t.Run("hire date floors the range", func(t *testing.T) {
		hired := day(2025, time.September, 10)
		got := CountWorkingDays(9, 2025, &hired, afterMonth, nil)
		assert.Equal(t, 15, got)
	})

	t.Run("hire date before the month is ignored", func(t *testing.T) {
		hired := day(2024, time.March, 3)
		got := CountWorkingDays(9, 2025, &hired, afterMonth, nil)
		assert.Equal(t, 22, got)
	})

	t.Run("current month capped at today", func(t *testing.T) {
		got := CountWorkingDays(9, 2025, nil, day(2025, time.September, 10), nil)
		assert.Equal(t, 8, got)
	})

	t.Run("cap only applies inside the same month", func(t *testing.T) {
		got := CountWorkingDays(9, 2025, nil, day(2026, time.September, 10), nil)
		assert.Equal(t, 22, got)
	})
}

func TestDateKey_NormalizesZone(t *testing.T) {
	// 01:30 UTC is still the previous calendar day at UTC-3.
	utc := time.Date(2025, time.September, 10, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-09", dateKey(utc))
}
