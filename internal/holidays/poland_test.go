package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 31), easterSunday(2024))
	assert.Equal(t, date(2025, time.April, 20), easterSunday(2025))
	assert.Equal(t, date(2026, time.April, 5), easterSunday(2026))
}

func TestPolishFixedHolidays(t *testing.T) {
	cal := Poland()

	assert.True(t, cal.IsHoliday(date(2024, time.January, 1)))
	assert.True(t, cal.IsHoliday(date(2024, time.May, 3)))
	assert.True(t, cal.IsHoliday(date(2024, time.November, 11)))
	assert.True(t, cal.IsHoliday(date(2024, time.December, 26)))

	assert.False(t, cal.IsHoliday(date(2024, time.July, 22)))
	assert.False(t, cal.IsHoliday(date(2024, time.December, 24)))
}

func TestPolishMovableHolidays(t *testing.T) {
	cal := Poland()

	// Easter Monday
	assert.True(t, cal.IsHoliday(date(2024, time.April, 1)))
	// Pentecost
	assert.True(t, cal.IsHoliday(date(2025, time.June, 8)))
	// Corpus Christi
	assert.True(t, cal.IsHoliday(date(2024, time.May, 30)))
	assert.True(t, cal.IsHoliday(date(2025, time.June, 19)))
}

func TestHolidayCountPerYear(t *testing.T) {
	// Pentecost always falls on a Sunday, the remaining twelve dates are
	// distinct in any year.
	assert.Len(t, polishHolidays(2024), 13)
	assert.Len(t, polishHolidays(2025), 13)
}

func TestIgnoresTimeOfDay(t *testing.T) {
	cal := Poland()

	assert.True(t, cal.IsHoliday(time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)))
}
