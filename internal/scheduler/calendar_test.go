package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/holidays"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, daysInMonth(2024, 2))
	assert.Equal(t, 28, daysInMonth(2025, 2))
	assert.Equal(t, 31, daysInMonth(2024, 12))
	assert.Equal(t, 30, daysInMonth(2024, 11))
}

func TestResolveCalendarMonFri(t *testing.T) {
	// February 2024 has 21 weekdays and no public holidays
	cal := resolveCalendar(2024, 2, domain.WorkModeMonFri, false, holidays.Poland())

	assert.Equal(t, 29, cal.daysInMonth)
	require.Len(t, cal.calendarDays, 21)

	// Feb 1st 2024 is a Thursday, the first weekend is the 3rd and 4th
	assert.Equal(t, []int{1, 2, 5, 6, 7}, cal.calendarDays[:5])
	assert.Equal(t, 0, cal.dayIndex[1])
	assert.Equal(t, 2, cal.dayIndex[5])
	_, ok := cal.dayIndex[3]
	assert.False(t, ok)
}

func TestResolveCalendarMonSat(t *testing.T) {
	// Sundays in February 2024: 4th, 11th, 18th, 25th
	cal := resolveCalendar(2024, 2, domain.WorkModeMonSat, false, holidays.Poland())

	assert.Len(t, cal.calendarDays, 25)
	_, ok := cal.dayIndex[4]
	assert.False(t, ok)
	_, ok = cal.dayIndex[3]
	assert.True(t, ok)
}

func TestResolveCalendarEveryDay(t *testing.T) {
	cal := resolveCalendar(2024, 2, domain.WorkModeEveryDay, false, holidays.Poland())

	assert.Len(t, cal.calendarDays, 29)
}

func TestResolveCalendarObservedHolidays(t *testing.T) {
	// May 2025: May 1st (Thursday) and May 3rd (Saturday) are public holidays
	cal := resolveCalendar(2025, 5, domain.WorkModeEveryDay, false, holidays.Poland())
	assert.Len(t, cal.calendarDays, 29)
	_, ok := cal.dayIndex[1]
	assert.False(t, ok)
	_, ok = cal.dayIndex[3]
	assert.False(t, ok)

	// mon_fri drops weekends first, only May 1st remains to remove
	cal = resolveCalendar(2025, 5, domain.WorkModeMonFri, false, holidays.Poland())
	assert.Len(t, cal.calendarDays, 21)
}

func TestResolveCalendarWorkableHolidays(t *testing.T) {
	cal := resolveCalendar(2025, 5, domain.WorkModeEveryDay, true, holidays.Poland())

	assert.Len(t, cal.calendarDays, 31)
	_, ok := cal.dayIndex[1]
	assert.True(t, ok)
}

func TestFullTimeHours(t *testing.T) {
	cal := holidays.Poland()

	// no holidays: 21 weekdays
	assert.Equal(t, 168, fullTimeHours(2024, 2, cal))

	// November 2024: 21 weekdays, holidays on Friday the 1st and Monday the 11th
	assert.Equal(t, 152, fullTimeHours(2024, 11, cal))

	// May 2025: 22 weekdays, a Thursday holiday and a Saturday holiday both
	// reduce the baseline
	assert.Equal(t, 160, fullTimeHours(2025, 5, cal))
}

func TestFullTimeHoursIgnoresSundayHolidays(t *testing.T) {
	// Easter Sunday 2024-03-31 must not reduce March; Easter Monday 2024-04-01
	// falls in April. March 2024: 21 weekdays, no Mon-Sat holiday.
	assert.Equal(t, 168, fullTimeHours(2024, 3, holidays.Poland()))
}
