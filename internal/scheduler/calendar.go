package scheduler

import (
	"time"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/holidays"
)

// monthCalendar is the day axis the whole model operates over. Scheduled days
// are indexed densely 0..D-1; calendarDays maps each index back to a 1-based
// calendar day. Rest and consecutive-day constraints apply between
// index-adjacent entries, which deliberately skips non-working days.
type monthCalendar struct {
	daysInMonth  int
	calendarDays []int       // index -> 1-based calendar day
	dayIndex     map[int]int // 1-based calendar day -> index
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// resolveCalendar selects the days of the month that require shift coverage.
// Work modes select the raw weekday set; when holidays are observed
// (workHolidays false), public holidays are removed from the set in every
// mode. every_day means all seven weekdays.
func resolveCalendar(year, month int, mode domain.WorkMode, workHolidays bool, cal holidays.Calendar) *monthCalendar {
	mc := &monthCalendar{
		daysInMonth: daysInMonth(year, month),
		dayIndex:    make(map[int]int),
	}

	for day := 1; day <= mc.daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		switch mode {
		case domain.WorkModeMonFri:
			if isWeekend(date.Weekday()) {
				continue
			}
		case domain.WorkModeMonSat:
			if date.Weekday() == time.Sunday {
				continue
			}
		}

		if !workHolidays && cal.IsHoliday(date) {
			continue
		}

		mc.dayIndex[day] = len(mc.calendarDays)
		mc.calendarDays = append(mc.calendarDays, day)
	}

	return mc
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// fullTimeHours computes the reference monthly hour count for a 1.0
// employment fraction: 8 hours per Mon-Fri calendar day, minus 8 hours for
// every public holiday that falls on Mon-Sat. Sunday holidays do not reduce
// the baseline.
func fullTimeHours(year, month int, cal holidays.Calendar) int {
	hours := 0
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if !isWeekend(date.Weekday()) {
			hours += 8
		}
		if cal.IsHoliday(date) && date.Weekday() != time.Sunday {
			hours -= 8
		}
	}
	return hours
}
