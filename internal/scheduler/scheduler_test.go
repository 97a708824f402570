package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/holidays"
)

var testOptions = Options{TimeLimit: 30 * time.Second, Workers: 1}

func fullTimeRoster(names ...string) []*domain.Employee {
	roster := make([]*domain.Employee, len(names))
	for i, name := range names {
		roster[i] = &domain.Employee{
			ID:                 int64(i + 1),
			FirstName:          name,
			LastName:           "Testowy",
			EmploymentFraction: 1.0,
		}
	}
	return roster
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// shiftByDay maps calendar day to the shift name an employee is assigned to.
func shiftByDay(resp *domain.ScheduleResponse, name string) map[int]string {
	worked := make(map[int]string)
	for _, day := range resp.Schedule {
		for _, sa := range day.Shifts {
			for _, emp := range sa.Employees {
				if emp == name {
					worked[day.Day] = sa.Shift
				}
			}
		}
	}
	return worked
}

func TestGenerateMonFriSingleShift(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
	}
	roster := fullTimeRoster("Anna", "Piotr", "Maria")

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 29, resp.Meta.DaysInMonth)
	assert.Equal(t, 21, resp.Meta.ScheduledDaysCount)
	assert.Equal(t, 168, resp.Meta.FullTimeHoursUsed)
	assert.Equal(t, 168, resp.Meta.MaxHoursPerEmployee)

	require.Len(t, resp.Schedule, 21)
	for _, day := range resp.Schedule {
		require.Len(t, day.Shifts, 1)
		assert.Equal(t, "Dzienna", day.Shifts[0].Shift)
		assert.Len(t, day.Shifts[0].Employees, 1)
	}

	require.Len(t, resp.Summary, 3)
	totalShifts, totalHours := 0, 0
	for _, s := range resp.Summary {
		assert.Equal(t, 168, s.Target)
		assert.Equal(t, s.Shifts*8, s.Hours)
		totalShifts += s.Shifts
		totalHours += s.Hours
	}
	assert.Equal(t, 21, totalShifts)
	assert.Equal(t, 168, totalHours)
}

func TestGenerateInfeasibleCoverage(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 2},
		},
	}
	roster := fullTimeRoster("Anna")

	_, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestGenerateEmptyRoster(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
	}

	_, err := New(req, nil, holidays.Poland(), testOptions).Generate(context.Background())
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestGenerateMinimumRest(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Poranna", StartHour: 6, Length: 8, Required: 1},
			{Name: "Nocna", StartHour: 22, Length: 8, Required: 1},
		},
		Rules: domain.Rules{MinRestHours: 11},
	}
	roster := fullTimeRoster("Anna", "Piotr")

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	// a night shift ending 06:00 may never be followed by a 06:00 start on the
	// next scheduled day
	cal := resolveCalendar(2024, 2, domain.WorkModeMonFri, false, holidays.Poland())
	for _, emp := range roster {
		worked := shiftByDay(resp, emp.DisplayName())
		for d := 0; d < len(cal.calendarDays)-1; d++ {
			if worked[cal.calendarDays[d]] == "Nocna" {
				assert.NotEqual(t, "Poranna", worked[cal.calendarDays[d+1]])
			}
		}
	}
}

func TestGenerateMaxConsecutiveDays(t *testing.T) {
	maxDays := 3
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeEveryDay,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
		Rules: domain.Rules{MaxConsecutiveDays: &maxDays},
	}
	roster := fullTimeRoster("Anna", "Piotr")

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	cal := resolveCalendar(2024, 2, domain.WorkModeEveryDay, false, holidays.Poland())
	for _, emp := range roster {
		worked := shiftByDay(resp, emp.DisplayName())
		streak := 0
		for _, day := range cal.calendarDays {
			if _, ok := worked[day]; ok {
				streak++
			} else {
				streak = 0
			}
			assert.LessOrEqual(t, streak, maxDays)
		}
	}
}

func TestGeneratePreferenceHonored(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
		Preferences: []domain.PreferenceDefinition{
			{EmployeeID: 1, Day: 1},
		},
	}
	roster := fullTimeRoster("Anna", "Piotr")

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	// the hour deviations are identical for every split of 21 shifts between
	// two full-time employees, so honoring the preference is strictly cheaper
	require.Len(t, resp.Meta.Preferences, 1)
	diag := resp.Meta.Preferences[0]
	assert.True(t, diag.Applied)
	assert.Equal(t, domain.PreferenceSoftPenaltyAdded, diag.Reason)

	assert.Equal(t, []string{"Piotr Testowy"}, resp.Schedule[0].Shifts[0].Employees)
}

func TestGeneratePreferenceDiagnostics(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
		Preferences: []domain.PreferenceDefinition{
			{EmployeeID: 99, Day: 5},
			{EmployeeID: 1, Day: 4}, // Feb 4th 2024 is a Sunday
			{EmployeeID: 1},         // day missing
		},
	}
	roster := fullTimeRoster("Anna", "Piotr")

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Meta.Preferences, 3)

	assert.False(t, resp.Meta.Preferences[0].Applied)
	assert.Equal(t, domain.PreferenceEmployeeNotFound, resp.Meta.Preferences[0].Reason)

	assert.False(t, resp.Meta.Preferences[1].Applied)
	assert.Equal(t, domain.PreferenceDayNotScheduled, resp.Meta.Preferences[1].Reason)

	assert.False(t, resp.Meta.Preferences[2].Applied)
	assert.Equal(t, domain.PreferenceInvalidPayload, resp.Meta.Preferences[2].Reason)
}

func TestGenerateCancelledContext(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
	}
	roster := fullTimeRoster("Anna")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(req, roster, holidays.Poland(), testOptions).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratePartTimeTargets(t *testing.T) {
	req := &domain.ScheduleRequest{
		Year:            2024,
		Month:           2,
		CompanyWorkMode: domain.WorkModeMonFri,
		Shifts: []domain.ShiftDefinition{
			{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		},
	}
	roster := fullTimeRoster("Anna", "Piotr")
	roster[1].EmploymentFraction = 0.5

	resp, err := New(req, roster, holidays.Poland(), testOptions).Generate(context.Background())
	require.NoError(t, err)

	anna := resp.Summary["Anna Testowy"]
	piotr := resp.Summary["Piotr Testowy"]
	assert.Equal(t, 168, anna.Target)
	assert.Equal(t, 84, piotr.Target)
	assert.Equal(t, 21, anna.Shifts+piotr.Shifts)

	// only 21 shifts exist against 31.5 shifts worth of targets, so the
	// minimal total deviation is 84 hours, reached whenever Anna works at
	// least 11 days
	dev := abs(anna.Hours-anna.Target) + abs(piotr.Hours-piotr.Target)
	assert.Equal(t, 84, dev)
	assert.GreaterOrEqual(t, anna.Shifts, 11)
}
