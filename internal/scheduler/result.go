package scheduler

import (
	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/solver"
)

// project maps solved variable values back onto calendar days. For a fixed
// solver output the result is deterministic: days ascend by calendar day,
// shifts keep catalog order, employees keep roster order.
func (m *scheduleModel) project(sol *solver.Solution, baselineHours int, diagnostics []domain.PreferenceDiagnostic) *domain.ScheduleResponse {
	numDays := len(m.cal.calendarDays)

	schedule := make([]domain.ScheduledDay, 0, numDays)
	for d := 0; d < numDays; d++ {
		day := domain.ScheduledDay{
			Day:    m.cal.calendarDays[d],
			Shifts: make([]domain.ShiftAssignment, 0, len(m.shifts)),
		}
		for s, shift := range m.shifts {
			assigned := make([]string, 0, shift.Required)
			for e, emp := range m.employees {
				if sol.Value(m.vars[e][d][s]) {
					assigned = append(assigned, emp.DisplayName())
				}
			}
			day.Shifts = append(day.Shifts, domain.ShiftAssignment{Shift: shift.Name, Employees: assigned})
		}
		schedule = append(schedule, day)
	}

	summary := make(map[string]domain.EmployeeSummary, len(m.employees))
	for e, emp := range m.employees {
		workedShifts := 0
		workedHours := 0
		for d := 0; d < numDays; d++ {
			for s, shift := range m.shifts {
				if sol.Value(m.vars[e][d][s]) {
					workedShifts++
					workedHours += shift.Length
				}
			}
		}
		summary[emp.DisplayName()] = domain.EmployeeSummary{
			Shifts: workedShifts,
			Hours:  workedHours,
			Target: targetHours(emp.EmploymentFraction, baselineHours),
		}
	}

	return &domain.ScheduleResponse{
		Schedule: schedule,
		Summary:  summary,
		Meta: domain.ScheduleMeta{
			DaysInMonth:         m.cal.daysInMonth,
			ScheduledDaysCount:  numDays,
			FullTimeHoursUsed:   baselineHours,
			MaxHoursPerEmployee: maxHoursBound(numDays, m.shifts),
			Preferences:         diagnostics,
		},
	}
}
