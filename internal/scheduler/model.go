package scheduler

import (
	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/solver"
)

// scheduleModel holds one request's decision variables and index maps. One
// boolean variable exists per (employee, scheduled day, shift) triple.
type scheduleModel struct {
	pb        *solver.Model
	vars      [][][]solver.Var // [employee][day index][shift]
	empIndex  map[int64]int
	cal       *monthCalendar
	employees []*domain.Employee
	shifts    []domain.ShiftDefinition
}

func buildModel(employees []*domain.Employee, shifts []domain.ShiftDefinition, rules domain.Rules, cal *monthCalendar) *scheduleModel {
	m := &scheduleModel{
		pb:        solver.NewModel(),
		empIndex:  make(map[int64]int, len(employees)),
		cal:       cal,
		employees: employees,
		shifts:    shifts,
	}

	numEmployees := len(employees)
	numDays := len(cal.calendarDays)
	numShifts := len(shifts)

	m.vars = make([][][]solver.Var, numEmployees)
	for e, emp := range employees {
		m.empIndex[emp.ID] = e
		m.vars[e] = make([][]solver.Var, numDays)
		for d := 0; d < numDays; d++ {
			m.vars[e][d] = make([]solver.Var, numShifts)
			for s := 0; s < numShifts; s++ {
				m.vars[e][d][s] = m.pb.NewBoolVar()
			}
		}
	}

	// coverage: exactly shift.required employees per (day, shift)
	for d := 0; d < numDays; d++ {
		for s, shift := range shifts {
			terms := make([]solver.Term, numEmployees)
			for e := 0; e < numEmployees; e++ {
				terms[e] = solver.Term{Var: m.vars[e][d][s], Coeff: 1}
			}
			m.pb.AddLinearEq(terms, shift.Required)
		}
	}

	// at most one shift per employee per day
	for e := 0; e < numEmployees; e++ {
		for d := 0; d < numDays; d++ {
			m.pb.AddAtMost(m.vars[e][d], 1)
		}
	}

	// minimum rest between index-adjacent days: forbid any ordered shift pair
	// whose gap falls short, for every pair, not just identical shifts
	for e := 0; e < numEmployees; e++ {
		for d := 0; d < numDays-1; d++ {
			for s1, sh1 := range shifts {
				for s2, sh2 := range shifts {
					if restHours(sh1.StartHour, sh1.Length, sh2.StartHour) < rules.MinRestHours {
						m.pb.AddAtMost([]solver.Var{m.vars[e][d][s1], m.vars[e][d+1][s2]}, 1)
					}
				}
			}
		}
	}

	// sliding-window cap on consecutive worked days
	if rules.MaxConsecutiveDays != nil {
		maxDays := *rules.MaxConsecutiveDays
		if maxDays < numDays {
			for e := 0; e < numEmployees; e++ {
				for start := 0; start+maxDays < numDays; start++ {
					var window []solver.Var
					for d := start; d <= start+maxDays; d++ {
						window = append(window, m.vars[e][d]...)
					}
					m.pb.AddAtMost(window, maxDays)
				}
			}
		}
	}

	return m
}

// restHours is the gap between the end of a shift on day d and the start of a
// shift on day d+1. A shift end wrapping past midnight is normalized forward
// before the next day's start (taken as start+24) is compared against it.
func restHours(start1, length1, start2 int) int {
	end1 := (start1 + length1) % 24
	if end1 <= start1 {
		end1 += 24
	}
	return start2 + 24 - end1
}
