package scheduler

import (
	"math"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/solver"
)

// targetHours is an employee's contractual share of the monthly baseline.
func targetHours(fraction float64, fullTimeHours int) int {
	return int(math.Round(fraction * float64(fullTimeHours)))
}

// maxHoursBound is the theoretical per-employee hour ceiling, used to bound
// the deviation variables.
func maxHoursBound(numDays int, shifts []domain.ShiftDefinition) int {
	maxLen := 0
	for _, sh := range shifts {
		if sh.Length > maxLen {
			maxLen = sh.Length
		}
	}
	return numDays * maxLen
}

// composeObjective adds the soft part of the model: per-employee hour
// deviation variables and day-off preference penalties. It returns the
// per-preference diagnostics; a preference that cannot be resolved is dropped
// with a diagnostic, never a failure.
func (m *scheduleModel) composeObjective(baselineHours int, preferences []domain.PreferenceDefinition, hourWeight, defaultPenalty int) []domain.PreferenceDiagnostic {
	numDays := len(m.cal.calendarDays)
	maxDev := maxHoursBound(numDays, m.shifts)

	// dev_e >= |total_e - target_e|, linearized as two inequalities. dev is a
	// non-negative integer realized as a binary-encoded sum of fresh booleans,
	// so the pseudo-boolean engine can carry it.
	for e, emp := range m.employees {
		target := targetHours(emp.EmploymentFraction, baselineHours)

		var terms []solver.Term
		for d := 0; d < numDays; d++ {
			for s, sh := range m.shifts {
				terms = append(terms, solver.Term{Var: m.vars[e][d][s], Coeff: sh.Length})
			}
		}

		devBits := m.newBoundedInt(maxDev)

		// total - target <= dev
		le := make([]solver.Term, 0, len(terms)+len(devBits))
		le = append(le, terms...)
		for _, b := range devBits {
			le = append(le, solver.Term{Var: b.v, Coeff: -b.coeff})
		}
		m.pb.AddLinearLe(le, target)

		// target - total <= dev
		ge := make([]solver.Term, 0, len(terms)+len(devBits))
		for _, t := range terms {
			ge = append(ge, solver.Term{Var: t.Var, Coeff: -t.Coeff})
		}
		for _, b := range devBits {
			ge = append(ge, solver.Term{Var: b.v, Coeff: -b.coeff})
		}
		m.pb.AddLinearLe(ge, -target)

		cost := make([]solver.Term, len(devBits))
		for i, b := range devBits {
			cost[i] = solver.Term{Var: b.v, Coeff: hourWeight * b.coeff}
		}
		m.pb.Minimize(cost)
	}

	diagnostics := make([]domain.PreferenceDiagnostic, 0, len(preferences))
	for _, pref := range preferences {
		diag := domain.PreferenceDiagnostic{EmployeeID: pref.EmployeeID, Day: pref.Day}

		if pref.EmployeeID == 0 || pref.Day == 0 {
			diag.Reason = domain.PreferenceInvalidPayload
			diagnostics = append(diagnostics, diag)
			continue
		}

		e, ok := m.empIndex[pref.EmployeeID]
		if !ok {
			diag.Reason = domain.PreferenceEmployeeNotFound
			diagnostics = append(diagnostics, diag)
			continue
		}

		d, ok := m.cal.dayIndex[pref.Day]
		if !ok {
			diag.Reason = domain.PreferenceDayNotScheduled
			diagnostics = append(diagnostics, diag)
			continue
		}

		penalty := pref.Priority
		if penalty <= 0 {
			penalty = defaultPenalty
		}

		cost := make([]solver.Term, len(m.shifts))
		for s := range m.shifts {
			cost[s] = solver.Term{Var: m.vars[e][d][s], Coeff: penalty}
		}
		m.pb.Minimize(cost)

		diag.Applied = true
		diag.Reason = domain.PreferenceSoftPenaltyAdded
		diagnostics = append(diagnostics, diag)
	}

	return diagnostics
}

type weightedBit struct {
	v     solver.Var
	coeff int
}

// newBoundedInt allocates booleans b_k with weights 2^k covering [0, bound].
func (m *scheduleModel) newBoundedInt(bound int) []weightedBit {
	var bits []weightedBit
	for coeff := 1; coeff <= bound || len(bits) == 0; coeff <<= 1 {
		bits = append(bits, weightedBit{v: m.pb.NewBoolVar(), coeff: coeff})
		if coeff > bound {
			break
		}
	}
	return bits
}
