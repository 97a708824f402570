// Package solver wraps a pseudo-boolean optimization engine behind a small
// model-building API: boolean variables, linear constraints over them and a
// linear cost function to minimize. The schedule generator only talks to this
// package, so the underlying engine stays swappable.
package solver

import (
	"context"
	"time"

	gs "github.com/crillab/gophersat/solver"
)

// Var identifies a boolean decision variable. Values start at 1.
type Var int

// Term is a weighted variable inside a linear expression.
type Term struct {
	Var   Var
	Coeff int
}

type Status int

const (
	Unknown Status = iota
	Optimal
	Feasible // best solution found within the time budget, optimality unproven
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Model accumulates constraints and the cost function before a single solve.
// A model is request-scoped and must not be reused after Solve.
type Model struct {
	nbVars  int
	constrs []gs.PBConstr

	costIdx     map[Var]int
	costVars    []Var
	costWeights []int

	// set when a constraint is unsatisfiable by construction, e.g. a coverage
	// requirement over an empty roster; the engine is then never invoked
	unsat bool
}

func NewModel() *Model {
	return &Model{costIdx: make(map[Var]int)}
}

func (m *Model) NewBoolVar() Var {
	m.nbVars++
	return Var(m.nbVars)
}

// AddLinearLe adds the constraint sum(coeff*var) <= rhs.
func (m *Model) AddLinearLe(terms []Term, rhs int) {
	if len(terms) == 0 {
		if rhs < 0 {
			m.unsat = true
		}
		return
	}
	lits, weights := split(terms)
	m.constrs = append(m.constrs, gs.LtEq(lits, weights, rhs))
}

// AddLinearEq adds the constraint sum(coeff*var) == rhs.
func (m *Model) AddLinearEq(terms []Term, rhs int) {
	if len(terms) == 0 {
		if rhs != 0 {
			m.unsat = true
		}
		return
	}
	lits, weights := split(terms)
	m.constrs = append(m.constrs, gs.Eq(lits, weights, rhs)...)
}

// AddAtMost constrains at most k of the given variables to be true.
func (m *Model) AddAtMost(vars []Var, k int) {
	if len(vars) == 0 {
		return
	}
	lits := make([]int, len(vars))
	for i, v := range vars {
		lits[i] = int(v)
	}
	m.constrs = append(m.constrs, gs.AtMost(lits, k))
}

// Minimize adds terms to the cost function. Repeated variables accumulate.
func (m *Model) Minimize(terms []Term) {
	for _, t := range terms {
		if i, ok := m.costIdx[t.Var]; ok {
			m.costWeights[i] += t.Coeff
			continue
		}
		m.costIdx[t.Var] = len(m.costVars)
		m.costVars = append(m.costVars, t.Var)
		m.costWeights = append(m.costWeights, t.Coeff)
	}
}

type Solution struct {
	Status Status
	Cost   int
	values []bool
}

// Value reports the assignment of v. False for non-Optimal/Feasible solutions.
func (s *Solution) Value(v Var) bool {
	if s.values == nil || int(v) > len(s.values) {
		return false
	}
	return s.values[int(v)-1]
}

func split(terms []Term) (lits []int, weights []int) {
	lits = make([]int, len(terms))
	weights = make([]int, len(terms))
	for i, t := range terms {
		lits[i] = int(t.Var)
		weights[i] = t.Coeff
	}
	return lits, weights
}

// Solve searches for a minimum-cost assignment. The engine itself is not
// interruptible, so the budget is enforced between engine rounds: one solve of
// the hard constraints establishes an incumbent, then the optimal cost is
// binary-searched by re-solving under a tightening cost bound. An Unsat round
// raises the proven floor, a Sat round lowers the incumbent; when they meet
// the incumbent is optimal. Running out of budget or ctx mid-search returns
// the incumbent as Feasible. The workers hint is accepted for configuration
// symmetry; the current engine searches single-threaded.
func (m *Model) Solve(ctx context.Context, timeLimit time.Duration, workers int) *Solution {
	if m.unsat {
		return &Solution{Status: Infeasible}
	}
	if ctx.Err() != nil {
		return &Solution{Status: Unknown}
	}
	deadline := time.Now().Add(timeLimit)

	best, ok := m.solveOnce(nil)
	if !ok {
		return &Solution{Status: Infeasible}
	}
	bestCost := m.evalCost(best)

	// only negative weights can pull the cost below zero
	floor := 0
	for _, w := range m.costWeights {
		if w < 0 {
			floor += w
		}
	}

	for bestCost > floor {
		if ctx.Err() != nil || !time.Now().Before(deadline) {
			return &Solution{Status: Feasible, Cost: bestCost, values: best}
		}

		bound := floor + (bestCost-1-floor)/2
		values, ok := m.solveOnce(&bound)
		if !ok {
			floor = bound + 1
			continue
		}
		best = values
		bestCost = m.evalCost(best)
	}

	return &Solution{Status: Optimal, Cost: bestCost, values: best}
}

// solveOnce runs one engine round over the hard constraints, plus a cost
// upper bound when given. Returns the assignment indexed by variable.
func (m *Model) solveOnce(bound *int) ([]bool, bool) {
	constrs := m.constrs
	if bound != nil {
		lits := make([]int, len(m.costVars))
		weights := make([]int, len(m.costWeights))
		for i, v := range m.costVars {
			lits[i] = int(v)
			weights[i] = m.costWeights[i]
		}
		constrs = make([]gs.PBConstr, len(m.constrs), len(m.constrs)+1)
		copy(constrs, m.constrs)
		constrs = append(constrs, gs.LtEq(lits, weights, *bound))
	}

	s := gs.New(gs.ParsePBConstrs(constrs))
	if s.Solve() != gs.Sat {
		return nil, false
	}

	// the engine's model is 0-indexed: entry i holds variable i+1
	values := make([]bool, m.nbVars)
	for i, val := range s.Model() {
		if i < m.nbVars {
			values[i] = val
		}
	}
	return values, true
}

func (m *Model) evalCost(values []bool) int {
	cost := 0
	for i, v := range m.costVars {
		if values[int(v)-1] {
			cost += m.costWeights[i]
		}
	}
	return cost
}
