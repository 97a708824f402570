package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExactlyOne(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	y := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}, {y, 1}}, 1)

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.NotEqual(t, sol.Value(x), sol.Value(y))
}

func TestMinimizePicksCheaperVariable(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	y := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}, {y, 1}}, 1)
	m.Minimize([]Term{{x, 5}, {y, 1}})

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.False(t, sol.Value(x))
	assert.True(t, sol.Value(y))
	assert.Equal(t, 1, sol.Cost)
}

func TestMinimizeAccumulatesRepeatedVariables(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	y := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}, {y, 1}}, 1)
	// x costs 2+2=4, y costs 3
	m.Minimize([]Term{{x, 2}, {y, 3}})
	m.Minimize([]Term{{x, 2}})

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.True(t, sol.Value(y))
	assert.Equal(t, 3, sol.Cost)
}

func TestAtMost(t *testing.T) {
	m := NewModel()
	vars := []Var{m.NewBoolVar(), m.NewBoolVar(), m.NewBoolVar()}
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{v, 1}
	}
	m.AddLinearEq(terms, 2)
	m.AddAtMost(vars[:2], 1)

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.True(t, sol.Value(vars[2]))
	count := 0
	for _, v := range vars {
		if sol.Value(v) {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestInfeasible(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	y := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}, {y, 1}}, 2)
	m.AddAtMost([]Var{x, y}, 1)

	sol := m.Solve(context.Background(), time.Minute, 1)

	assert.Equal(t, Infeasible, sol.Status)
}

func TestEmptyConstraintFoldsToInfeasible(t *testing.T) {
	m := NewModel()
	m.AddLinearEq(nil, 2)

	// the engine is never invoked, so an absurd time limit is fine
	sol := m.Solve(context.Background(), 0, 1)

	assert.Equal(t, Infeasible, sol.Status)
}

func TestEmptyConstraintWithZeroRhsIsDropped(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	m.AddLinearEq(nil, 0)
	m.AddLinearLe(nil, 0)
	m.AddLinearEq([]Term{{x, 1}}, 1)

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.True(t, sol.Value(x))
}

func TestForcedAssignmentsKeepTheirVariables(t *testing.T) {
	// pin each variable to a distinct value so any index shift between the
	// engine's model and Value would flip at least one assertion
	m := NewModel()
	x1 := m.NewBoolVar()
	x2 := m.NewBoolVar()
	x3 := m.NewBoolVar()
	m.AddLinearEq([]Term{{x1, 1}}, 1)
	m.AddLinearEq([]Term{{x2, 1}}, 0)
	m.AddLinearEq([]Term{{x3, 1}}, 1)

	sol := m.Solve(context.Background(), time.Minute, 1)

	require.Equal(t, Optimal, sol.Status)
	assert.True(t, sol.Value(x1))
	assert.False(t, sol.Value(x2))
	assert.True(t, sol.Value(x3))
}

func TestExhaustedBudgetReturnsIncumbent(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	y := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}, {y, 1}}, 1)
	m.Minimize([]Term{{x, 5}, {y, 1}})

	// a zero budget allows the initial round but no bound tightening
	sol := m.Solve(context.Background(), 0, 1)

	require.Equal(t, Feasible, sol.Status)
	assert.NotEqual(t, sol.Value(x), sol.Value(y))
	assert.Contains(t, []int{1, 5}, sol.Cost)
}

func TestCancelledContextBeforeSearch(t *testing.T) {
	m := NewModel()
	x := m.NewBoolVar()
	m.AddLinearEq([]Term{{x, 1}}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol := m.Solve(ctx, time.Minute, 1)

	assert.Equal(t, Unknown, sol.Status)
	assert.False(t, sol.Value(x))
}

func TestValueOnInfeasibleSolution(t *testing.T) {
	sol := &Solution{Status: Infeasible}

	assert.False(t, sol.Value(Var(1)))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", Optimal.String())
	assert.Equal(t, "feasible", Feasible.String())
	assert.Equal(t, "infeasible", Infeasible.String())
	assert.Equal(t, "unknown", Unknown.String())
}
