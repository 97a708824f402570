// Package scheduler builds and solves the monthly shift assignment model: a
// boolean variable per (employee, scheduled day, shift), hard coverage, rest
// and consecutive-day constraints, and a soft objective that tracks each
// employee's contracted hours and honors day-off preferences when possible.
// The pipeline is a pure request-scoped computation; nothing is shared or
// cached between invocations.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/holidays"
	"github.com/f1ction1/GeneratorGrafika/internal/solver"
)

// ErrInfeasible is returned when the hard constraints admit no assignment.
// Retrying with the same inputs cannot succeed; the caller must loosen the
// rules, add staff or reduce coverage requirements.
var ErrInfeasible = errors.New("can't generate schedule using these parameters")

type Options struct {
	TimeLimit      time.Duration // solve budget, default 5 minutes
	Workers        int           // search parallelism hint, default 8
	HourWeight     int           // weight of hour deviations vs preferences, default 2
	DefaultPenalty int           // penalty for preferences without a priority, default 50
}

func (o Options) withDefaults() Options {
	if o.TimeLimit <= 0 {
		o.TimeLimit = 5 * time.Minute
	}
	if o.Workers <= 0 {
		o.Workers = 8
	}
	if o.HourWeight <= 0 {
		o.HourWeight = 2
	}
	if o.DefaultPenalty <= 0 {
		o.DefaultPenalty = 50
	}
	return o
}

type Scheduler struct {
	request   *domain.ScheduleRequest
	employees []*domain.Employee
	calendar  holidays.Calendar
	options   Options
}

func New(req *domain.ScheduleRequest, employees []*domain.Employee, cal holidays.Calendar, opts Options) *Scheduler {
	return &Scheduler{
		request:   req,
		employees: employees,
		calendar:  cal,
		options:   opts.withDefaults(),
	}
}

// Generate runs the full pipeline: resolve the day axis, build the hard
// constraints, compose the objective, solve within the time budget and
// project the assignment back onto the calendar. Only optimal or feasible
// solve outcomes produce a schedule; anything else is ErrInfeasible with no
// partial result.
func (s *Scheduler) Generate(ctx context.Context) (*domain.ScheduleResponse, error) {
	req := s.request

	rules := req.Rules
	if rules.MinRestHours <= 0 {
		rules.MinRestHours = 11
	}

	cal := resolveCalendar(req.Year, req.Month, req.CompanyWorkMode, req.HolidaysMode, s.calendar)
	baseline := fullTimeHours(req.Year, req.Month, s.calendar)

	model := buildModel(s.employees, req.Shifts, rules, cal)
	diagnostics := model.composeObjective(baseline, req.Preferences, s.options.HourWeight, s.options.DefaultPenalty)

	sol := model.pb.Solve(ctx, s.options.TimeLimit, s.options.Workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch sol.Status {
	case solver.Optimal, solver.Feasible:
	default:
		return nil, ErrInfeasible
	}

	return model.project(sol, baseline, diagnostics), nil
}
