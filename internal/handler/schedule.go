package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/scheduler"
	"github.com/f1ction1/GeneratorGrafika/internal/utils"
)

// GenerateSchedule runs the monthly schedule computation for the caller's
// company. The computation is stateless; nothing is persisted, the schedule
// is returned directly. An infeasible model is a plain error response, while
// unresolvable preferences only show up as diagnostics in the meta block.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req domain.ScheduleRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateShiftCatalog(req.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employees, err := h.repository.GetEmployeesByEmployer(*myInfo.EmployerID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(employees) == 0 {
		h.errorResponse(w, r, "no employees registered for this employer")
		return
	}

	gen := scheduler.New(&req, employees, h.holidayCal, scheduler.Options{
		TimeLimit:      time.Duration(h.config.Scheduler.TimeLimit) * time.Second,
		Workers:        h.config.Scheduler.Workers,
		HourWeight:     h.config.Scheduler.HourWeight,
		DefaultPenalty: h.config.Scheduler.DefaultPenalty,
	})

	result, err := gen.Generate(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrInfeasible):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule generated", result)
}
