package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
)

func (h *Handler) CreateEmployer(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.EmployerID != nil {
		h.errorResponse(w, r, "user already belongs to an employer")
		return
	}

	var req struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employer := &domain.Employer{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: myInfo.ID,
	}

	if err := h.repository.CreateEmployer(employer, myInfo); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employers_owner_id_key":
				h.errorResponse(w, r, "owner can have only one company")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employer created", employer)
}

func (h *Handler) GetMyEmployer(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.EmployerID == nil {
		h.errorResponse(w, r, "user does not belong to an employer")
		return
	}

	employer, err := h.repository.GetEmployerByID(*myInfo.EmployerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employer is not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employer fetched", employer)
}

func (h *Handler) UpdateMyEmployer(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.EmployerID == nil {
		h.errorResponse(w, r, "user does not belong to an employer")
		return
	}

	employer, err := h.repository.GetEmployerByID(*myInfo.EmployerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employer is not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		employer.Name = *req.Name
	}
	if req.Address != nil {
		employer.Address = *req.Address
	}

	if err := h.repository.UpdateEmployer(employer); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employer updated", employer)
}
