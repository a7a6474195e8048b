package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/emsys-dev/employee-manager/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Position   string  `json:"position" validate:"required"`
	Department string  `json:"department" validate:"required"`
	Salary     float64 `json:"salary" validate:"required,gt=0"`
}

// trim normalizes the text fields before validation so whitespace-only input
// fails the required rule.
func (req *employeeRequest) trim() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Position = strings.TrimSpace(req.Position)
	req.Department = strings.TrimSpace(req.Department)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest

	if err := h.readJSON(r, &req); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.trim()
	if err := h.validate.Struct(req); err != nil {
		h.failedValidation(w, r, err)
		return
	}

	isExists, err := h.repository.CheckEmployeeEmailIfExists(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.errorResponse(w, r, http.StatusBadRequest, "Employee with this email already exists")
		return
	}

	employee := &domain.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		// two concurrent creates can both pass the pre-check, the unique
		// constraint is the final arbiter
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "employees_email_key":
			h.errorResponse(w, r, http.StatusBadRequest, "Employee with this email already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, employee)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)
	h.writeJSON(w, r, http.StatusOK, employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest

	if err := h.readJSON(r, &req); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.trim()
	if err := h.validate.Struct(req); err != nil {
		h.failedValidation(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)

	isExists, err := h.repository.CheckOtherEmployeeEmailIfExists(req.Email, employee.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.errorResponse(w, r, http.StatusBadRequest, "Another employee with this email already exists")
		return
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Position = req.Position
	employee.Department = req.Department
	employee.Salary = req.Salary

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "employees_email_key":
			h.errorResponse(w, r, http.StatusBadRequest, "Another employee with this email already exists")
		case errors.Is(err, sql.ErrNoRows):
			// deleted between the middleware load and the update
			h.errorResponse(w, r, http.StatusNotFound, "Employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
