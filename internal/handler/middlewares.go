package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/emsys-dev/employee-manager/backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog mangles multi-line stack traces
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// auth expects an Authorization header of the exact form "Bearer <token>" and
// attaches the decoded identity to the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.errorResponse(w, r, http.StatusUnauthorized, "No token provided")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			h.errorResponse(w, r, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := h.tokens.Verify(parts[1])
		if err != nil {
			h.errorResponse(w, r, http.StatusUnauthorized, "Token invalid or expired")
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			h.errorResponse(w, r, http.StatusUnauthorized, "Token invalid or expired")
			return
		}

		identity := &Identity{
			ID:       accountID,
			Username: claims.Username,
			Role:     domain.Role(claims.Role),
		}

		ctx := context.WithValue(r.Context(), IdentityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// employee resolves the {id} URL param and loads the record for downstream
// handlers. Anything that does not resolve to a stored employee is a 404.
func (h *Handler) employee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeIDParam := chi.URLParam(r, "id")
		employeeID, err := strconv.ParseInt(employeeIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusNotFound, "Employee not found")
			return
		}

		employee, err := h.repository.GetEmployeeByID(employeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, "Employee not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeCtxKey, employee)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
