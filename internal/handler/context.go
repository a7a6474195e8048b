package handler

import (
	"github.com/emsys-dev/employee-manager/backend/internal/domain"
)

type ContextKey string

var (
	IdentityCtxKey ContextKey = "identity"
	EmployeeCtxKey ContextKey = "employee"
)

// Identity is the decoded session token presented with a protected request.
// It lives on the request context only and is never persisted.
type Identity struct {
	ID       int64
	Username string
	Role     domain.Role
}
