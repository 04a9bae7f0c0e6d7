package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// Role is the caller's coarse role as asserted by the transport layer.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
)

// Principal is the resolved caller: an identity string (phone number for
// sellers, arbitrary login for admins) plus the role it was authenticated
// under.
type Principal struct {
	Identity string
	Role     Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// WithPrincipal stores the caller principal on the request context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// GetPrincipalFromContext retrieves the caller principal set by the auth
// middleware.
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

// ErrorResponse is the standardized error envelope returned by all handlers.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewErrorResponse builds the envelope for a code/message pair.
func NewErrorResponse(code, message string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return &resp
}

// RespondError maps a service-layer error onto the transport status
// vocabulary: not-found -> 404, access-denied -> 403, validation -> 400,
// everything else -> 500.
func RespondError(c echo.Context, err error) error {
	kind := KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindAccessDenied:
		status = http.StatusForbidden
	case KindValidation:
		status = http.StatusBadRequest
	}
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak store internals to clients.
		message = "Internal server error"
	}
	return c.JSON(status, NewErrorResponse(string(kind), message))
}
