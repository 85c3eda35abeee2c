package middleware

import (
	"errors"

	"talenthub/internal/domain/account"
	"talenthub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RoleMiddleware struct {
	accounts account.Repository
}

func NewRoleMiddleware(accounts account.Repository) *RoleMiddleware {
	return &RoleMiddleware{accounts: accounts}
}

// RequireHiringManager gates handlers behind the hiring_manager role. The
// account is re-fetched from the store rather than trusted from the token:
// tokens are self-contained and can outlive an account deletion, so
// authorization must check current state.
func (m *RoleMiddleware) RequireHiringManager() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if account.Role(role) != account.RoleHiringManager {
			return NewAppError(fiber.StatusForbidden,
				"Access denied. Only hiring managers can perform this action.", nil, nil)
		}

		accountID, ok := c.Locals(CtxAccountIDKey).(uuid.UUID)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
		}

		mgr, err := m.accounts.GetByID(c.Context(), accountID)
		if err != nil {
			if errors.Is(err, account.ErrNotFound) {
				return NewAppError(fiber.StatusNotFound, "Hiring manager not found", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "Error verifying hiring manager", nil, err)
		}
		if mgr.Role != account.RoleHiringManager {
			return NewAppError(fiber.StatusForbidden,
				"Access denied. Only hiring managers can perform this action.", nil, nil)
		}

		c.Locals(CtxAccountKey, mgr)
		return c.Next()
	}
}
