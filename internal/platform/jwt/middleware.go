package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/auth/domain/entity"
	"finance_backend/internal/feature/auth/usecase"
)

// ContextUser is the gin context key under which the authenticated user's
// public projection is stored.
const ContextUser = "usuario"

// TokenVerifier validates a bearer token and resolves the user ID it carries.
// Defined by the consumer; implemented by TokenService.
type TokenVerifier interface {
	VerifyToken(token string) (uint, error)
}

// UserResolver loads the user referenced by a verified token.
// Implemented by the auth feature's repository.
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a middleware that enforces authentication on every
// protected route. It strips the Bearer prefix, verifies the token, resolves
// the referenced user and stores the credential-free projection in the
// context. Header and token problems fail with 400, a vanished user with 404;
// nothing falls through to the handlers.
func AuthRequired(verifier TokenVerifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				api.ErrorResponse{Mensagem: "É necessário utilizar um método de autenticação."})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				api.ErrorResponse{Mensagem: "Token não informado."})
			return
		}

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: err.Error()})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound,
					api.ErrorResponse{Mensagem: "O usuário não foi encontrado."})
				return
			}
			slog.Warn("auth user lookup failed", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusBadRequest, err.Error())
			return
		}

		c.Set(ContextUser, user.Public())
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *gin.Context) (entity.PublicUser, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return entity.PublicUser{}, false
	}
	user, ok := v.(entity.PublicUser)
	return user, ok
}
