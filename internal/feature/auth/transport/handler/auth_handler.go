// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/auth/domain/entity"
	"finance_backend/internal/feature/auth/transport/http/dto"
	"finance_backend/internal/feature/auth/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// AuthUsecase defines the account operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, nome, email, senha string) (*entity.PublicUser, error)
	Login(ctx context.Context, email, senha string) (*entity.PublicUser, string, error)
	UpdateProfile(ctx context.Context, userID uint, nome, email, senha string) error
}

// AuthHandler handles HTTP requests for registration, login and profile.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// requiredField returns the per-field missing message, or empty when all
// fields are present. An empty string counts as missing.
func requiredField(nome, email, senha string) string {
	switch {
	case nome == "":
		return "O campo nome é obrigatório!"
	case email == "":
		return "O campo email é obrigatório!"
	case senha == "":
		return "O campo senha é obrigatório!"
	}
	return ""
}

// Signup handles POST /usuario: validates each field, registers the user and
// returns the created user without the credential.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	if msg := requiredField(req.Nome, req.Email, req.Senha); msg != "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: msg})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrCreateUser):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, err.Error())
		}
		return
	}

	slog.Info("user registered", "email", req.Email)
	c.JSON(http.StatusOK, user)
}

// Login handles POST /login: authenticates and returns the user plus a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" || req.Senha == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: "E-mail e senha são obrigatórios!"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Mensagem: err.Error()})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Mensagem: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Usuario: *user, Token: token})
}

// Profile handles GET /usuario: returns the user resolved by the identity gate.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: "O usuário não foi encontrado."})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /usuario: replaces nome, email and senha for the
// authenticated user. Responds with an empty 200 on success.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: "O usuário não foi encontrado."})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	if msg := requiredField(req.Nome, req.Email, req.Senha); msg != "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: msg})
		return
	}

	if err := h.auth.UpdateProfile(c.Request.Context(), user.ID, req.Nome, req.Email, req.Senha); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTakenByOther), errors.Is(err, usecase.ErrUpdateUser):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, err.Error())
		}
		return
	}

	c.Status(http.StatusOK)
}
