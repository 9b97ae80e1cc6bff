// Package handler provides the HTTP handlers for the transaction feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/transaction/domain/entity"
	"finance_backend/internal/feature/transaction/transport/http/dto"
	"finance_backend/internal/feature/transaction/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// dateLayouts are the accepted formats for the data field.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// TransactionUsecase defines the transaction operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type TransactionUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.TransactionWithCategory, error)
	Detail(ctx context.Context, userID, id uint) (*entity.TransactionWithCategory, error)
	Create(ctx context.Context, userID uint, descricao string, valor int64, data time.Time, categoriaID uint, tipo string) (*entity.TransactionWithCategory, error)
	Update(ctx context.Context, userID, id uint, descricao string, valor int64, data time.Time, categoriaID uint, tipo string) error
	Delete(ctx context.Context, userID, id uint) error
	Extrato(ctx context.Context, userID uint) (entity.Extrato, error)
}

// TransactionHandler handles HTTP requests for transaction CRUD and extrato.
type TransactionHandler struct {
	uc TransactionUsecase
}

// NewTransactionHandler creates a new TransactionHandler with the injected usecase.
func NewTransactionHandler(uc TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// respondError maps usecase errors onto the contract's status codes:
// validation and write failures on create/delete are 400, everything that
// means "absent or not yours" is 404, and unexpected errors surface their raw
// message with 400.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidTipo),
		errors.Is(err, usecase.ErrCreateTransaction),
		errors.Is(err, usecase.ErrDeleteTransaction):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Mensagem: err.Error()})
	case errors.Is(err, usecase.ErrTransactionNotFound),
		errors.Is(err, usecase.ErrNoTransactionsForUser),
		errors.Is(err, usecase.ErrTransactionNotOwned),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrUpdateTransaction):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Mensagem: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, err.Error())
	}
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// bindRequest parses the body and applies the shared required-field rule.
// It writes the error response itself and reports whether to continue.
func bindRequest(c *gin.Context) (dto.TransactionRequest, time.Time, bool) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return req, time.Time{}, false
	}

	if req.Descricao == "" || req.Valor == 0 || req.Data == "" || req.CategoriaID == 0 || req.Tipo == "" {
		c.JSON(http.StatusBadRequest,
			api.ErrorResponse{Mensagem: "Todos os campos obrigatórios devem ser informados."})
		return req, time.Time{}, false
	}

	data, err := parseDate(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return req, time.Time{}, false
	}

	return req, data, true
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

// List handles GET /transacao.
func (h *TransactionHandler) List(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	rows, err := h.uc.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.TransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, dto.FromEntity(t))
	}
	c.JSON(http.StatusOK, out)
}

// Detail handles GET /transacao/:id.
func (h *TransactionHandler) Detail(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.uc.Detail(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*t))
}

// Create handles POST /transacao and echoes back the created row joined with
// its category.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	req, data, ok := bindRequest(c)
	if !ok {
		return
	}

	t, err := h.uc.Create(c.Request.Context(), user.ID, req.Descricao, req.Valor, data, req.CategoriaID, req.Tipo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*t))
}

// Update handles PUT /transacao/:id. Responds with an empty 200 on success.
func (h *TransactionHandler) Update(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	req, data, ok := bindRequest(c)
	if !ok {
		return
	}

	if err := h.uc.Update(c.Request.Context(), user.ID, id, req.Descricao, req.Valor, data, req.CategoriaID, req.Tipo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /transacao/:id. Responds with an empty 200 on success.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.uc.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Extrato handles GET /transacao/extrato.
func (h *TransactionHandler) Extrato(c *gin.Context) {
	user, _ := jwtmw.CurrentUser(c)

	extrato, err := h.uc.Extrato(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExtratoResponse{Entrada: extrato.Entrada, Saida: extrato.Saida})
}
