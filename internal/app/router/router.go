// Package router wires the HTTP routes onto their handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "finance_backend/internal/feature/auth/transport/handler"
	categoryhandler "finance_backend/internal/feature/category/transport/handler"
	transactionhandler "finance_backend/internal/feature/transaction/transport/handler"
	platformhandler "finance_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with the public routes and the
// authenticated group guarded by the identity gate.
func NewRouter(authH *authhandler.AuthHandler, categoryH *categoryhandler.CategoryHandler,
	transactionH *transactionhandler.TransactionHandler, gate gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)

	// No authentication required
	r.POST("/usuario", authH.Signup)
	r.POST("/login", authH.Login)

	// Everything below requires a valid bearer token
	auth := r.Group("/")
	auth.Use(gate)
	{
		auth.GET("/usuario", authH.Profile)
		auth.PUT("/usuario", authH.UpdateProfile)

		auth.GET("/categoria", categoryH.List)

		auth.GET("/transacao", transactionH.List)
		auth.GET("/transacao/extrato", transactionH.Extrato)
		auth.GET("/transacao/:id", transactionH.Detail)
		auth.POST("/transacao", transactionH.Create)
		auth.PUT("/transacao/:id", transactionH.Update)
		auth.DELETE("/transacao/:id", transactionH.Delete)
	}

	return r
}
