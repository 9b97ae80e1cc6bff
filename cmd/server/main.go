package main

import (
	"log"

	"github.com/joho/godotenv"

	"finance_backend/internal/app/router"
	authadapters "finance_backend/internal/feature/auth/adapters"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	authusecase "finance_backend/internal/feature/auth/usecase"
	categoryadapters "finance_backend/internal/feature/category/adapters"
	categoryhandler "finance_backend/internal/feature/category/transport/handler"
	categoryusecase "finance_backend/internal/feature/category/usecase"
	transactionadapters "finance_backend/internal/feature/transaction/adapters"
	transactionhandler "finance_backend/internal/feature/transaction/transport/handler"
	transactionusecase "finance_backend/internal/feature/transaction/usecase"
	"finance_backend/internal/platform/config"
	platformdb "finance_backend/internal/platform/db"
	jwtmw "finance_backend/internal/platform/jwt"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	db := platformdb.OpenDB(cfg)

	// Token service
	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	userRepo := authadapters.NewUserPostgres(db)
	categoryRepo := categoryadapters.NewCategoryPostgres(db)
	transactionRepo := transactionadapters.NewTransactionPostgres(db)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	transactionUC := transactionusecase.NewTransactionUsecase(transactionRepo, categoryRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)
	transactionH := transactionhandler.NewTransactionHandler(transactionUC)

	// Identity gate: verifies the token and attaches the user to the request.
	gate := jwtmw.AuthRequired(tokens, userRepo)

	r := router.NewRouter(authH, categoryH, transactionH, gate)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
