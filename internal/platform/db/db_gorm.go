// Package db opens the PostgreSQL connection and manages startup migration.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "finance_backend/internal/feature/auth/domain/entity"
	categoryentity "finance_backend/internal/feature/category/domain/entity"
	transactionentity "finance_backend/internal/feature/transaction/domain/entity"
	"finance_backend/internal/platform/config"
)

// seedCategories is the fixed reference data inserted once when the
// categorias table is empty.
var seedCategories = []string{
	"Alimentação",
	"Assinaturas e Serviços",
	"Casa",
	"Mercado",
	"Cuidados Pessoais",
	"Educação",
	"Família",
	"Lazer",
	"Pets",
	"Presentes",
	"Roupas",
	"Saúde",
	"Transporte",
	"Salário",
	"Vendas",
	"Outras receitas",
	"Outras despesas",
}

// OpenDB connects to PostgreSQL, retrying for up to a minute so the server
// survives a database that comes up slower than the process.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&categoryentity.Category{},
			&transactionentity.Transaction{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		if err := seed(db); err != nil {
			log.Fatalf("failed to seed categories: %v", err)
		}
	}

	return db
}

// seed inserts the category reference data on a fresh database only.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&categoryentity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]categoryentity.Category, 0, len(seedCategories))
	for _, descricao := range seedCategories {
		categories = append(categories, categoryentity.Category{Descricao: descricao})
	}
	return db.Create(&categories).Error
}
