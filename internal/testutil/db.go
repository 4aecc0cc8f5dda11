// Package testutil opens throwaway SQLite databases with the full schema
// and seeds common fixtures.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gymfit/internal/infra"
	"gymfit/internal/models/db_models"
)

// NewTestDB returns a migrated database file under t.TempDir().
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gymfit.db")
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustCreate(t testing.TB, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}

func CreateAccount(t testing.TB, db *gorm.DB, username string) *db_models.Account {
	t.Helper()
	acc := &db_models.Account{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     username,
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoO5p1xZ1a7Q9Q9r1u2b1Yk7e6h9d5uR2y",
		Role:         db_models.RoleUser,
		IsActive:     true,
	}
	mustCreate(t, db, acc)
	mustCreate(t, db, &db_models.Profile{AccountID: acc.ID})
	return acc
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *db_models.Category {
	t.Helper()
	c := &db_models.Category{Name: name}
	mustCreate(t, db, c)
	return c
}

func CreateProduct(t testing.TB, db *gorm.DB, categoryID uuid.UUID, name, price string, stock int) *db_models.Product {
	t.Helper()
	p := &db_models.Product{
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
	}
	mustCreate(t, db, p)
	return p
}

func CreatePlan(t testing.TB, db *gorm.DB, name, price string, features ...string) *db_models.Plan {
	t.Helper()
	p := &db_models.Plan{Name: name, Price: decimal.RequireFromString(price)}
	mustCreate(t, db, p)
	for _, f := range features {
		mustCreate(t, db, &db_models.PlanFeature{PlanID: p.ID, Feature: f})
	}
	return p
}

func CreateSchedule(t testing.TB, db *gorm.DB, className, day, at string) *db_models.ClassSchedule {
	t.Helper()
	var class db_models.GymClass
	if err := db.Where("name = ?", className).First(&class).Error; err != nil {
		class = db_models.GymClass{Name: className}
		mustCreate(t, db, &class)
	}
	s := &db_models.ClassSchedule{GymClassID: class.ID, Day: day, Time: at}
	mustCreate(t, db, s)
	s.GymClass = &class
	return s
}

// At returns the unix seconds of a UTC wall-clock time.
func At(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}
