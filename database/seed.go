package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"workforce_backend/internal/auth"
	"workforce_backend/internal/config"
	"workforce_backend/internal/logger"
	"workforce_backend/internal/models"
)

// Seed заполняет справочники базовыми значениями и создаёт суперпользователя.
// Повторный запуск безопасен: существующие записи не трогаются.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedLookups(db); err != nil {
		return err
	}
	return seedSuperuser(db, cfg)
}

func seedLookups(db *gorm.DB) error {
	for _, name := range []string{models.RoleEmployer, models.RoleEmployee, models.RoleSuperuser} {
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&models.Role{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", name, err)
		}
	}

	for _, name := range []string{models.StatusTypeNotActive, models.StatusTypeActive} {
		if err := db.Where(models.StatusType{Name: name}).FirstOrCreate(&models.StatusType{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed status type %q: %w", name, err)
		}
	}

	for _, name := range []string{models.PaymentStatusPending, models.PaymentStatusExecuted, models.PaymentStatusRejected} {
		if err := db.Where(models.PaymentStatus{Name: name}).FirstOrCreate(&models.PaymentStatus{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed payment status %q: %w", name, err)
		}
	}

	return nil
}

func seedSuperuser(db *gorm.DB, cfg *config.Config) error {
	suEmail := cfg.Superuser.Email
	suPassword := cfg.Superuser.Password

	if suEmail == "" || suPassword == "" {
		logger.Warn("SU_EMAIL or SU_PASSWORD is not set. Skipping superuser seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", suEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Superuser already exists. Skipping creation.", "email", suEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for superuser: %w", result.Error)
	}

	logger.Warn("No superuser found. Creating...", "email", suEmail)

	var role models.Role
	if err := db.Where("name = ?", models.RoleSuperuser).First(&role).Error; err != nil {
		return fmt.Errorf("superuser role is missing: %w", err)
	}
	var status models.StatusType
	if err := db.Where("name = ?", models.StatusTypeActive).First(&status).Error; err != nil {
		return fmt.Errorf("active status type is missing: %w", err)
	}

	hashed, err := auth.HashPassword(suPassword)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	su := &models.User{
		Email:        suEmail,
		PasswordHash: hashed,
		Phone:        cfg.Superuser.Phone,
		RoleID:       role.ID,
		StatusTypeID: status.ID,
	}
	if err := db.Create(su).Error; err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	logger.Info("Superuser created", "email", suEmail)
	return nil
}
