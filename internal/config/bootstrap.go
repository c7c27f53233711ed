package config

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travel_desk/internal/models"
)

// SeedAdmin provisions the bootstrap admin account if it does not exist yet.
// Safe to run on every start; request-serving code never touches this path.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("user_id = ?", "admin").First(&existing).Error
	if err == nil {
		logrus.Info("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		UserID:     "admin",
		Name:       "Admin",
		Role:       "admin",
		Department: "Administration",
		Password:   string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Info("Admin user created")
	return nil
}
