package database

import (
	"errors"
	"log"
	"pos_api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial admin account when no user with the
// configured username exists yet.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var admin models.User
	err := db.Where("username = ?", username).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Username: username,
		Password: string(hashedPassword),
		FullName: "Administrator",
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user %q seeded successfully", username)
	return nil
}
