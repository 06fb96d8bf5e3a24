package bootstrap

import (
	"log"

	"fitfam.app/familyfit/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.DailyChecklist{},
		&model.WeightEntry{},
	)
}

// SeedAdminUser creates the admin account, or makes sure an existing account
// with that username keeps its admin flag.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	var existing model.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		if existing.IsAdmin {
			log.Println("Admin user already exists, skipping seed")
			return nil
		}
		existing.IsAdmin = true
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
		log.Println("Admin user privileges confirmed")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Username:     username,
		PasswordHash: string(hashedPasswordBytes),
		Name:         "Admin",
		IsAdmin:      true,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Printf("   Username: %s", username)

	return nil
}
