package configs

import (
	"log"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Nom:      "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default restaurant and menu categories so a
// fresh database is usable immediately.
func SeedLookups(db *gorm.DB) error {
	var resto entity.Restaurant
	if err := db.FirstOrCreate(&resto, entity.Restaurant{Nom: "Restaurant"}).Error; err != nil {
		return err
	}

	db.FirstOrCreate(&entity.Categorie{}, entity.Categorie{Nom: "Plats"})
	db.FirstOrCreate(&entity.Categorie{}, entity.Categorie{Nom: "Boissons"})
	db.FirstOrCreate(&entity.Categorie{}, entity.Categorie{Nom: "Desserts"})

	return nil
}
