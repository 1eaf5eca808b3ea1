package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"tableside/entity"
)

// First-run admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed the order-status lookup rows. Idempotent.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{
		entity.StatusPending,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusDelivered,
		entity.StatusCancelled,
	} {
		if err := db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
