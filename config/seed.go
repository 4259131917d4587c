package config

import (
	"log"

	"khanabook-pos/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the initial staff accounts on an empty database.
func SeedUsers() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Database already contains users. Skipping seeding.")
		return
	}

	log.Println("Seeding initial staff accounts...")

	seed := []struct {
		name     string
		email    string
		password string
		phone    string
		role     models.UserRole
	}{
		{"Restaurant Admin", "admin@khanabook.com", "Admin@123", "+919999999998", models.RoleAdmin},
		{"Restaurant Manager", "manager@khanabook.com", "Manager@123", "+919999999997", models.RoleManager},
		{"Chef Ravi Kumar", "chef@khanabook.com", "Chef@123", "+919999999996", models.RoleChef},
		{"Rahul Sharma", "waiter@khanabook.com", "Waiter@123", "+919999999995", models.RoleWaiter},
		{"Priya Singh", "cashier@khanabook.com", "Cashier@123", "+919999999994", models.RoleCashier},
	}

	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", u.email, err)
			continue
		}
		user := models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Phone:        u.phone,
			Active:       true,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", u.email, err)
			continue
		}
		log.Printf("Created user: %s with role: %s", u.email, u.role)
	}

	log.Println("User seeding completed")
}
