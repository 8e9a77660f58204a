package database

import (
	"log"
	"strings"

	"hr-portal/internal/credentials"
	"hr-portal/internal/models"

	"gorm.io/gorm"
)

type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// DemoAccount is a seeded account that may sign in with any password
// when demo login is enabled.
type DemoAccount struct {
	Username string
	Email    string
	Phone    string
	FullName string
	Role     models.UserRole
	Password string
}

var DemoAccounts = []DemoAccount{
	{
		Username: "admin",
		Email:    "admin@company.com",
		Phone:    "0123456789",
		FullName: "System Administrator",
		Role:     models.RoleAdmin,
		Password: "Admin123!",
	},
	{
		Username: "hr",
		Email:    "hr@company.com",
		Phone:    "0123456788",
		FullName: "HR Manager",
		Role:     models.RoleHR,
		Password: "Hr123456!",
	},
}

// IsDemoEmail reports whether email belongs to one of DemoAccounts.
func IsDemoEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range DemoAccounts {
		if a.Email == email {
			return true
		}
	}
	return false
}

var defaultPositions = []models.Position{
	{Title: "Backend Developer", Department: "Engineering", Description: "Go services and APIs", IsOpen: true},
	{Title: "Frontend Developer", Department: "Engineering", Description: "Web UI", IsOpen: true},
	{Title: "HR Specialist", Department: "Human Resources", Description: "Recruitment and onboarding", IsOpen: true},
}

// Seed creates the default admin, the demo HR account and a few open positions.
// Existing rows are left alone.
func Seed(db *gorm.DB, opts SeedOptions) {
	createDefaultAdmin(db, opts)
	seedDemoUsers(db)
	seedPositions(db)
}

func createDefaultAdmin(db *gorm.DB, opts SeedOptions) {
	admin := DemoAccounts[0]
	if opts.AdminEmail != "" {
		admin.Email = strings.ToLower(opts.AdminEmail)
	}
	if opts.AdminPassword != "" {
		admin.Password = opts.AdminPassword
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := createSeedUser(db, admin); err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}
	log.Printf("created default admin user: %s", admin.Email)
}

func seedDemoUsers(db *gorm.DB) {
	for _, a := range DemoAccounts[1:] {
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ? OR username = ?", a.Email, a.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", a.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := createSeedUser(db, a); err != nil {
			log.Printf("failed to create seed user %s: %v", a.Email, err)
			continue
		}
		log.Printf("created seed user: %s (role=%s)", a.Email, a.Role)
	}
}

func createSeedUser(db *gorm.DB, a DemoAccount) error {
	hash, err := credentials.HashPassword(a.Password)
	if err != nil {
		return err
	}
	user := models.User{
		Username:     a.Username,
		Email:        a.Email,
		Phone:        a.Phone,
		FullName:     a.FullName,
		Role:         a.Role,
		Status:       models.UserActive,
		PasswordHash: hash,
	}
	return Translate(db.Create(&user).Error)
}

func seedPositions(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Position{}).Count(&count).Error; err != nil {
		log.Printf("failed to check positions: %v", err)
		return
	}
	if count > 0 {
		return
	}
	positions := append([]models.Position(nil), defaultPositions...)
	if err := db.Create(&positions).Error; err != nil {
		log.Printf("failed to seed positions: %v", err)
	}
}
