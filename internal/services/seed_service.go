package services

import (
	"context"
	"log"
	"os"
	"strings"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

// SeedProtectedAdmins creates the bootstrap admin accounts on first start.
// Emails come from SEED_ADMIN_EMAILS (comma separated), the shared initial
// password from SEED_ADMIN_PASSWORD. Seeded accounts hold every permission
// and are marked protected, which shields them from the user endpoints.
func SeedProtectedAdmins(ctx context.Context, userRepo repositories.UserRepository) error {
	emails := strings.Split(os.Getenv("SEED_ADMIN_EMAILS"), ",")
	password := os.Getenv("SEED_ADMIN_PASSWORD")

	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		admin := &db_models.User{
			Email:        email,
			PasswordHash: hashedPassword,
			IsActive:     true,
			IsProtected:  true,

			CanManageCustomers:        true,
			CanViewFinancials:         true,
			CanManagePartnershipCodes: true,
			CanViewPartnershipStats:   true,
			CanManageAccess:           true,
		}
		if err := userRepo.Insert(ctx, admin); err != nil {
			return err
		}
		log.Printf("Seeded protected admin account %s", email)
	}

	return nil
}
