package main

import (
	"fmt"
	"log"
	"os"

	"orghub-backend/internal/config"
	"orghub-backend/internal/database"
	"orghub-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed file schema
type UserData struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type OrganizationData struct {
	Name       string       `yaml:"name"`
	Slug       string       `yaml:"slug"`
	OwnerEmail string       `yaml:"owner_email"`
	Members    []MemberData `yaml:"members,omitempty"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type SeedData struct {
	Users         []UserData         `yaml:"users"`
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	data, err := readSeedFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	if err := loadData(db, cfg, data); err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}

	log.Printf("loaded %d users and %d organizations from %s",
		len(data.Users), len(data.Organizations), path)
}

func readSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &data, nil
}

// loadData seeds users first, then organizations with their memberships.
// Existing rows are left alone, so the loader can run repeatedly.
func loadData(db *gorm.DB, cfg *config.Config, data *SeedData) error {
	usersByEmail := make(map[string]*models.User, len(data.Users))

	for _, u := range data.Users {
		var user models.User
		err := db.First(&user, "email = ?", u.Email).Error
		if err == nil {
			usersByEmail[u.Email] = &user
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up user %s: %w", u.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cfg.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}

		user = models.User{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		usersByEmail[u.Email] = &user
		log.Printf("created user %s", u.Email)
	}

	for _, o := range data.Organizations {
		owner, ok := usersByEmail[o.OwnerEmail]
		if !ok {
			return fmt.Errorf("organization %s references unknown owner %s", o.Name, o.OwnerEmail)
		}

		var org models.Organization
		err := db.First(&org, "slug = ?", o.Slug).Error
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{Name: o.Name, Slug: o.Slug}
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&org).Error; err != nil {
					return err
				}
				return tx.Create(&models.Membership{
					UserID:         owner.ID,
					OrganizationID: org.ID,
					Role:           models.RoleOwner,
				}).Error
			})
			if err != nil {
				return fmt.Errorf("failed to create organization %s: %w", o.Name, err)
			}
			log.Printf("created organization %s owned by %s", o.Slug, o.OwnerEmail)
		} else if err != nil {
			return fmt.Errorf("failed to look up organization %s: %w", o.Slug, err)
		}

		for _, m := range o.Members {
			user, ok := usersByEmail[m.Email]
			if !ok {
				return fmt.Errorf("organization %s references unknown member %s", o.Name, m.Email)
			}

			role := models.Role(m.Role)
			if role == "" {
				role = models.RoleMember
			}
			if !role.IsValid() {
				return fmt.Errorf("organization %s member %s has invalid role %q", o.Name, m.Email, m.Role)
			}

			membership := models.Membership{
				UserID:         user.ID,
				OrganizationID: org.ID,
				Role:           role,
			}
			if err := db.Create(&membership).Error; err != nil {
				if err == gorm.ErrDuplicatedKey {
					continue
				}
				return fmt.Errorf("failed to add %s to %s: %w", m.Email, o.Slug, err)
			}
			log.Printf("added %s to %s as %s", m.Email, o.Slug, role)
		}
	}

	return nil
}
