package repository

import (
	"orghub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(org *models.Organization, ownerID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetWithMembers(id uuid.UUID) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByID(id uuid.UUID) (*models.Membership, error)
	GetByIDInOrganization(id, organizationID uuid.UUID) (*models.Membership, error)
	GetByUserAndOrganization(userID, organizationID uuid.UUID) (*models.Membership, error)
	GetByUser(userID uuid.UUID) ([]models.Membership, error)
	GetByOrganization(organizationID uuid.UUID) ([]models.Membership, error)
	Update(membership *models.Membership) error
	Delete(id uuid.UUID) error
}
