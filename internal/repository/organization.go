package repository

import (
	"orghub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates an organization and its OWNER membership in one
// transaction, so an organization never exists without an owner. A slug
// collision surfaces as gorm.ErrDuplicatedKey from the insert.
func (r *OrganizationRepository) CreateWithOwner(org *models.Organization, ownerID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		membership := &models.Membership{
			UserID:         ownerID,
			OrganizationID: org.ID,
			Role:           models.RoleOwner,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetWithMembers retrieves an organization with its memberships and their users
func (r *OrganizationRepository) GetWithMembers(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Preload("Memberships").Preload("Memberships.User").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update saves an organization. Slug uniqueness is enforced by the index.
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization; memberships go with it via FK cascade.
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}
