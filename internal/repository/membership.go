package repository

import (
	"orghub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a new membership. The composite unique index on
// (user_id, organization_id) is the authority on duplicates; a collision
// comes back as gorm.ErrDuplicatedKey.
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByIDInOrganization retrieves a membership by ID scoped to an organization,
// so one tenant cannot address another tenant's membership rows.
func (r *MembershipRepository) GetByIDInOrganization(id, organizationID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("User").First(&membership, "id = ? AND organization_id = ?", id, organizationID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByUserAndOrganization retrieves the membership binding a user to an organization
func (r *MembershipRepository) GetByUserAndOrganization(userID, organizationID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND organization_id = ?", userID, organizationID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByUser retrieves all memberships of a user with their organizations
func (r *MembershipRepository) GetByUser(userID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("Organization").Find(&memberships, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByOrganization retrieves all memberships of an organization with their users
func (r *MembershipRepository) GetByOrganization(organizationID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("User").Find(&memberships, "organization_id = ?", organizationID).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Update saves a membership
func (r *MembershipRepository) Update(membership *models.Membership) error {
	return r.db.Save(membership).Error
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}
