package service

import (
	"errors"
	"fmt"
	"time"

	"orghub-backend/internal/database/models"
	apperrors "orghub-backend/internal/errors"
	"orghub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgs        repository.OrganizationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:        orgs,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateOrganizationRequest represents the request to rename an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
	Memberships []MembershipResponse `json:"memberships,omitempty"`
}

// OrganizationWithRole is an organization annotated with the caller's role in it
type OrganizationWithRole struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Role      models.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// Create derives the slug from the name and creates the organization together
// with the caller's OWNER membership in one store transaction. The slug's
// unique index is the authority on collisions; the pre-check only gives the
// common case a clean 409 without burning an insert.
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	orgSlug := slug.Make(req.Name)

	existing, err := s.orgs.GetBySlug(orgSlug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSlugTaken
	}

	org := &models.Organization{
		Name: req.Name,
		Slug: orgSlug,
	}

	if err := s.orgs.CreateWithOwner(org, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.Get(org.ID)
}

// ListForUser returns every organization the user belongs to, each annotated
// with the user's role there.
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationWithRole, error) {
	memberships, err := s.memberships.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	orgs := make([]OrganizationWithRole, 0, len(memberships))
	for _, m := range memberships {
		if m.Organization == nil {
			continue
		}
		orgs = append(orgs, OrganizationWithRole{
			ID:        m.Organization.ID,
			Name:      m.Organization.Name,
			Slug:      m.Organization.Slug,
			Role:      m.Role,
			CreatedAt: m.Organization.CreatedAt.Format(time.RFC3339),
			UpdatedAt: m.Organization.UpdatedAt.Format(time.RFC3339),
		})
	}

	return orgs, nil
}

// Get retrieves an organization with its memberships and member users
func (s *OrganizationService) Get(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgs.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	resp := toOrganizationResponse(org)
	return &resp, nil
}

// Update renames an organization, re-deriving its slug. A slug held by a
// different organization is a conflict.
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	org, err := s.orgs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	newSlug := slug.Make(req.Name)

	existing, err := s.orgs.GetBySlug(newSlug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil && existing.ID != org.ID {
		return nil, apperrors.ErrSlugTaken
	}

	org.Name = req.Name
	org.Slug = newSlug

	if err := s.orgs.Update(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	resp := toOrganizationResponse(org)
	return &resp, nil
}

// Delete removes an organization; its memberships cascade with it.
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if _, err := s.orgs.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.orgs.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

func toOrganizationResponse(org *models.Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
		UpdatedAt: org.UpdatedAt.Format(time.RFC3339),
	}
	for i := range org.Memberships {
		resp.Memberships = append(resp.Memberships, toMembershipResponse(&org.Memberships[i]))
	}
	return resp
}
