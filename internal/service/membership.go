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
	"gorm.io/gorm"
)

// MembershipService handles business logic for organization members
type MembershipService struct {
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	validator   *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		users:       users,
		validator:   validator,
	}
}

// AddMemberRequest represents the request to add a member to an organization
type AddMemberRequest struct {
	Email string      `json:"email" validate:"required,email"`
	Role  models.Role `json:"role,omitempty"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

// MembershipResponse represents a membership in API responses
type MembershipResponse struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	OrganizationID uuid.UUID     `json:"organization_id"`
	Role           models.Role   `json:"role"`
	CreatedAt      string        `json:"created_at"`
	User           *UserResponse `json:"user,omitempty"`
}

// Add creates a membership for the user identified by email. The role
// defaults to MEMBER; the composite unique index on (user, organization) is
// the authority on duplicates.
func (s *MembershipService) Add(organizationID uuid.UUID, req *AddMemberRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	if !role.IsValid() {
		return nil, &apperrors.ValidationError{Field: "role", Message: "must be one of OWNER, ADMIN, MEMBER"}
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	membership := &models.Membership{
		UserID:         user.ID,
		OrganizationID: organizationID,
		Role:           role,
	}

	if err := s.memberships.Create(membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	membership.User = user
	resp := toMembershipResponse(membership)
	return &resp, nil
}

// UpdateRole changes the role of a membership, scoped to the organization.
func (s *MembershipService) UpdateRole(organizationID, membershipID uuid.UUID, req *UpdateMemberRoleRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Role.IsValid() {
		return nil, &apperrors.ValidationError{Field: "role", Message: "must be one of OWNER, ADMIN, MEMBER"}
	}

	membership, err := s.memberships.GetByIDInOrganization(membershipID, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	membership.Role = req.Role
	if err := s.memberships.Update(membership); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	resp := toMembershipResponse(membership)
	return &resp, nil
}

// Remove deletes a membership, scoped to the organization.
func (s *MembershipService) Remove(organizationID, membershipID uuid.UUID) error {
	membership, err := s.memberships.GetByIDInOrganization(membershipID, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if err := s.memberships.Delete(membership.ID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	return nil
}

// ListByOrganization returns all memberships of an organization with their users
func (s *MembershipService) ListByOrganization(organizationID uuid.UUID) ([]MembershipResponse, error) {
	memberships, err := s.memberships.GetByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	resp := make([]MembershipResponse, 0, len(memberships))
	for i := range memberships {
		resp = append(resp, toMembershipResponse(&memberships[i]))
	}
	return resp, nil
}

func toMembershipResponse(m *models.Membership) MembershipResponse {
	resp := MembershipResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
	if m.User != nil {
		user := toUserResponse(m.User)
		resp.User = &user
	}
	return resp
}
