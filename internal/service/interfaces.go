package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for authentication business logic
type AuthServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	Profile(userID uuid.UUID) (*UserResponse, error)
}

// OrganizationServiceInterface defines the interface for organization business logic
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationWithRole, error)
	Get(id uuid.UUID) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// MembershipServiceInterface defines the interface for membership business logic
type MembershipServiceInterface interface {
	Add(organizationID uuid.UUID, req *AddMemberRequest) (*MembershipResponse, error)
	UpdateRole(organizationID, membershipID uuid.UUID, req *UpdateMemberRoleRequest) (*MembershipResponse, error)
	Remove(organizationID, membershipID uuid.UUID) error
	ListByOrganization(organizationID uuid.UUID) ([]MembershipResponse, error)
}
