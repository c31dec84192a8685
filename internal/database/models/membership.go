package models

import (
	"github.com/google/uuid"
)

// Role represents the privilege level of a member within an organization.
// Exactly one role per membership; OWNER > ADMIN > MEMBER.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Privilege returns the ordered privilege rank of the role. Higher outranks
// lower; an unknown role ranks zero.
func (r Role) Privilege() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	}
	return 0
}

// AtLeast reports whether the role holds at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return r.Privilege() >= other.Privilege()
}

// Membership binds one user to one organization with exactly one role.
// The composite unique index enforces a single role per (user, organization).
type Membership struct {
	BaseModel
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org;index" validate:"required"`
	Role           Role      `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'" validate:"required"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
