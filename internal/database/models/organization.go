package models

// Organization represents a tenant. The slug is derived from the name and is
// globally unique; the unique index is the authority on collisions, any
// existence pre-check is advisory only.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
