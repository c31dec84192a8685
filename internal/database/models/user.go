package models

// User represents a registered account. The password hash never leaves the
// database layer; the json tag strips it from every serialized response.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null;size:100"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
