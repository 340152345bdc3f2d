// Package model provides domain models and DTOs for the admin module.
package model

// Admin represents an admin principal.
// ActiveSessionToken is the only token honored for this principal at any
// instant; every successful login overwrites it.
type Admin struct {
	ID                 string  `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Username           string  `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash       string  `gorm:"column:password_hash;not null" json:"-"`
	ActiveSessionToken *string `gorm:"column:active_session_token" json:"-"`
}

// TableName specifies the table name for GORM.
func (Admin) TableName() string {
	return "admins"
}
