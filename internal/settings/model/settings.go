// Package model provides domain models and DTOs for the settings module.
package model

// SingletonKey is the primary key of the one settings row that ever exists.
const SingletonKey = "main"

// Settings is the singleton configuration record governing admission policy.
type Settings struct {
	Singleton         string   `gorm:"primaryKey;column:singleton;type:varchar(16)" json:"-"`
	MaxTeams          int      `gorm:"column:max_teams;not null" json:"maxTeams"`
	MembersPerTeam    int      `gorm:"column:members_per_team;not null" json:"membersPerTeam"`
	PaymentRequired   bool     `gorm:"column:payment_required;not null" json:"paymentRequired"`
	RegistrationsOpen bool     `gorm:"column:registrations_open;not null" json:"registrationsOpen"`
	PaymentAmount     *float64 `gorm:"column:payment_amount" json:"paymentAmount,omitempty"`
	UpiID             *string  `gorm:"column:upi_id" json:"upiId,omitempty"`
}

// TableName specifies the table name for GORM.
func (Settings) TableName() string {
	return "settings"
}

// Defaults returns the implicit settings used when no record is persisted.
func Defaults() Settings {
	return Settings{
		Singleton:         SingletonKey,
		MaxTeams:          50,
		MembersPerTeam:    3,
		PaymentRequired:   true,
		RegistrationsOpen: true,
	}
}
