// Package model provides domain models and DTOs for the team module.
package model

import "time"

// Status is the team admission state.
type Status string

const (
	// StatusWaitlisted is the initial state of every registered team.
	StatusWaitlisted Status = "waitlisted"
	// StatusApproved marks a team granted a seat, counted against capacity.
	StatusApproved Status = "approved"
)

// Team represents a registered team.
type Team struct {
	ID                   string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	TeamName             string    `gorm:"column:team_name;uniqueIndex;not null" json:"teamName"`
	TeamLeaderName       string    `gorm:"column:team_leader_name;not null" json:"teamLeaderName"`
	TeamLeaderPhone      string    `gorm:"column:team_leader_phone;not null" json:"teamLeaderPhone"`
	Members              []Member  `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"members"`
	Status               Status    `gorm:"column:status;type:varchar(16);not null;default:waitlisted" json:"status"`
	TransactionID        *string   `gorm:"column:transaction_id" json:"transactionId,omitempty"`
	PaymentScreenshotURL *string   `gorm:"column:payment_screenshot_url" json:"paymentScreenshotUrl,omitempty"`
	RegistrationDate     time.Time `gorm:"column:registration_date;not null" json:"registrationDate"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// Member is owned exclusively by its team; it has no independent lifecycle.
// Insertion order is preserved by the serial id.
type Member struct {
	ID     uint   `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	TeamID string `gorm:"column:team_id;type:uuid;not null;index" json:"-"`
	Name   string `gorm:"column:name;not null" json:"name"`
	SapID  string `gorm:"column:sap_id;not null" json:"sapId"`
	School string `gorm:"column:school;not null" json:"school"`
	Course string `gorm:"column:course;not null" json:"course"`
	Year   int    `gorm:"column:year;not null" json:"year"`
	Email  string `gorm:"column:email;not null" json:"email"`
	Phone  string `gorm:"column:phone;not null" json:"phone"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}
