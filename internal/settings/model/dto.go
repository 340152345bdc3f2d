package model

// UpdateSettingsRequest represents a partial settings update. Only non-nil
// fields are applied; the rest keep their prior (or default) values.
type UpdateSettingsRequest struct {
	MaxTeams          *int     `json:"maxTeams"`
	MembersPerTeam    *int     `json:"membersPerTeam"`
	PaymentRequired   *bool    `json:"paymentRequired"`
	RegistrationsOpen *bool    `json:"registrationsOpen"`
	PaymentAmount     *float64 `json:"paymentAmount"`
	UpiID             *string  `json:"upiId"`
}
