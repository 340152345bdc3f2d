// Package model provides data transfer objects for the public stats module.
package model

// Stats is the public capacity/status projection consumed by the
// countdown and registration-status widget.
type Stats struct {
	TeamsRegistered   int  `json:"teamsRegistered"`
	SeatsEmpty        int  `json:"seatsEmpty"`
	TotalSeats        int  `json:"totalSeats"`
	MembersPerTeam    int  `json:"membersPerTeam"`
	PaymentRequired   bool `json:"paymentRequired"`
	RegistrationsOpen bool `json:"registrationsOpen"`
}
