package model

// MemberInput represents one member in a registration request.
type MemberInput struct {
	Name   string `json:"name" binding:"required"`
	SapID  string `json:"sapId" binding:"required"`
	School string `json:"school" binding:"required"`
	Course string `json:"course" binding:"required"`
	Year   int    `json:"year" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}

// RegisterTeamRequest represents the public registration request body.
// Transaction details are optional here; the admission evaluator requires
// them only when payment is enabled in the current settings.
type RegisterTeamRequest struct {
	TeamName             string        `json:"teamName" binding:"required"`
	TeamLeaderName       string        `json:"teamLeaderName" binding:"required"`
	TeamLeaderPhone      string        `json:"teamLeaderPhone" binding:"required"`
	Members              []MemberInput `json:"members" binding:"required,dive"`
	TransactionID        string        `json:"transactionId"`
	PaymentScreenshotURL string        `json:"paymentScreenshotUrl"`
}
