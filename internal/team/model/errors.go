package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name already
	// exists, regardless of its status.
	ErrTeamExists = errors.New("team name already taken")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPaymentInfoMissing indicates a registration without a transaction
	// reference while payment is required.
	ErrPaymentInfoMissing = errors.New("transaction id required when payment is enabled")
)
