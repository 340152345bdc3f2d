package model

import "errors"

// ErrSettingsNotFound indicates that no settings record has been persisted yet.
var ErrSettingsNotFound = errors.New("settings not found")
