package models

import "time"

// SetupRequest is the first-run payload.
type SetupRequest struct {
	Name string `json:"name"`
	// Pin is optional; an empty value leaves the installation unprotected.
	Pin string `json:"pin,omitempty"`
}

// UnlockRequest carries a PIN attempt.
type UnlockRequest struct {
	Pin string `json:"pin"`
}

// SetPinRequest configures a PIN on an unprotected installation.
type SetPinRequest struct {
	Pin string `json:"pin"`
}

// ChangePinRequest replaces the configured PIN.
type ChangePinRequest struct {
	CurrentPin string `json:"current_pin"`
	NewPin     string `json:"new_pin"`
}

// PreferencesUpdate is a partial update; nil fields are left unchanged.
type PreferencesUpdate struct {
	Name         *string   `json:"name,omitempty"`
	SoundEnabled *bool     `json:"soundEnabled,omitempty"`
	Haptics      *bool     `json:"haptics,omitempty"`
	SFX          *bool     `json:"sfx,omitempty"`
	Theme        *string   `json:"theme,omitempty"`
	AudioEnv     *AudioEnv `json:"audioEnv,omitempty"`
	AudioVolume  *float64  `json:"audioVolume,omitempty"`
	AudioOn      *bool     `json:"audioOn,omitempty"`
}

// SessionResponse is returned by endpoints that open a session.
type SessionResponse struct {
	Status Status `json:"status"`
	Token  string `json:"token"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version       string    `json:"version"`
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}
