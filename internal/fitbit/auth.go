package fitbit

import (
	"errors"
	"time"
)

// DefaultUserID is the single tracked account. The whole integration is
// built for one owner, so every auth and workout row carries this id.
const DefaultUserID = "me"

var ErrNotConnected = errors.New("fitbit not connected")

// Auth holds the stored OAuth credentials for the tracked account.
type Auth struct {
	UserID       string    `json:"userId"`
	FitbitUserID string    `json:"fitbitUserId"`
	Scope        string    `json:"scope"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Expired reports whether the access token is expired or about to expire.
func (a *Auth) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now.Add(time.Minute))
}
