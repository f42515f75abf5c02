package model

import "time"

// TokenInspector reads claims from an access token without verifying it.
type TokenInspector interface {
	Expiry(token string) (time.Time, bool)
}
