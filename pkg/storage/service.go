package storage

import (
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

// Service persists the device identity across restarts: who we are
// (user id, display name) and what the server gave us (auth token,
// session token).
type Service interface {
	Initialize() error

	UserID() protocol.UserID
	SetUserID(id protocol.UserID) error

	DisplayName() string
	SetDisplayName(name string) error

	AuthToken() string
	SetAuthToken(token string) error

	SessionToken() string
	SetSessionToken(token string) error

	ResetIdentity() error
}
