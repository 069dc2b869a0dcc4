package session

import (
	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

func GenerateUserID() (protocol.UserID, error) {
	userUUID := uuid.New()
	return protocol.UserID(userUUID.String()), nil
}
