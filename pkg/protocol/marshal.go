package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func UnmarshalMessage(payload []byte) (*Message, error) {
	message := Message{}
	err := json.Unmarshal(payload, &message)
	return &message, errors.Wrap(err, "failed to unmarshal message")
}

func UnmarshalTyped[T any](payload []byte, expected MessageType) (*T, error) {
	envelope, err := UnmarshalMessage(payload)
	if err != nil {
		return nil, err
	}
	if envelope.Type != expected {
		return nil, errors.Errorf("message is not a %s message", expected)
	}

	var message T
	err = json.Unmarshal(payload, &message)
	return &message, errors.Wrapf(err, "failed to unmarshal %s message", expected)
}

func Marshal(message any) ([]byte, error) {
	payload, err := json.Marshal(message)
	return payload, errors.Wrap(err, "failed to marshal message")
}
