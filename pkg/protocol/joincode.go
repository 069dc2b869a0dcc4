package protocol

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const Version byte = 1

// Ticket is the decoded form of a join code. The QR code shown on the
// event screen carries the same base58 string participants can type in.
type Ticket struct {
	Version     byte
	EventID     EventID
	SessionCode string

	cachedCode *JoinCode
}

type JoinCode struct {
	string
}

func NewJoinCode(code string) JoinCode {
	return JoinCode{code}
}

func (c JoinCode) String() string {
	return c.string
}

func (c JoinCode) Empty() bool {
	return c.string == ""
}

// JoinCode: base58 encoded byte array:
// - byte 0:        version
// - byte 1:        event id length
// - bytes 2..n:    event id
// - bytes n+1..end: session code

func (t *Ticket) Bytes() []byte {
	eventID := []byte(t.EventID)
	bytes := make([]byte, 0, 2+len(eventID)+len(t.SessionCode))
	bytes = append(bytes, t.Version, byte(len(eventID)))
	bytes = append(bytes, eventID...)
	bytes = append(bytes, []byte(t.SessionCode)...)
	return bytes
}

func (t *Ticket) ToJoinCode() JoinCode {
	if t.cachedCode == nil {
		code := NewJoinCode(base58.Encode(t.Bytes()))
		t.cachedCode = &code
	}
	return *t.cachedCode
}

func (t *Ticket) VersionSupported() bool {
	return t.Version == Version
}

func ParseJoinCode(input string) (*Ticket, error) {
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode join code")
	}

	if len(decoded) < 2 {
		return nil, errors.New("join code is too short")
	}

	code := NewJoinCode(input)
	ticket := &Ticket{
		Version:    decoded[0],
		cachedCode: &code,
	}

	if !ticket.VersionSupported() {
		return ticket, nil
	}

	idLength := int(decoded[1])
	if len(decoded) < 2+idLength {
		return nil, errors.New("join code is truncated")
	}

	ticket.EventID = EventID(decoded[2 : 2+idLength])
	ticket.SessionCode = string(decoded[2+idLength:])

	return ticket, nil
}
