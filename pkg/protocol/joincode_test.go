package protocol

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestJoinCodeRoundTrip(t *testing.T) {
	ticket := Ticket{
		Version:     Version,
		EventID:     EventID(gofakeit.UUID()),
		SessionCode: gofakeit.LetterN(6),
	}

	code := ticket.ToJoinCode()
	require.False(t, code.Empty())

	parsed, err := ParseJoinCode(code.String())
	require.NoError(t, err)
	require.True(t, parsed.VersionSupported())
	require.Equal(t, ticket.EventID, parsed.EventID)
	require.Equal(t, ticket.SessionCode, parsed.SessionCode)
	require.Equal(t, code, parsed.ToJoinCode())
}

func TestJoinCodeEmptySessionCode(t *testing.T) {
	ticket := Ticket{
		Version: Version,
		EventID: "event-1",
	}

	parsed, err := ParseJoinCode(ticket.ToJoinCode().String())
	require.NoError(t, err)
	require.Equal(t, EventID("event-1"), parsed.EventID)
	require.Empty(t, parsed.SessionCode)
}

func TestParseJoinCodeInvalidInput(t *testing.T) {
	_, err := ParseJoinCode("0OIl")
	require.Error(t, err)
}

func TestParseJoinCodeTooShort(t *testing.T) {
	_, err := ParseJoinCode("2")
	require.Error(t, err)
}

func TestParseJoinCodeUnsupportedVersion(t *testing.T) {
	ticket := Ticket{
		Version:     Version + 1,
		EventID:     "event-1",
		SessionCode: "abc",
	}

	parsed, err := ParseJoinCode(ticket.ToJoinCode().String())
	require.NoError(t, err)
	require.False(t, parsed.VersionSupported())
	// Payload is not decoded for unknown layouts.
	require.Empty(t, parsed.EventID)
}

func TestParseJoinCodeTruncated(t *testing.T) {
	ticket := Ticket{
		Version: Version,
		EventID: "event-1",
	}
	bytes := ticket.Bytes()
	// Claim a longer event id than the payload carries.
	bytes[1] = byte(len(ticket.EventID) + 10)

	_, err := ParseJoinCode(base58.Encode(bytes))
	require.Error(t, err)
}
