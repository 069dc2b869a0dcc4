package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParticipantOnlineDefaultsToTrue(t *testing.T) {
	// Older server builds omit the online field entirely.
	message, err := UnmarshalTyped[ParticipantJoinedMessage](
		[]byte(`{"type":"participant_joined","user":{"id":"user-1","username":"alice"}}`),
		MessageTypeParticipantJoined,
	)
	require.NoError(t, err)
	require.True(t, message.User.Online)
}

func TestParticipantOnlineExplicitFalse(t *testing.T) {
	message, err := UnmarshalTyped[ParticipantJoinedMessage](
		[]byte(`{"type":"participant_joined","user":{"id":"user-1","online":false}}`),
		MessageTypeParticipantJoined,
	)
	require.NoError(t, err)
	require.False(t, message.User.Online)
}

func TestUnmarshalMessageEnvelope(t *testing.T) {
	message, err := UnmarshalMessage([]byte(`{"type":"ping","junk":"ignored"}`))
	require.NoError(t, err)
	require.Equal(t, MessageTypePing, message.Type)
}

func TestUnmarshalMessageMalformed(t *testing.T) {
	_, err := UnmarshalMessage([]byte(`{broken`))
	require.Error(t, err)
}

func TestUnmarshalTypedRejectsWrongType(t *testing.T) {
	_, err := UnmarshalTyped[QuestionMessage](
		[]byte(`{"type":"ping"}`),
		MessageTypeQuestion,
	)
	require.Error(t, err)
}

func TestCanAnswer(t *testing.T) {
	testCases := []struct {
		status   JoinStatus
		expected bool
	}{
		{status: "", expected: true},
		{status: JoinStatusActiveInQuiz, expected: true},
		{status: JoinStatusJoined, expected: false},
		{status: JoinStatusWaitingSegment, expected: false},
		{status: JoinStatusSegmentComplete, expected: false},
	}

	for _, testCase := range testCases {
		participant := Participant{ID: "user-1", JoinStatus: testCase.status}
		require.Equal(t, testCase.expected, participant.CanAnswer(), string(testCase.status))
	}
}
