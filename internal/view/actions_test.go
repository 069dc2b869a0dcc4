package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck-cli/internal/app"
	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
)

func newTestModel(t *testing.T) model {
	testcommon.SetupConfigLogger(t)
	m := initialModel(app.NewApp())
	m.state = states.Lobby
	return m
}

func TestProcessActionUnknown(t *testing.T) {
	m := newTestModel(t)

	cmd := ProcessAction(&m, "frobnicate")
	require.NotNil(t, cmd)

	message, ok := cmd().(messages.ErrorMessage)
	require.True(t, ok)
	require.ErrorContains(t, message.Err, "unknown action")
}

func TestProcessActionEmptyInput(t *testing.T) {
	m := newTestModel(t)
	require.Nil(t, ProcessAction(&m, "   "))
}

func TestAnswerActionRequiresSession(t *testing.T) {
	m := newTestModel(t)

	cmd := ProcessAction(&m, "answer a")
	require.NotNil(t, cmd)

	message, ok := cmd().(messages.ErrorMessage)
	require.True(t, ok)
	require.ErrorContains(t, message.Err, "not in an event")
}

func TestToggleEventView(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, states.QuizView, m.eventViewState)

	toggleEventView(&m)
	require.Equal(t, states.RosterView, m.eventViewState)

	toggleEventView(&m)
	require.Equal(t, states.QuizView, m.eventViewState)
}
