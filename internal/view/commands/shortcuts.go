package commands

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	// Common
	ToggleView  key.Binding
	CommandMode key.Binding
	LeaveEvent  key.Binding
	// Quiz control
	NextQuestion    key.Binding
	RevealAnswer    key.Binding
	ShowLeaderboard key.Binding
	// Answering
	AnswerA key.Binding
	AnswerB key.Binding
	AnswerC key.Binding
	AnswerD key.Binding
}

var DefaultKeyMap = KeyMap{
	ToggleView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "Toggle roster view"),
	),
	CommandMode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "Switch to command mode"),
	),
	LeaveEvent: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("Q", "Leave event"),
	),
	NextQuestion: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("N", "Next question"),
	),
	RevealAnswer: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Reveal answer"),
	),
	ShowLeaderboard: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("L", "Show leaderboard"),
	),
	AnswerA: key.NewBinding(
		key.WithKeys("1", "a"),
		key.WithHelp("1", "Answer A"),
	),
	AnswerB: key.NewBinding(
		key.WithKeys("2", "b"),
		key.WithHelp("2", "Answer B"),
	),
	AnswerC: key.NewBinding(
		key.WithKeys("3", "c"),
		key.WithHelp("3", "Answer C"),
	),
	AnswerD: key.NewBinding(
		key.WithKeys("4", "d"),
		key.WithHelp("4", "Answer D"),
	),
}
