package states

type AppState int

const (
	Idle AppState = iota
	Initializing
	InputDisplayName
	Lobby
	Playing
)

type EventView int

const (
	QuizView EventView = iota
	RosterView
)
