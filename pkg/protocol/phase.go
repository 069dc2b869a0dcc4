package protocol

type Phase string

const (
	PhaseNotStarted       Phase = "not_started"
	PhaseShowingQuestion  Phase = "showing_question"
	PhaseRevealingAnswer  Phase = "revealing_answer"
	PhaseLeaderboard      Phase = "showing_leaderboard"
	PhaseBetweenQuestions Phase = "between_questions"
	PhaseSegmentComplete  Phase = "segment_complete"
	PhaseMegaQuizReady    Phase = "mega_quiz_ready"
	PhaseMegaQuiz         Phase = "mega_quiz"
	PhaseEventComplete    Phase = "event_complete"
	PhasePresenterPaused  Phase = "presenter_paused"
)

// PauseReason explains why the quiz entered PhasePresenterPaused.
type PauseReason string

const (
	PauseReasonNone                  PauseReason = ""
	PauseReasonAllDisconnected       PauseReason = "all_disconnected"
	PauseReasonNoParticipants        PauseReason = "no_participants"
	PauseReasonPresenterDisconnected PauseReason = "presenter_disconnected"
)

// Terminal reports whether no further phase messages are expected
// for this event, short of a fresh game_started.
func (p Phase) Terminal() bool {
	return p == PhaseEventComplete
}
