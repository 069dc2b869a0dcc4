package protocol

type MessageType string

// Server → client message types.
const (
	MessageTypeConnected               MessageType = "connected"
	MessageTypeParticipantJoined       MessageType = "participant_joined"
	MessageTypeParticipantLeft         MessageType = "participant_left"
	MessageTypeParticipantNameChanged  MessageType = "participant_name_changed"
	MessageTypeJoinLockStatusChanged   MessageType = "join_lock_status_changed"
	MessageTypeGameStarted             MessageType = "game_started"
	MessageTypeQuestion                MessageType = "question"
	MessageTypeTimeUpdate              MessageType = "time_update"
	MessageTypeAnswerReceived          MessageType = "answer_received"
	MessageTypeReveal                  MessageType = "reveal"
	MessageTypeScoresUpdate            MessageType = "scores_update"
	MessageTypeLeaderboard             MessageType = "leaderboard"
	MessageTypeGameEnded               MessageType = "game_ended"
	MessageTypeError                   MessageType = "error"
	MessageTypeProcessingStatus        MessageType = "processing_status"
	MessageTypePhaseChanged            MessageType = "phase_changed"
	MessageTypeAllAnswered             MessageType = "all_answered"
	MessageTypePresenterChanged        MessageType = "presenter_changed"
	MessageTypePresenterDisconnected   MessageType = "presenter_disconnected"
	MessageTypePresenterPaused         MessageType = "presenter_paused"
	MessageTypePresenterOverrideNeeded MessageType = "presenter_override_needed"
	MessageTypeSegmentComplete         MessageType = "segment_complete"
	MessageTypeEventComplete           MessageType = "event_complete"
	MessageTypeMegaQuizReady           MessageType = "mega_quiz_ready"
	MessageTypeMegaQuizStarted         MessageType = "mega_quiz_started"
	MessageTypePing                    MessageType = "ping"
	MessageTypeStateRestored           MessageType = "state_restored"
	MessageTypePresenterSelected       MessageType = "presenter_selected"
	MessageTypePresentationStarted     MessageType = "presentation_started"
	MessageTypeWaitingForPresenter     MessageType = "waiting_for_presenter"
)

// Message is the envelope shared by every protocol message.
// The Type field discriminates the concrete payload.
type Message struct {
	Type MessageType `json:"type"`
}

type ConnectedMessage struct {
	Message
	Participants []Participant `json:"participants"`
}

type ParticipantJoinedMessage struct {
	Message
	User Participant `json:"user"`
}

type ParticipantLeftMessage struct {
	Message
	UserID UserID `json:"user_id"`
	// Online is sent by newer servers to distinguish "left for good"
	// from "connection dropped". Absent means offline.
	Online *bool `json:"online,omitempty"`
}

type ParticipantNameChangedMessage struct {
	Message
	UserID  UserID `json:"user_id"`
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

type JoinLockStatusChangedMessage struct {
	Message
	Locked bool `json:"locked"`
}

type GameStartedMessage struct {
	Message
}

type QuestionMessage struct {
	Message
	Question
}

type TimeUpdateMessage struct {
	Message
	RemainingSeconds int `json:"remaining_seconds"`
}

type AnswerReceivedMessage struct {
	Message
	UserID UserID `json:"user_id"`
}

type RevealMessage struct {
	Message
	QuestionID         QuestionID   `json:"question_id"`
	CorrectAnswer      string       `json:"correct_answer"`
	Distribution       Distribution `json:"distribution"`
	SegmentLeaderboard Leaderboard  `json:"segment_leaderboard"`
	EventLeaderboard   Leaderboard  `json:"event_leaderboard"`
}

type ScoresUpdateMessage struct {
	Message
	Scores map[UserID]int `json:"scores"`
}

type LeaderboardMessage struct {
	Message
	Rankings Leaderboard `json:"rankings"`
}

type GameEndedMessage struct {
	Message
}

// ErrorMessage carries free-text server errors. Semantics are encoded
// in the text itself and pattern-matched on the receiving side.
type ErrorMessage struct {
	Message
	Text string `json:"message"`
}

type ProcessingStatusMessage struct {
	Message
	Step     string `json:"step"`
	Progress *int   `json:"progress,omitempty"`
	Text     string `json:"message"`
}

type PhaseChangedMessage struct {
	Message
	Phase          Phase `json:"phase"`
	QuestionIndex  int   `json:"question_index"`
	TotalQuestions int   `json:"total_questions"`
}

type AllAnsweredMessage struct {
	Message
	AnswerCount       int `json:"answer_count"`
	TotalParticipants int `json:"total_participants"`
}

type PresenterChangedMessage struct {
	Message
	PreviousPresenterID UserID    `json:"previous_presenter_id"`
	NewPresenterID      UserID    `json:"new_presenter_id"`
	NewPresenterName    string    `json:"new_presenter_name"`
	SegmentID           SegmentID `json:"segment_id"`
}

type PresenterDisconnectedMessage struct {
	Message
	PresenterID   UserID `json:"presenter_id"`
	PresenterName string `json:"presenter_name"`
}

type PresenterPausedMessage struct {
	Message
	PresenterID    UserID      `json:"presenter_id"`
	PresenterName  string      `json:"presenter_name"`
	SegmentID      SegmentID   `json:"segment_id"`
	QuestionIndex  int         `json:"question_index"`
	TotalQuestions int         `json:"total_questions"`
	Reason         PauseReason `json:"reason,omitempty"`
}

type PresenterOverrideNeededMessage struct {
	Message
	SegmentID SegmentID   `json:"segment_id"`
	Reason    PauseReason `json:"reason,omitempty"`
}

type SegmentCompleteMessage struct {
	Message
	SegmentID          SegmentID         `json:"segment_id"`
	SegmentTitle       string            `json:"segment_title"`
	PresenterName      string            `json:"presenter_name"`
	SegmentLeaderboard Leaderboard       `json:"segment_leaderboard"`
	EventLeaderboard   Leaderboard       `json:"event_leaderboard"`
	SegmentWinner      *LeaderboardEntry `json:"segment_winner,omitempty"`
	EventLeader        *LeaderboardEntry `json:"event_leader,omitempty"`
}

type EventCompleteMessage struct {
	Message
	EventID          EventID            `json:"event_id"`
	FinalLeaderboard Leaderboard        `json:"final_leaderboard"`
	Winner           *LeaderboardEntry  `json:"winner,omitempty"`
	SegmentWinners   []LeaderboardEntry `json:"segment_winners"`
}

type MegaQuizReadyMessage struct {
	Message
	EventID            EventID     `json:"event_id"`
	AvailableQuestions int         `json:"available_questions"`
	CurrentLeaderboard Leaderboard `json:"current_leaderboard"`
	IsSingleSegment    bool        `json:"is_single_segment,omitempty"`
	SingleSegmentMode  bool        `json:"single_segment_mode,omitempty"`
}

type MegaQuizStartedMessage struct {
	Message
	EventID       EventID `json:"event_id"`
	QuestionCount int     `json:"question_count"`
}

type PingMessage struct {
	Message
}

// StateRestoredMessage is the authoritative snapshot sent by the server
// right after a reconnect. The client discards any assumptions built
// before the connection gap and rehydrates from this message alone.
type StateRestoredMessage struct {
	Message
	EventID           EventID       `json:"event_id"`
	SegmentID         SegmentID     `json:"segment_id,omitempty"`
	CurrentPhase      Phase         `json:"current_phase"`
	CurrentQuestionID QuestionID    `json:"current_question_id,omitempty"`
	QuestionText      string        `json:"question_text,omitempty"`
	Answers           []string      `json:"answers,omitempty"`
	TimeLimit         int           `json:"time_limit,omitempty"`
	QuestionStartedAt int64         `json:"question_started_at,omitempty"`
	YourScore         int           `json:"your_score"`
	YourAnswer        string        `json:"your_answer,omitempty"`
	Participants      []Participant `json:"participants"`
}

type PresenterSelectedMessage struct {
	Message
	PresenterID      UserID `json:"presenter_id"`
	PresenterName    string `json:"presenter_name"`
	IsFirstPresenter bool   `json:"is_first_presenter"`
}

type PresentationStartedMessage struct {
	Message
	SegmentID     SegmentID `json:"segment_id"`
	PresenterID   UserID    `json:"presenter_id"`
	PresenterName string    `json:"presenter_name"`
}

type WaitingForPresenterMessage struct {
	Message
}
