package protocol

// Client → server message types.
const (
	MessageTypeJoin                 MessageType = "join"
	MessageTypeAnswer               MessageType = "answer"
	MessageTypeStartGame            MessageType = "start_game"
	MessageTypeNextQuestion         MessageType = "next_question"
	MessageTypeRevealAnswer         MessageType = "reveal_answer"
	MessageTypeShowLeaderboard      MessageType = "show_leaderboard"
	MessageTypeEndGame              MessageType = "end_game"
	MessageTypePassPresenter        MessageType = "pass_presenter"
	MessageTypeAdminSelectPresenter MessageType = "admin_select_presenter"
	MessageTypeResumeSegment        MessageType = "resume_segment"
	MessageTypeStartMegaQuiz        MessageType = "start_mega_quiz"
	MessageTypeSkipMegaQuiz         MessageType = "skip_mega_quiz"
	MessageTypePong                 MessageType = "pong"
	MessageTypeStartPresentation    MessageType = "start_presentation"
	MessageTypeSelectPresenter      MessageType = "select_presenter"
)

type JoinMessage struct {
	Message
	UserID      UserID `json:"user_id"`
	SessionCode string `json:"session_code"`
}

type AnswerMessage struct {
	Message
	QuestionID     QuestionID `json:"question_id"`
	SelectedAnswer string     `json:"selected_answer"`
	ResponseTimeMs int64      `json:"response_time_ms"`
}

type StartGameMessage struct {
	Message
}

type NextQuestionMessage struct {
	Message
}

type RevealAnswerMessage struct {
	Message
}

type ShowLeaderboardMessage struct {
	Message
}

type EndGameMessage struct {
	Message
}

type PassPresenterMessage struct {
	Message
	NextPresenterUserID UserID `json:"next_presenter_user_id"`
}

type AdminSelectPresenterMessage struct {
	Message
	PresenterUserID UserID    `json:"presenter_user_id"`
	SegmentID       SegmentID `json:"segment_id"`
}

type ResumeSegmentMessage struct {
	Message
	SegmentID SegmentID `json:"segment_id"`
}

type StartMegaQuizMessage struct {
	Message
	QuestionCount int `json:"question_count,omitempty"`
}

type SkipMegaQuizMessage struct {
	Message
}

type PongMessage struct {
	Message
}

type StartPresentationMessage struct {
	Message
}

type SelectPresenterMessage struct {
	Message
	PresenterUserID UserID `json:"presenter_user_id"`
}
