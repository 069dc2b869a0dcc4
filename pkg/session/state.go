package session

import (
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// Roster maps participant id to participant. Ordering for display is a
// presentation concern, the roster itself is unordered.
type Roster map[protocol.UserID]protocol.Participant

func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	clone := make(Roster, len(r))
	for id, participant := range r {
		clone[id] = participant
	}
	return clone
}

func (r Roster) OnlineCount() int {
	count := 0
	for _, participant := range r {
		if participant.Online {
			count++
		}
	}
	return count
}

type Presenter struct {
	ID   protocol.UserID
	Name string
}

type Processing struct {
	Step     string
	Progress *int
	Text     string
}

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeLateJoin
	NoticePaused
	NoticeTimeExpired
	NoticePresenterDisconnected
	NoticeGeneric
)

// Notice is a non-blocking user-facing message derived from server
// signals. Unknown error text falls back to NoticeGeneric, it is never
// silently swallowed.
type Notice struct {
	Kind NoticeKind
	Text string
}

type MegaQuiz struct {
	AvailableQuestions int
	QuestionCount      int
	SingleSegment      bool
}

// State is the client's belief about the shared quiz session. Snapshots
// are immutable: the reducer clones before changing anything, consumers
// must never mutate what they receive.
type State struct {
	EventID protocol.EventID

	Phase protocol.Phase
	// phaseBeforePause is where we return to when the pause lifts.
	PhaseBeforePause protocol.Phase
	PauseReason      protocol.PauseReason

	Participants Roster
	JoinLocked   bool

	Question          *protocol.Question
	RemainingSeconds  int
	AnswerCount       int
	TotalParticipants int

	// Own answer tracking. AnsweredQuestionID guards against resetting
	// the answered flag when the server re-sends the same question
	// after a pause/resume cycle.
	HasAnswered        bool
	MyAnswer           string
	AnsweredQuestionID protocol.QuestionID
	// AnswerLocked gates late joiners out of the current question.
	AnswerLocked bool
	YourScore    int

	CorrectAnswer string
	Distribution  protocol.Distribution

	SegmentID    protocol.SegmentID
	SegmentTitle string

	SegmentLeaderboard protocol.Leaderboard
	EventLeaderboard   protocol.Leaderboard
	FinalLeaderboard   protocol.Leaderboard
	Scores             map[protocol.UserID]int

	SegmentWinner  *protocol.LeaderboardEntry
	EventLeader    *protocol.LeaderboardEntry
	Winner         *protocol.LeaderboardEntry
	SegmentWinners []protocol.LeaderboardEntry

	PendingPresenter    *Presenter
	CurrentPresenter    *Presenter
	WaitingForPresenter bool

	Processing *Processing
	Notice     Notice
	MegaQuiz   *MegaQuiz
}

func NewState() *State {
	return &State{
		Phase:        protocol.PhaseNotStarted,
		Participants: make(Roster),
	}
}

func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Participants = s.Participants.Clone()
	clone.SegmentLeaderboard = s.SegmentLeaderboard.Clone()
	clone.EventLeaderboard = s.EventLeaderboard.Clone()
	clone.FinalLeaderboard = s.FinalLeaderboard.Clone()

	if s.Question != nil {
		question := *s.Question
		question.Answers = append([]string(nil), s.Question.Answers...)
		clone.Question = &question
	}
	if s.Distribution != nil {
		clone.Distribution = make(protocol.Distribution, len(s.Distribution))
		for answer, count := range s.Distribution {
			clone.Distribution[answer] = count
		}
	}
	if s.Scores != nil {
		clone.Scores = make(map[protocol.UserID]int, len(s.Scores))
		for id, score := range s.Scores {
			clone.Scores[id] = score
		}
	}
	if s.SegmentWinners != nil {
		clone.SegmentWinners = append([]protocol.LeaderboardEntry(nil), s.SegmentWinners...)
	}

	clone.SegmentWinner = cloneEntry(s.SegmentWinner)
	clone.EventLeader = cloneEntry(s.EventLeader)
	clone.Winner = cloneEntry(s.Winner)
	clone.PendingPresenter = clonePresenter(s.PendingPresenter)
	clone.CurrentPresenter = clonePresenter(s.CurrentPresenter)

	if s.Processing != nil {
		processing := *s.Processing
		clone.Processing = &processing
	}
	if s.MegaQuiz != nil {
		megaQuiz := *s.MegaQuiz
		clone.MegaQuiz = &megaQuiz
	}

	return &clone
}

func (s *State) Paused() bool {
	return s.Phase == protocol.PhasePresenterPaused
}

func (s *State) Participant(id protocol.UserID) *protocol.Participant {
	participant, ok := s.Participants[id]
	if !ok {
		return nil
	}
	return &participant
}

func cloneEntry(entry *protocol.LeaderboardEntry) *protocol.LeaderboardEntry {
	if entry == nil {
		return nil
	}
	clone := *entry
	return &clone
}

func clonePresenter(presenter *Presenter) *Presenter {
	if presenter == nil {
		return nil
	}
	clone := *presenter
	return &clone
}
