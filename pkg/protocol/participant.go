package protocol

import "encoding/json"

type JoinStatus string

const (
	JoinStatusJoined          JoinStatus = "joined"
	JoinStatusWaitingSegment  JoinStatus = "waiting_for_segment"
	JoinStatusActiveInQuiz    JoinStatus = "active_in_quiz"
	JoinStatusSegmentComplete JoinStatus = "segment_complete"
)

type Participant struct {
	ID         UserID     `json:"id"`
	Username   string     `json:"username"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	JoinStatus JoinStatus `json:"join_status,omitempty"`
	Online     bool       `json:"online"`
}

// Older server builds omit the "online" field. Absence means online.
func (p *Participant) UnmarshalJSON(data []byte) error {
	type alias Participant
	aux := alias{Online: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Participant(aux)
	return nil
}

// CanAnswer reports whether this participant may submit answers
// in the current segment.
func (p *Participant) CanAnswer() bool {
	return p.JoinStatus == JoinStatusActiveInQuiz || p.JoinStatus == ""
}
