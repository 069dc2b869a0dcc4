package protocol

type UserID string
type EventID string
type SegmentID string
type QuestionID string

func (id UserID) String() string {
	return string(id)
}

func (id EventID) String() string {
	return string(id)
}

func (id EventID) Empty() bool {
	return id == ""
}

func (id SegmentID) String() string {
	return string(id)
}

func (id QuestionID) String() string {
	return string(id)
}
