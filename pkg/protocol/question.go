package protocol

type Question struct {
	ID             QuestionID `json:"question_id"`
	Number         int        `json:"question_number"`
	TotalQuestions int        `json:"total_questions"`
	Text           string     `json:"text"`
	Answers        []string   `json:"answers"`
	TimeLimit      int        `json:"time_limit"` // seconds, advisory only
}

// Distribution maps an answer option to the number of participants
// that picked it.
type Distribution map[string]int

// AnswerLetters returns the option labels for a question with the
// given number of answers: "A", "B", "C", ...
func AnswerLetters(count int) []string {
	letters := make([]string, count)
	for index := range letters {
		letters[index] = string(rune('A' + index))
	}
	return letters
}
