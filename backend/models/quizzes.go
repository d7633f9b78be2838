package models

type Quiz struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	LessonID  string         `gorm:"index" json:"lesson_id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion holds at least two options; CorrectAnswer references one
// of the option ids.
type QuizQuestion struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	QuizID        string       `gorm:"index" json:"quiz_id"`
	Prompt        string       `json:"prompt"`
	Options       []QuizOption `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	Position      int          `json:"position"`
}

// QuizOption ids are scoped per question: authors reuse short ids like
// "a"/"b" across questions, so the primary key is (question_id, id).
type QuizOption struct {
	QuestionID string `gorm:"primaryKey" json:"question_id"`
	ID         string `gorm:"primaryKey" json:"id"`
	Text       string `json:"text"`
	Position   int    `json:"position"`
}
