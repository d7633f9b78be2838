package models

// ProgressSummary is the derived view of a learner's position in a
// course. Percentage is round-half-up of completed/total; a course with
// no lessons is 0% by definition.
type ProgressSummary struct {
	CourseID     string   `json:"course_id"`
	CompletedIDs []string `json:"completed_ids"`
	Completed    int      `json:"completed"`
	Total        int      `json:"total"`
	Percentage   int      `json:"percentage"`
	Complete     bool     `json:"complete"`
}

// QuizResult is the outcome of scoring a quiz attempt. Passed requires a
// perfect score.
type QuizResult struct {
	QuizID             string            `json:"quiz_id"`
	Score              int               `json:"score"`
	Total              int               `json:"total"`
	CorrectQuestionIDs []string          `json:"correct_question_ids"`
	Answers            map[string]string `json:"answers"`
	Passed             bool              `json:"passed"`
}
