package engine

import (
	"fmt"
	"sort"

	"edumarket/backend/models"
)

// QuizQuestions returns the quiz's questions in presentation order.
func QuizQuestions(quiz *models.Quiz) []models.QuizQuestion {
	if quiz == nil {
		return nil
	}
	questions := make([]models.QuizQuestion, len(quiz.Questions))
	copy(questions, quiz.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})
	return questions
}

// ScoreQuiz evaluates answers (question id -> selected option id)
// against the quiz. Comparison is exact string equality against the
// question's correct option id; unanswered questions count as incorrect.
// A quiz with no questions is unavailable and is never scored.
func ScoreQuiz(quiz *models.Quiz, answers map[string]string) (models.QuizResult, error) {
	questions := QuizQuestions(quiz)
	if len(questions) == 0 {
		return models.QuizResult{}, fmt.Errorf("%w: quiz has no questions", ErrValidation)
	}

	if answers == nil {
		answers = map[string]string{}
	}

	result := models.QuizResult{
		QuizID:             quiz.ID,
		Total:              len(questions),
		CorrectQuestionIDs: []string{},
		Answers:            answers,
	}
	for _, question := range questions {
		if answers[question.ID] == question.CorrectAnswer {
			result.Score++
			result.CorrectQuestionIDs = append(result.CorrectQuestionIDs, question.ID)
		}
	}
	// Partial credit never counts as passing.
	result.Passed = result.Score == result.Total
	return result, nil
}
