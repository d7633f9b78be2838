package engine

import (
	"fmt"

	"edumarket/backend/models"
)

// Per-question presentation states during quiz-taking.
const (
	StateUnanswered = "unanswered"
	StateAnswered   = "answered"
	StateChecked    = "checked"
)

// QuizSession tracks one learner's pass through a quiz. Navigation is
// strictly linear; the current question moves unanswered -> answered ->
// checked, where checked is entered only by an explicit primary action
// and reveals the correct/wrong highlight. Going back discards the
// reveal but keeps the stored answer.
type QuizSession struct {
	QuizID   string            `json:"quiz_id"`
	Index    int               `json:"index"`
	Answers  map[string]string `json:"answers"`
	Checked  bool              `json:"checked"`
	Finished bool              `json:"finished"`
}

// NewQuizSession starts a session at the first question.
func NewQuizSession(quiz *models.Quiz) (*QuizSession, error) {
	if len(QuizQuestions(quiz)) == 0 {
		return nil, fmt.Errorf("%w: quiz has no questions", ErrValidation)
	}
	return &QuizSession{
		QuizID:  quiz.ID,
		Answers: map[string]string{},
	}, nil
}

// Current returns the question the session is positioned on.
func (s *QuizSession) Current(quiz *models.Quiz) (models.QuizQuestion, error) {
	questions := QuizQuestions(quiz)
	if s.Index < 0 || s.Index >= len(questions) {
		return models.QuizQuestion{}, fmt.Errorf("%w: question index %d", ErrNotFound, s.Index)
	}
	return questions[s.Index], nil
}

// State reports the presentation state of the current question.
func (s *QuizSession) State(quiz *models.Quiz) string {
	question, err := s.Current(quiz)
	if err != nil {
		return StateUnanswered
	}
	switch {
	case s.Checked:
		return StateChecked
	case s.Answers[question.ID] != "":
		return StateAnswered
	default:
		return StateUnanswered
	}
}

// Select records an answer for the current question. Changing the answer
// is allowed until the question is checked; the reveal freezes it.
func (s *QuizSession) Select(quiz *models.Quiz, optionID string) error {
	if s.Finished {
		return fmt.Errorf("%w: quiz already finished", ErrValidation)
	}
	if s.Checked {
		return fmt.Errorf("%w: answer already checked", ErrValidation)
	}
	question, err := s.Current(quiz)
	if err != nil {
		return err
	}
	for _, option := range question.Options {
		if option.ID == optionID {
			s.Answers[question.ID] = optionID
			return nil
		}
	}
	return fmt.Errorf("%w: option %q not in question %q", ErrValidation, optionID, question.ID)
}

// Advance applies the primary action. On an answered question it reveals
// feedback; on a checked question it moves forward, or finishes when the
// last question was already revealed. It reports whether the session
// just finished, in which case the caller scores the stored answers.
func (s *QuizSession) Advance(quiz *models.Quiz) (bool, error) {
	if s.Finished {
		return false, fmt.Errorf("%w: quiz already finished", ErrValidation)
	}
	question, err := s.Current(quiz)
	if err != nil {
		return false, err
	}
	if s.Answers[question.ID] == "" {
		return false, fmt.Errorf("%w: answer the question first", ErrValidation)
	}

	if !s.Checked {
		s.Checked = true
		return false, nil
	}

	if s.Index == len(QuizQuestions(quiz))-1 {
		s.Finished = true
		return true, nil
	}
	s.Index++
	s.Checked = false
	return false, nil
}

// Previous steps back one question, re-entering its answered (not
// checked) state. The stored answer survives; the reveal does not.
// On the first question it is a no-op.
func (s *QuizSession) Previous() {
	if s.Finished || s.Index == 0 {
		return
	}
	s.Index--
	s.Checked = false
}
