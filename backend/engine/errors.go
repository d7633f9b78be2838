// Package engine holds the pure learning-progress core: lesson
// navigation, completion math, quiz scoring and the quiz-taking state
// machine. Nothing in here touches storage or transport.
package engine

import "errors"

// Sentinel errors. Callers classify with errors.Is and map them to
// responses; none of them is fatal to the process.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAuthRequired       = errors.New("authentication required")
	ErrNotFound           = errors.New("not found")
	ErrPersistenceCorrupt = errors.New("stored value corrupt")
	ErrRemote             = errors.New("remote operation failed")

	// ErrCourseIncomplete gates rating submission until every lesson of
	// the course has been completed.
	ErrCourseIncomplete = errors.New("course not completed")
)
