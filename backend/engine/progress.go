package engine

import "math"

// MarkComplete adds lessonID to the completed set. It is idempotent: the
// second return value reports whether the set actually changed, letting
// callers skip the persistence write on a re-mark. Completion never
// shrinks here; there is no unmark operation.
func MarkComplete(completed []string, lessonID string) ([]string, bool) {
	for _, id := range completed {
		if id == lessonID {
			return completed, false
		}
	}
	return append(completed, lessonID), true
}

// IsComplete reports set membership.
func IsComplete(completed []string, lessonID string) bool {
	for _, id := range completed {
		if id == lessonID {
			return true
		}
	}
	return false
}

// CompletionPercentage is round-half-up of completed/total*100, clamped
// to 0..100. A course with zero lessons is 0% by definition.
func CompletionPercentage(completedCount, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	// Scale before dividing so exact halves stay exact; dividing first
	// loses 14.5 to 14.499... for ratios like 29/200.
	pct := int(math.Round(float64(completedCount*100) / float64(totalLessons)))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// IsCourseComplete holds exactly when the percentage reaches 100.
func IsCourseComplete(completedCount, totalLessons int) bool {
	return totalLessons > 0 && CompletionPercentage(completedCount, totalLessons) == 100
}
