package models

import "time"

// Vote kinds. A binary vote is a bare up/down; a star vote carries a 1-5
// rating and an optional comment. Both share the same uniqueness rule:
// at most one vote per (course, user), replaced on resubmit.
const (
	VoteKindBinary = "binary"
	VoteKindStar   = "star"
)

const (
	VoteUp   = "up"
	VoteDown = "down"
)

type Vote struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CourseID  string    `gorm:"index:idx_votes_course_user,unique" json:"course_id"`
	UserID    string    `gorm:"index:idx_votes_course_user,unique" json:"user_id"`
	Kind      string    `json:"kind"`                // binary or star
	Direction string    `json:"direction,omitempty"` // up/down, binary only
	Rating    int       `json:"rating,omitempty"`    // 1-5, star only
	Comment   string    `json:"comment,omitempty"`   // star only
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingSummary is recomputed on every read, never cached.
type RatingSummary struct {
	Average      float64     `json:"average"`
	Total        int         `json:"total"`
	Distribution map[int]int `json:"distribution"` // star 1..5 -> count
	Upvotes      int         `json:"upvotes"`
	Downvotes    int         `json:"downvotes"`
}
