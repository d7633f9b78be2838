package models

import "time"

// CartItem is a projection of a Course, not a reference: copying the
// fields keeps cart contents stable even if the catalog entry changes.
// Items are unique by course id within a cart.
type CartItem struct {
	ID         string  `json:"id"` // course id
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Instructor string  `json:"instructor"`
	ImageURL   string  `json:"image_url"`
	Category   string  `json:"category,omitempty"`
	Level      string  `json:"level,omitempty"`
}

type Enrollment struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index:idx_enrollments_user_course,unique" json:"user_id"`
	CourseID   string    `gorm:"index:idx_enrollments_user_course,unique" json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
