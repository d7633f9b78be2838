package models

import "time"

// Course levels as shown in the catalog.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Lesson media types.
const (
	MediaVideo    = "video"
	MediaDocument = "document"
	MediaProject  = "project"
)

type Course struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Instructor   string    `json:"instructor"`
	InstructorID string    `gorm:"index" json:"instructor_id"`
	Category     string    `json:"category"`
	Level        string    `json:"level"` // Beginner, Intermediate, Advanced
	Duration     string    `json:"duration"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	Sections     []Section `json:"sections"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Section order is significant: it defines lesson numbering and the
// navigation sequence. Position is assigned at creation and never
// reordered at runtime.
type Section struct {
	ID       string   `gorm:"primaryKey" json:"id"`
	CourseID string   `gorm:"index" json:"course_id"`
	Title    string   `json:"title"`
	Position int      `json:"position"`
	Lessons  []Lesson `json:"lessons"`
}

type Lesson struct {
	ID        string `gorm:"primaryKey" json:"id"`
	SectionID string `gorm:"index" json:"section_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	MediaType string `json:"media_type"` // video, document, project
	Duration  string `json:"duration"`   // "mm:ss" or "h:mm:ss"
	Position  int    `json:"position"`
	Quiz      *Quiz  `json:"quiz,omitempty"`
}
