package catalog

import (
	"context"

	"edumarket/backend/models"
)

// Seed loads the demo catalog: two published courses, one of them with
// a quizzed lesson. Safe to call once on an empty repository.
func Seed(ctx context.Context, repo Repository) error {
	courses := []models.Course{
		{
			ID:          "course1",
			Title:       "Complete Web Development Bootcamp",
			Description: "Learn HTML, CSS, JavaScript, React, Node.js and more to become a full-stack web developer.",
			Instructor:  "Dr. Sarah Johnson",
			Category:    "Web Development",
			Level:       models.LevelBeginner,
			Duration:    "48 hours",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1547658719-da2b51169166",
			Sections: []models.Section{
				{
					ID:    "section1",
					Title: "Introduction to Web Development",
					Lessons: []models.Lesson{
						{ID: "lesson1", Title: "Course Overview", MediaType: models.MediaVideo, Duration: "10:00", Content: "Welcome to the Complete Web Development Bootcamp!"},
						{ID: "lesson2", Title: "Setting Up Your Development Environment", MediaType: models.MediaVideo, Duration: "15:00", Content: "Install an editor, a browser and Node.js."},
						{ID: "lesson3", Title: "How the Web Works", MediaType: models.MediaVideo, Duration: "12:00", Content: "HTTP, DNS and the client-server model.",
							Quiz: &models.Quiz{
								ID:    "quiz1",
								Title: "Web Fundamentals Check",
								Questions: []models.QuizQuestion{
									{
										ID:     "q1",
										Prompt: "Which protocol do browsers use to fetch pages?",
										Options: []models.QuizOption{
											{ID: "a", Text: "HTTP"},
											{ID: "b", Text: "SMTP"},
											{ID: "c", Text: "FTP"},
										},
										CorrectAnswer: "a",
									},
									{
										ID:     "q2",
										Prompt: "What does DNS translate?",
										Options: []models.QuizOption{
											{ID: "a", Text: "IP addresses into MAC addresses"},
											{ID: "b", Text: "Domain names into IP addresses"},
										},
										CorrectAnswer: "b",
									},
								},
							}},
					},
				},
				{
					ID:    "section2",
					Title: "HTML Fundamentals",
					Lessons: []models.Lesson{
						{ID: "lesson4", Title: "Introduction to HTML", MediaType: models.MediaVideo, Duration: "18:00", Content: "HTML structure, elements and tags."},
						{ID: "lesson5", Title: "HTML Elements and Attributes", MediaType: models.MediaVideo, Duration: "22:00", Content: "Common elements and their attributes."},
						{ID: "lesson6", Title: "HTML Forms", MediaType: models.MediaDocument, Duration: "25:00", Content: "Inputs, labels and form submission."},
						{ID: "lesson7", Title: "HTML Project: Building a Basic Webpage", MediaType: models.MediaProject, Duration: "45:00", Content: "Build a basic webpage with HTML."},
					},
				},
			},
		},
		{
			ID:          "course2",
			Title:       "Advanced Data Science with Python",
			Description: "Master data analysis, visualization, machine learning and AI with Python.",
			Instructor:  "Prof. Michael Chen",
			Category:    "Data Science",
			Level:       models.LevelAdvanced,
			Duration:    "36 hours",
			Price:       109.99,
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
			Sections: []models.Section{
				{
					ID:    "section3",
					Title: "Getting Started",
					Lessons: []models.Lesson{
						{ID: "lesson8", Title: "Python Refresher", MediaType: models.MediaVideo, Duration: "20:00", Content: "A quick tour of modern Python."},
						{ID: "lesson9", Title: "Working with DataFrames", MediaType: models.MediaDocument, Duration: "30:00", Content: "Loading, filtering and reshaping data."},
					},
				},
			},
		},
	}

	for i := range courses {
		if err := repo.CreateCourse(ctx, &courses[i]); err != nil {
			return err
		}
	}
	return nil
}
