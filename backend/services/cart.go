package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"edumarket/backend/catalog"
	"edumarket/backend/engine"
	"edumarket/backend/models"
	"edumarket/backend/store"
)

// EnrollmentRepository records which user owns which course.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, enrollment *models.Enrollment) error
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	ByUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

type CartService struct {
	Catalog     catalog.Repository
	Store       store.Store
	Enrollments EnrollmentRepository
	Logger      *log.Logger

	mu       sync.Mutex
	inFlight map[string]bool // user ids with a checkout pending
}

func NewCartService(cat catalog.Repository, kv store.Store, enrollments EnrollmentRepository, logger *log.Logger) *CartService {
	return &CartService{
		Catalog:     cat,
		Store:       kv,
		Enrollments: enrollments,
		Logger:      logger,
		inFlight:    map[string]bool{},
	}
}

// Items loads the cart, resetting corrupt stored state to empty.
func (s *CartService) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: no user", engine.ErrAuthRequired)
	}
	var items []models.CartItem
	err := s.Store.Get(ctx, userID, store.CartKey, &items)
	switch {
	case err == nil:
		return items, nil
	case errors.Is(err, engine.ErrNotFound):
		return []models.CartItem{}, nil
	case errors.Is(err, engine.ErrPersistenceCorrupt):
		s.Logger.Printf("cart for user %s corrupt, resetting: %v", userID, err)
		_ = s.Store.Delete(ctx, userID, store.CartKey)
		return []models.CartItem{}, nil
	default:
		return nil, err
	}
}

// Add projects the course into a cart item. Adding a course already in
// the cart is a no-op; the cart stays unique by course id.
func (s *CartService) Add(ctx context.Context, userID, courseID string) ([]models.CartItem, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == courseID {
			return items, nil
		}
	}

	course, err := s.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	items = append(items, models.CartItem{
		ID:         course.ID,
		Title:      course.Title,
		Price:      course.Price,
		Instructor: course.Instructor,
		ImageURL:   course.ImageURL,
		Category:   course.Category,
		Level:      course.Level,
	})
	if err := s.Store.Set(ctx, userID, store.CartKey, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops a course from the cart.
func (s *CartService) Remove(ctx context.Context, userID, courseID string) ([]models.CartItem, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != courseID {
			kept = append(kept, item)
		}
	}
	if err := s.Store.Set(ctx, userID, store.CartKey, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: no user", engine.ErrAuthRequired)
	}
	return s.Store.Set(ctx, userID, store.CartKey, []models.CartItem{})
}

// Total sums the item prices.
func (s *CartService) Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

// Checkout simulates payment and enrolls the user in every cart course,
// then clears the cart. A second checkout while one is pending for the
// same user is rejected, not queued.
func (s *CartService) Checkout(ctx context.Context, userID string) ([]models.Enrollment, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: sign in to checkout", engine.ErrAuthRequired)
	}

	s.mu.Lock()
	if s.inFlight[userID] {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: checkout already in progress", engine.ErrValidation)
	}
	s.inFlight[userID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, userID)
		s.mu.Unlock()
	}()

	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", engine.ErrValidation)
	}

	var enrollments []models.Enrollment
	for _, item := range items {
		enrolled, err := s.Enrollments.IsEnrolled(ctx, userID, item.ID)
		if err != nil {
			return nil, err
		}
		if enrolled {
			continue
		}
		enrollment := models.Enrollment{
			ID:         uuid.NewString(),
			UserID:     userID,
			CourseID:   item.ID,
			EnrolledAt: time.Now().UTC(),
		}
		if err := s.Enrollments.Enroll(ctx, &enrollment); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := s.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return enrollments, nil
}
