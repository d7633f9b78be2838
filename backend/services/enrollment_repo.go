package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

type GormEnrollmentRepository struct {
	DB *gorm.DB
}

func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{DB: db}
}

func (r *GormEnrollmentRepository) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	if err := r.DB.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormEnrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return count > 0, nil
}

func (r *GormEnrollmentRepository) ByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return enrollments, nil
}

func (r *GormEnrollmentRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return count, nil
}

// MemoryEnrollmentRepository is the in-memory adapter used by tests.
type MemoryEnrollmentRepository struct {
	mu   sync.RWMutex
	rows []models.Enrollment
}

func NewMemoryEnrollmentRepository() *MemoryEnrollmentRepository {
	return &MemoryEnrollmentRepository{}
}

func (r *MemoryEnrollmentRepository) Enroll(_ context.Context, enrollment *models.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *enrollment)
	return nil
}

func (r *MemoryEnrollmentRepository) IsEnrolled(_ context.Context, userID, courseID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryEnrollmentRepository) ByUser(_ context.Context, userID string) ([]models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var enrollments []models.Enrollment
	for _, row := range r.rows {
		if row.UserID == userID {
			enrollments = append(enrollments, row)
		}
	}
	return enrollments, nil
}

func (r *MemoryEnrollmentRepository) CountByCourse(_ context.Context, courseID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, row := range r.rows {
		if row.CourseID == courseID {
			count++
		}
	}
	return count, nil
}
